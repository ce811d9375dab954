package usecase

import (
	"context"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/domain"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
	"github.com/jhoicas/empleos-api/internal/domain/repository"
)

// AccountUseCase gestiona cuentas: listado y bajas, reservados al admin.
type AccountUseCase struct {
	accounts repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso con el puerto de persistencia.
func NewAccountUseCase(accounts repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{accounts: accounts}
}

// GetAll lista todas las cuentas. Solo admin.
func (uc *AccountUseCase) GetAll(ctx context.Context, requester entity.Requester) ([]dto.AccountResponse, error) {
	if requester.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	accounts, err := uc.accounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out, nil
}

// GetByID obtiene una cuenta: admin o la propia.
func (uc *AccountUseCase) GetByID(ctx context.Context, id string, requester entity.Requester) (*dto.AccountResponse, error) {
	if requester.Role != entity.RoleAdmin && requester.ID != id {
		return nil, domain.ErrForbidden
	}
	account, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	a := toAccountResponse(account)
	return &a, nil
}

// Delete elimina una cuenta. Solo admin; resumes y vacantes del dueño caen
// por cascada en el almacenamiento.
func (uc *AccountUseCase) Delete(ctx context.Context, id string, requester entity.Requester) error {
	if requester.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	account, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	return uc.accounts.Delete(ctx, id)
}

func toAccountResponse(a *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Role:        string(a.Role),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
