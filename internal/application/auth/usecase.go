// Package auth contiene los casos de uso de autenticación: registro, login
// y refresco de token. El secreto de firma vive en configuración; el resto
// del núcleo nunca depende de cómo se autenticó el principal.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/domain"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
	"github.com/jhoicas/empleos-api/internal/domain/repository"
	"github.com/jhoicas/empleos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	accounts repository.AccountRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, jwtCfg: jwtCfg}
}

// Register crea una cuenta: hashea el password con bcrypt y persiste.
// El display name es único en el sistema (ErrDuplicateName si ya existe).
// Solo se pueden auto-registrar employer y worker; las cuentas admin se
// aprovisionan fuera de banda.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if strings.TrimSpace(in.DisplayName) == "" || strings.TrimSpace(in.Password) == "" {
		return nil, domain.ErrInvalidInput
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok || role == entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.accounts.GetByDisplayName(ctx, in.DisplayName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		DisplayName:  in.DisplayName,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	out := toAccountResponse(account)
	return &out, nil
}

// Login verifica display name y password, genera el JWT con el claim de rol
// y retorna token + cuenta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accounts.GetByDisplayName(ctx, in.DisplayName)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(account)
}

// Me devuelve la cuenta del requester autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, accountID string) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	out := toAccountResponse(account)
	return &out, nil
}

// Refresh emite un token nuevo para el requester autenticado.
func (uc *AuthUseCase) Refresh(ctx context.Context, accountID string) (*dto.LoginResponse, error) {
	account, err := uc.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(account)
}

func (uc *AuthUseCase) issueToken(account *entity.Account) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, string(account.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		Account:   toAccountResponse(account),
	}, nil
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
