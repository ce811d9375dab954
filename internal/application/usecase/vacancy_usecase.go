package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/domain"
	"github.com/jhoicas/empleos-api/internal/domain/access"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
	"github.com/jhoicas/empleos-api/internal/domain/repository"
)

// VacancyUseCase es el catálogo de vacantes: CRUD acotado por rol, espejo
// del catálogo de resumes con los roles invertidos.
type VacancyUseCase struct {
	vacancies repository.VacancyRepository
}

// NewVacancyUseCase construye el catálogo con el puerto de persistencia.
func NewVacancyUseCase(vacancies repository.VacancyRepository) *VacancyUseCase {
	return &VacancyUseCase{vacancies: vacancies}
}

// GetAll lista vacantes según la visibilidad del rol: admin y worker ven
// todas (caso de búsqueda de empleo); un employer ve solo las suyas.
func (uc *VacancyUseCase) GetAll(ctx context.Context, requester entity.Requester) ([]dto.VacancyResponse, error) {
	switch access.Decide(access.ResourceVacancy, access.OpReadAll, requester, "") {
	case access.Allow:
		vacancies, err := uc.vacancies.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		return toVacancyResponses(vacancies), nil
	case access.ScopeOwn:
		vacancies, err := uc.vacancies.GetByOwner(ctx, requester.ID)
		if err != nil {
			return nil, err
		}
		return toVacancyResponses(vacancies), nil
	}
	return nil, domain.ErrForbidden
}

// GetByID obtiene una vacancy; un employer solo puede leer la propia.
func (uc *VacancyUseCase) GetByID(ctx context.Context, id string, requester entity.Requester) (*dto.VacancyResponse, error) {
	vacancy, err := uc.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, domain.ErrNotFound
	}
	if access.Decide(access.ResourceVacancy, access.OpReadOne, requester, vacancy.OwnerID) != access.Allow {
		return nil, domain.ErrForbidden
	}
	v := toVacancyResponse(vacancy)
	return &v, nil
}

// GetMine lista las vacantes del employer autenticado.
func (uc *VacancyUseCase) GetMine(ctx context.Context, requester entity.Requester) ([]dto.VacancyResponse, error) {
	if requester.Role != entity.RoleEmployer {
		return nil, domain.ErrForbidden
	}
	vacancies, err := uc.vacancies.GetByOwner(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	return toVacancyResponses(vacancies), nil
}

// Create crea una vacancy para el requester (solo employer). El OwnerID se
// fuerza al id del requester.
func (uc *VacancyUseCase) Create(ctx context.Context, in dto.CreateVacancyRequest, requester entity.Requester) (*dto.VacancyResponse, error) {
	if access.Decide(access.ResourceVacancy, access.OpCreate, requester, "") != access.Allow {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vacancy := &entity.Vacancy{
		ID:             uuid.New().String(),
		OwnerID:        requester.ID,
		Title:          in.Title,
		Description:    in.Description,
		Experience:     in.Experience,
		ExpectedSalary: in.ExpectedSalary,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.vacancies.Create(ctx, vacancy); err != nil {
		return nil, err
	}
	v := toVacancyResponse(vacancy)
	return &v, nil
}

// Update modifica una vacancy. Permitido al dueño y al admin.
func (uc *VacancyUseCase) Update(ctx context.Context, id string, in dto.UpdateVacancyRequest, requester entity.Requester) (*dto.VacancyResponse, error) {
	vacancy, err := uc.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, domain.ErrNotFound
	}
	if access.Decide(access.ResourceVacancy, access.OpUpdate, requester, vacancy.OwnerID) != access.Allow {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	vacancy.Title = in.Title
	vacancy.Description = in.Description
	vacancy.Experience = in.Experience
	vacancy.ExpectedSalary = in.ExpectedSalary
	vacancy.UpdatedAt = time.Now()
	if err := uc.vacancies.Update(ctx, vacancy); err != nil {
		return nil, err
	}
	v := toVacancyResponse(vacancy)
	return &v, nil
}

// Delete elimina una vacancy (dueño o admin). Los links asociados caen por
// cascada en el almacenamiento.
func (uc *VacancyUseCase) Delete(ctx context.Context, id string, requester entity.Requester) error {
	vacancy, err := uc.vacancies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vacancy == nil {
		return domain.ErrNotFound
	}
	if access.Decide(access.ResourceVacancy, access.OpDelete, requester, vacancy.OwnerID) != access.Allow {
		return domain.ErrForbidden
	}
	return uc.vacancies.Delete(ctx, id)
}

// Search busca vacantes por substring (sensible a mayúsculas) en título o
// descripción. Solo los roles que navegan vacantes (admin, worker).
func (uc *VacancyUseCase) Search(ctx context.Context, keyword string, requester entity.Requester) ([]dto.VacancyResponse, error) {
	if access.Decide(access.ResourceVacancy, access.OpSearch, requester, "") != access.Allow {
		return nil, domain.ErrForbidden
	}
	vacancies, err := uc.vacancies.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return toVacancyResponses(vacancies), nil
	}
	var matched []*entity.Vacancy
	for _, v := range vacancies {
		if strings.Contains(v.Title, keyword) || strings.Contains(v.Description, keyword) {
			matched = append(matched, v)
		}
	}
	return toVacancyResponses(matched), nil
}

func toVacancyResponse(v *entity.Vacancy) dto.VacancyResponse {
	return dto.VacancyResponse{
		ID:             v.ID,
		OwnerID:        v.OwnerID,
		Title:          v.Title,
		Description:    v.Description,
		Experience:     v.Experience,
		ExpectedSalary: v.ExpectedSalary,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func toVacancyResponses(vacancies []*entity.Vacancy) []dto.VacancyResponse {
	out := make([]dto.VacancyResponse, 0, len(vacancies))
	for _, v := range vacancies {
		out = append(out, toVacancyResponse(v))
	}
	return out
}
