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

// ResumeUseCase es el catálogo de resumes: CRUD acotado por rol. Consulta la
// política de acceso antes de cada mutación o lectura; no guarda estado
// propio más allá del repositorio delegado.
type ResumeUseCase struct {
	resumes repository.ResumeRepository
}

// NewResumeUseCase construye el catálogo con el puerto de persistencia.
func NewResumeUseCase(resumes repository.ResumeRepository) *ResumeUseCase {
	return &ResumeUseCase{resumes: resumes}
}

// GetAll lista resumes según la visibilidad del rol: admin y employer ven
// todos (caso de búsqueda de candidatos); un worker ve solo los suyos.
func (uc *ResumeUseCase) GetAll(ctx context.Context, requester entity.Requester) ([]dto.ResumeResponse, error) {
	switch access.Decide(access.ResourceResume, access.OpReadAll, requester, "") {
	case access.Allow:
		resumes, err := uc.resumes.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		return toResumeResponses(resumes), nil
	case access.ScopeOwn:
		resumes, err := uc.resumes.GetByOwner(ctx, requester.ID)
		if err != nil {
			return nil, err
		}
		return toResumeResponses(resumes), nil
	}
	return nil, domain.ErrForbidden
}

// GetByID obtiene un resume; deniega si el rol/propiedad no lo permite.
func (uc *ResumeUseCase) GetByID(ctx context.Context, id string, requester entity.Requester) (*dto.ResumeResponse, error) {
	resume, err := uc.resumes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, domain.ErrNotFound
	}
	if access.Decide(access.ResourceResume, access.OpReadOne, requester, resume.OwnerID) != access.Allow {
		return nil, domain.ErrForbidden
	}
	r := toResumeResponse(resume)
	return &r, nil
}

// Create crea un resume para el requester. El OwnerID se fuerza al id del
// requester, ignorando cualquier valor que venga del caller.
func (uc *ResumeUseCase) Create(ctx context.Context, in dto.CreateResumeRequest, requester entity.Requester) (*dto.ResumeResponse, error) {
	if access.Decide(access.ResourceResume, access.OpCreate, requester, "") != access.Allow {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	resume := &entity.Resume{
		ID:             uuid.New().String(),
		OwnerID:        requester.ID,
		Title:          in.Title,
		Description:    in.Description,
		Experience:     in.Experience,
		ExpectedSalary: in.ExpectedSalary,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.resumes.Create(ctx, resume); err != nil {
		return nil, err
	}
	r := toResumeResponse(resume)
	return &r, nil
}

// Update modifica título, descripción, experiencia y salario esperado.
// ID y OwnerID nunca cambian. Solo el dueño puede actualizar.
func (uc *ResumeUseCase) Update(ctx context.Context, id string, in dto.UpdateResumeRequest, requester entity.Requester) (*dto.ResumeResponse, error) {
	resume, err := uc.resumes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, domain.ErrNotFound
	}
	if access.Decide(access.ResourceResume, access.OpUpdate, requester, resume.OwnerID) != access.Allow {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	resume.Title = in.Title
	resume.Description = in.Description
	resume.Experience = in.Experience
	resume.ExpectedSalary = in.ExpectedSalary
	resume.UpdatedAt = time.Now()
	if err := uc.resumes.Update(ctx, resume); err != nil {
		return nil, err
	}
	r := toResumeResponse(resume)
	return &r, nil
}

// Delete elimina un resume. Solo el dueño; los links asociados caen por
// cascada en el almacenamiento.
func (uc *ResumeUseCase) Delete(ctx context.Context, id string, requester entity.Requester) error {
	resume, err := uc.resumes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if resume == nil {
		return domain.ErrNotFound
	}
	if access.Decide(access.ResourceResume, access.OpDelete, requester, resume.OwnerID) != access.Allow {
		return domain.ErrForbidden
	}
	return uc.resumes.Delete(ctx, id)
}

// Search busca resumes por substring (sensible a mayúsculas) en título o
// descripción. Keyword vacío o solo espacios devuelve el conjunto completo.
// Solo los roles que navegan resumes (admin, employer) pueden buscar.
func (uc *ResumeUseCase) Search(ctx context.Context, keyword string, requester entity.Requester) ([]dto.ResumeResponse, error) {
	if access.Decide(access.ResourceResume, access.OpSearch, requester, "") != access.Allow {
		return nil, domain.ErrForbidden
	}
	resumes, err := uc.resumes.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return toResumeResponses(resumes), nil
	}
	var matched []*entity.Resume
	for _, r := range resumes {
		if strings.Contains(r.Title, keyword) || strings.Contains(r.Description, keyword) {
			matched = append(matched, r)
		}
	}
	return toResumeResponses(matched), nil
}

func toResumeResponse(r *entity.Resume) dto.ResumeResponse {
	return dto.ResumeResponse{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		Title:          r.Title,
		Description:    r.Description,
		Experience:     r.Experience,
		ExpectedSalary: r.ExpectedSalary,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toResumeResponses(resumes []*entity.Resume) []dto.ResumeResponse {
	out := make([]dto.ResumeResponse, 0, len(resumes))
	for _, r := range resumes {
		out = append(out, toResumeResponse(r))
	}
	return out
}
