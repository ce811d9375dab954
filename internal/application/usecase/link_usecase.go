package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/domain"
	"github.com/jhoicas/empleos-api/internal/domain/access"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
	"github.com/jhoicas/empleos-api/internal/domain/repository"
)

// LinkUseCase crea, consulta y elimina links resume↔vacancy (postulaciones
// y ofertas). Toda operación sobre un link resuelve primero sus dos padres
// y decide con los dos dueños a la vista: cada llamada es un join O(1)
// sobre tres colecciones, no una operación de tabla única.
//
// El chequeo de existencia previo al insert es solo un camino rápido de
// error: la secuencia check-then-act es una carrera inherente y el
// invariante "a lo sumo un link por par" lo sostiene el índice único del
// almacenamiento, que el repositorio traduce a domain.ErrConflict.
type LinkUseCase struct {
	links     repository.LinkRepository
	resumes   repository.ResumeRepository
	vacancies repository.VacancyRepository
	accounts  repository.AccountRepository
}

// NewLinkUseCase construye el caso de uso con los cuatro puertos que
// necesita para autorizar y enriquecer.
func NewLinkUseCase(
	links repository.LinkRepository,
	resumes repository.ResumeRepository,
	vacancies repository.VacancyRepository,
	accounts repository.AccountRepository,
) *LinkUseCase {
	return &LinkUseCase{links: links, resumes: resumes, vacancies: vacancies, accounts: accounts}
}

// Apply registra la postulación de un resume a una vacancy. El requester
// debe ser worker y dueño del resume; la vacancy debe existir; el par no
// puede estar ya enlazado. SubmittedAt lo asigna el sistema.
func (uc *LinkUseCase) Apply(ctx context.Context, resumeID, vacancyID string, requester entity.Requester) (*dto.LinkResponse, error) {
	if requester.Role != entity.RoleWorker {
		return nil, domain.ErrForbidden
	}
	resume, err := uc.resumes.GetByID(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, domain.ErrNotFound
	}
	if resume.OwnerID != requester.ID {
		return nil, domain.ErrForbidden
	}
	vacancy, err := uc.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, domain.ErrNotFound
	}
	return uc.createLink(ctx, resume, vacancy)
}

// Offer registra la oferta de una vacancy a un resume: simétrico a Apply
// con el requester employer dueño de la vacancy. La fila creada es idéntica;
// el sistema no distingue postulación de oferta en el almacenamiento, solo
// en qué rol pudo originarla.
func (uc *LinkUseCase) Offer(ctx context.Context, vacancyID, resumeID string, requester entity.Requester) (*dto.LinkResponse, error) {
	if requester.Role != entity.RoleEmployer {
		return nil, domain.ErrForbidden
	}
	vacancy, err := uc.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, domain.ErrNotFound
	}
	if vacancy.OwnerID != requester.ID {
		return nil, domain.ErrForbidden
	}
	resume, err := uc.resumes.GetByID(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, domain.ErrNotFound
	}
	return uc.createLink(ctx, resume, vacancy)
}

func (uc *LinkUseCase) createLink(ctx context.Context, resume *entity.Resume, vacancy *entity.Vacancy) (*dto.LinkResponse, error) {
	exists, err := uc.links.ExistsByPair(ctx, resume.ID, vacancy.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrConflict
	}
	link := &entity.Link{
		ID:          uuid.New().String(),
		ResumeID:    resume.ID,
		VacancyID:   vacancy.ID,
		SubmittedAt: time.Now(),
	}
	// Bajo peticiones concurrentes idénticas ambas pueden pasar el chequeo;
	// el índice único decide y el repositorio devuelve ErrConflict.
	if err := uc.links.Create(ctx, link); err != nil {
		return nil, err
	}
	out := uc.enrich(ctx, link)
	return &out, nil
}

// Exists reporta si ya hay un link para el par (resumeID, vacancyID).
// Probe puro, sin autorización: se expone para pre-chequeos de UI.
func (uc *LinkUseCase) Exists(ctx context.Context, resumeID, vacancyID string) (bool, error) {
	return uc.links.ExistsByPair(ctx, resumeID, vacancyID)
}

// GetByID obtiene un link. Acceso: admin, el worker dueño del resume o el
// employer dueño de la vacancy.
func (uc *LinkUseCase) GetByID(ctx context.Context, id string, requester entity.Requester) (*dto.LinkResponse, error) {
	link, err := uc.links.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}
	resumeOwner, vacancyOwner, err := uc.resolveOwners(ctx, link)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessLink(requester, resumeOwner, vacancyOwner) {
		return nil, domain.ErrForbidden
	}
	out := uc.enrich(ctx, link)
	return &out, nil
}

// GetByResume lista los links de un resume. Admin y el worker dueño ven
// todos; un employer ve solo los links hacia sus propias vacantes; cualquier
// otro worker queda denegado.
func (uc *LinkUseCase) GetByResume(ctx context.Context, resumeID string, requester entity.Requester) ([]dto.LinkResponse, error) {
	resume, err := uc.resumes.GetByID(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, domain.ErrNotFound
	}
	if requester.Role == entity.RoleWorker && resume.OwnerID != requester.ID {
		return nil, domain.ErrForbidden
	}
	links, err := uc.links.GetByResumeID(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	return uc.authorizeAndEnrich(ctx, links, requester)
}

// GetByVacancy lista los links de una vacancy: espejo de GetByResume.
func (uc *LinkUseCase) GetByVacancy(ctx context.Context, vacancyID string, requester entity.Requester) ([]dto.LinkResponse, error) {
	vacancy, err := uc.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, domain.ErrNotFound
	}
	if requester.Role == entity.RoleEmployer && vacancy.OwnerID != requester.ID {
		return nil, domain.ErrForbidden
	}
	links, err := uc.links.GetByVacancyID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	return uc.authorizeAndEnrich(ctx, links, requester)
}

// GetAll lista todos los links del sistema. Solo admin.
func (uc *LinkUseCase) GetAll(ctx context.Context, requester entity.Requester) ([]dto.LinkResponse, error) {
	if !access.CanListAllLinks(requester.Role) {
		return nil, domain.ErrForbidden
	}
	links, err := uc.links.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, uc.enrich(ctx, link))
	}
	return out, nil
}

// Delete elimina un link. Acceso: admin, worker dueño del resume o employer
// dueño de la vacancy; la autorización resuelve ambos padres antes de decidir.
func (uc *LinkUseCase) Delete(ctx context.Context, id string, requester entity.Requester) error {
	link, err := uc.links.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrNotFound
	}
	resumeOwner, vacancyOwner, err := uc.resolveOwners(ctx, link)
	if err != nil {
		return err
	}
	if !access.CanAccessLink(requester, resumeOwner, vacancyOwner) {
		return domain.ErrForbidden
	}
	return uc.links.Delete(ctx, id)
}

// MyApplications lista los links de todos los resumes del worker autenticado.
func (uc *LinkUseCase) MyApplications(ctx context.Context, requester entity.Requester) ([]dto.LinkResponse, error) {
	if requester.Role != entity.RoleWorker {
		return nil, domain.ErrForbidden
	}
	resumes, err := uc.resumes.GetByOwner(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	var out []dto.LinkResponse
	for _, resume := range resumes {
		links, err := uc.links.GetByResumeID(ctx, resume.ID)
		if err != nil {
			return nil, err
		}
		for _, link := range links {
			out = append(out, uc.enrich(ctx, link))
		}
	}
	return out, nil
}

// ReceivedApplications lista los links de todas las vacantes del employer
// autenticado.
func (uc *LinkUseCase) ReceivedApplications(ctx context.Context, requester entity.Requester) ([]dto.LinkResponse, error) {
	if requester.Role != entity.RoleEmployer {
		return nil, domain.ErrForbidden
	}
	vacancies, err := uc.vacancies.GetByOwner(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	var out []dto.LinkResponse
	for _, vacancy := range vacancies {
		links, err := uc.links.GetByVacancyID(ctx, vacancy.ID)
		if err != nil {
			return nil, err
		}
		for _, link := range links {
			out = append(out, uc.enrich(ctx, link))
		}
	}
	return out, nil
}

// resolveOwners resuelve los dueños de ambos padres del link. Si un padre
// ya no existe (borrado concurrente) el link se trata como no encontrado.
func (uc *LinkUseCase) resolveOwners(ctx context.Context, link *entity.Link) (resumeOwner, vacancyOwner string, err error) {
	resume, err := uc.resumes.GetByID(ctx, link.ResumeID)
	if err != nil {
		return "", "", err
	}
	vacancy, err := uc.vacancies.GetByID(ctx, link.VacancyID)
	if err != nil {
		return "", "", err
	}
	if resume == nil || vacancy == nil {
		return "", "", domain.ErrNotFound
	}
	return resume.OwnerID, vacancy.OwnerID, nil
}

// authorizeAndEnrich filtra una lista de links a los que el requester puede
// ver (regla por link, con ambos dueños resueltos) y los enriquece.
func (uc *LinkUseCase) authorizeAndEnrich(ctx context.Context, links []*entity.Link, requester entity.Requester) ([]dto.LinkResponse, error) {
	out := make([]dto.LinkResponse, 0, len(links))
	for _, link := range links {
		resumeOwner, vacancyOwner, err := uc.resolveOwners(ctx, link)
		if err != nil {
			if err == domain.ErrNotFound {
				continue
			}
			return nil, err
		}
		if !access.CanAccessLink(requester, resumeOwner, vacancyOwner) {
			continue
		}
		out = append(out, uc.enrich(ctx, link))
	}
	return out, nil
}

// enrich compone la vista de lectura del link: títulos de ambos lados y
// nombres de los dueños. Es presentación pura; nada de esto se persiste.
// Los campos quedan vacíos si algún lado ya no se puede resolver.
func (uc *LinkUseCase) enrich(ctx context.Context, link *entity.Link) dto.LinkResponse {
	out := dto.LinkResponse{
		ID:          link.ID,
		ResumeID:    link.ResumeID,
		VacancyID:   link.VacancyID,
		SubmittedAt: link.SubmittedAt,
	}
	if resume, err := uc.resumes.GetByID(ctx, link.ResumeID); err == nil && resume != nil {
		out.ResumeTitle = resume.Title
		if owner, err := uc.accounts.GetByID(ctx, resume.OwnerID); err == nil && owner != nil {
			out.WorkerName = owner.DisplayName
		}
	}
	if vacancy, err := uc.vacancies.GetByID(ctx, link.VacancyID); err == nil && vacancy != nil {
		out.VacancyTitle = vacancy.Title
		if owner, err := uc.accounts.GetByID(ctx, vacancy.OwnerID); err == nil && owner != nil {
			out.EmployerName = owner.DisplayName
		}
	}
	return out
}
