package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/empleos-api/internal/domain"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
	"github.com/jhoicas/empleos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso.
// Replican el contrato de los puertos, incluido el ErrConflict del índice
// único de links.
// ──────────────────────────────────────────────────────────────────────────────

type memAccountRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Account
}

var _ repository.AccountRepository = (*memAccountRepo)(nil)

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{items: map[string]*entity.Account{}}
}

func (r *memAccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.DisplayName == a.DisplayName {
			return domain.ErrDuplicateName
		}
	}
	r.items[a.ID] = a
	return nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memAccountRepo) GetByDisplayName(_ context.Context, name string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.DisplayName == name {
			return a, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) GetAll(_ context.Context) ([]*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Account, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}

func (r *memAccountRepo) Update(_ context.Context, a *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = a
	return nil
}

func (r *memAccountRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type memResumeRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Resume
}

var _ repository.ResumeRepository = (*memResumeRepo)(nil)

func newMemResumeRepo() *memResumeRepo {
	return &memResumeRepo{items: map[string]*entity.Resume{}}
}

func (r *memResumeRepo) Create(_ context.Context, res *entity.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[res.ID] = res
	return nil
}

func (r *memResumeRepo) GetByID(_ context.Context, id string) (*entity.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memResumeRepo) GetAll(_ context.Context) ([]*entity.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Resume, 0, len(r.items))
	for _, res := range r.items {
		out = append(out, res)
	}
	return out, nil
}

func (r *memResumeRepo) GetByOwner(_ context.Context, ownerID string) ([]*entity.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Resume
	for _, res := range r.items {
		if res.OwnerID == ownerID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *memResumeRepo) Update(_ context.Context, res *entity.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[res.ID] = res
	return nil
}

func (r *memResumeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type memVacancyRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Vacancy
}

var _ repository.VacancyRepository = (*memVacancyRepo)(nil)

func newMemVacancyRepo() *memVacancyRepo {
	return &memVacancyRepo{items: map[string]*entity.Vacancy{}}
}

func (r *memVacancyRepo) Create(_ context.Context, v *entity.Vacancy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[v.ID] = v
	return nil
}

func (r *memVacancyRepo) GetByID(_ context.Context, id string) (*entity.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memVacancyRepo) GetAll(_ context.Context) ([]*entity.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Vacancy, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v)
	}
	return out, nil
}

func (r *memVacancyRepo) GetByOwner(_ context.Context, ownerID string) ([]*entity.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Vacancy
	for _, v := range r.items {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVacancyRepo) Update(_ context.Context, v *entity.Vacancy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[v.ID] = v
	return nil
}

func (r *memVacancyRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type memLinkRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Link
}

var _ repository.LinkRepository = (*memLinkRepo)(nil)

func newMemLinkRepo() *memLinkRepo {
	return &memLinkRepo{items: map[string]*entity.Link{}}
}

func (r *memLinkRepo) Create(_ context.Context, l *entity.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Índice único (resume_id, vacancy_id): el verdadero guardián del invariante.
	for _, existing := range r.items {
		if existing.ResumeID == l.ResumeID && existing.VacancyID == l.VacancyID {
			return domain.ErrConflict
		}
	}
	r.items[l.ID] = l
	return nil
}

func (r *memLinkRepo) GetByID(_ context.Context, id string) (*entity.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memLinkRepo) GetAll(_ context.Context) ([]*entity.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Link, 0, len(r.items))
	for _, l := range r.items {
		out = append(out, l)
	}
	return out, nil
}

func (r *memLinkRepo) GetByResumeID(_ context.Context, resumeID string) ([]*entity.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Link
	for _, l := range r.items {
		if l.ResumeID == resumeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLinkRepo) GetByVacancyID(_ context.Context, vacancyID string) ([]*entity.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Link
	for _, l := range r.items {
		if l.VacancyID == vacancyID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLinkRepo) ExistsByPair(_ context.Context, resumeID, vacancyID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.items {
		if l.ResumeID == resumeID && l.VacancyID == vacancyID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memLinkRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
