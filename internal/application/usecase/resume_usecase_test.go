package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/application/usecase"
	"github.com/jhoicas/empleos-api/internal/domain"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

var (
	reqAdmin    = entity.Requester{ID: "a-1", Role: entity.RoleAdmin}
	reqEmployer = entity.Requester{ID: "e-1", Role: entity.RoleEmployer}
	reqWorker   = entity.Requester{ID: "w-1", Role: entity.RoleWorker}
	reqWorker2  = entity.Requester{ID: "w-2", Role: entity.RoleWorker}
)

func seedResumes(t *testing.T, repo *memResumeRepo) {
	t.Helper()
	ctx := context.Background()
	for _, r := range []*entity.Resume{
		{ID: "r-1", OwnerID: "w-1", Title: "Desarrolladora Go", Description: "backend y APIs"},
		{ID: "r-2", OwnerID: "w-1", Title: "SRE", Description: "infra"},
		{ID: "r-3", OwnerID: "w-2", Title: "Contadora", Description: "finanzas"},
	} {
		require.NoError(t, repo.Create(ctx, r))
	}
}

// Propiedad central de visibilidad: un worker solo recibe resumes propios.
func TestResumeGetAll_VisibilidadPorRol(t *testing.T) {
	repo := newMemResumeRepo()
	seedResumes(t, repo)
	uc := usecase.NewResumeUseCase(repo)
	ctx := context.Background()

	all, err := uc.GetAll(ctx, reqAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 3, "admin ve todos")

	browsing, err := uc.GetAll(ctx, reqEmployer)
	require.NoError(t, err)
	assert.Len(t, browsing, 3, "employer navega todos los resumes")

	mine, err := uc.GetAll(ctx, reqWorker)
	require.NoError(t, err)
	require.Len(t, mine, 2, "worker queda acotado a lo suyo")
	for _, r := range mine {
		assert.Equal(t, "w-1", r.OwnerID)
	}
}

func TestResumeGetByID_Propiedad(t *testing.T) {
	repo := newMemResumeRepo()
	seedResumes(t, repo)
	uc := usecase.NewResumeUseCase(repo)
	ctx := context.Background()

	got, err := uc.GetByID(ctx, "r-1", reqWorker)
	require.NoError(t, err)
	assert.Equal(t, "Desarrolladora Go", got.Title)

	_, err = uc.GetByID(ctx, "r-3", reqWorker)
	assert.ErrorIs(t, err, domain.ErrForbidden, "worker no lee resume ajeno")

	_, err = uc.GetByID(ctx, "r-3", reqEmployer)
	require.NoError(t, err, "employer navega cualquier resume")

	_, err = uc.GetByID(ctx, "no-existe", reqAdmin)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResumeCreate_FuerzaDueño(t *testing.T) {
	repo := newMemResumeRepo()
	uc := usecase.NewResumeUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateResumeRequest{
		Title:          "QA Automation",
		Experience:     2,
		ExpectedSalary: decimal.NewFromInt(3000),
	}, reqWorker)
	require.NoError(t, err)
	assert.Equal(t, "w-1", out.OwnerID, "OwnerID siempre es el requester")
	assert.NotEmpty(t, out.ID)

	_, err = uc.Create(ctx, dto.CreateResumeRequest{Title: "x"}, reqEmployer)
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo workers crean resumes")

	_, err = uc.Create(ctx, dto.CreateResumeRequest{Title: "   "}, reqWorker)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "título vacío")
}

func TestResumeUpdateDelete_SoloDueño(t *testing.T) {
	repo := newMemResumeRepo()
	seedResumes(t, repo)
	uc := usecase.NewResumeUseCase(repo)
	ctx := context.Background()

	in := dto.UpdateResumeRequest{Title: "Desarrolladora Go Sr", Experience: 5}

	out, err := uc.Update(ctx, "r-1", in, reqWorker)
	require.NoError(t, err)
	assert.Equal(t, "Desarrolladora Go Sr", out.Title)
	assert.Equal(t, "w-1", out.OwnerID, "OwnerID no cambia en update")

	_, err = uc.Update(ctx, "r-1", in, reqWorker2)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El admin no tiene derechos de escritura sobre resumes.
	_, err = uc.Update(ctx, "r-1", in, reqAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	err = uc.Delete(ctx, "r-1", reqAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(ctx, "r-1", reqWorker)
	require.NoError(t, err)
	_, err = uc.GetByID(ctx, "r-1", reqWorker)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResumeSearch(t *testing.T) {
	repo := newMemResumeRepo()
	seedResumes(t, repo)
	uc := usecase.NewResumeUseCase(repo)
	ctx := context.Background()

	got, err := uc.Search(ctx, "Go", reqEmployer)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Desarrolladora Go", got[0].Title)

	// Match por descripción y sensibilidad a mayúsculas.
	got, err = uc.Search(ctx, "infra", reqEmployer)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	got, err = uc.Search(ctx, "INFRA", reqEmployer)
	require.NoError(t, err)
	assert.Empty(t, got, "la búsqueda es sensible a mayúsculas")

	// Keyword vacío o con espacios devuelve el conjunto completo.
	got, err = uc.Search(ctx, "   ", reqAdmin)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = uc.Search(ctx, "Go", reqWorker)
	assert.ErrorIs(t, err, domain.ErrForbidden, "los workers no buscan resumes")
}
