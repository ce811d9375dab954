package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/application/usecase"
	"github.com/jhoicas/empleos-api/internal/domain"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

var reqEmployer2 = entity.Requester{ID: "e-2", Role: entity.RoleEmployer}

func seedVacancies(t *testing.T, repo *memVacancyRepo) {
	t.Helper()
	ctx := context.Background()
	for _, v := range []*entity.Vacancy{
		{ID: "v-1", OwnerID: "e-1", Title: "Backend Go Sr", Description: "microservicios"},
		{ID: "v-2", OwnerID: "e-2", Title: "Data Engineer", Description: "pipelines"},
	} {
		require.NoError(t, repo.Create(ctx, v))
	}
}

// Visibilidad espejo: un employer solo recibe vacantes propias.
func TestVacancyGetAll_VisibilidadPorRol(t *testing.T) {
	repo := newMemVacancyRepo()
	seedVacancies(t, repo)
	uc := usecase.NewVacancyUseCase(repo)
	ctx := context.Background()

	all, err := uc.GetAll(ctx, reqAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	browsing, err := uc.GetAll(ctx, reqWorker)
	require.NoError(t, err)
	assert.Len(t, browsing, 2, "worker navega todas las vacantes")

	mine, err := uc.GetAll(ctx, reqEmployer)
	require.NoError(t, err)
	require.Len(t, mine, 1, "employer queda acotado a lo suyo")
	assert.Equal(t, "e-1", mine[0].OwnerID)
}

// Escenario de la matriz: employer ajeno denegado, worker navegando permitido.
func TestVacancyGetByID_Propiedad(t *testing.T) {
	repo := newMemVacancyRepo()
	seedVacancies(t, repo)
	uc := usecase.NewVacancyUseCase(repo)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, "v-1", reqEmployer2)
	assert.ErrorIs(t, err, domain.ErrForbidden, "employer no lee vacancy ajena")

	got, err := uc.GetByID(ctx, "v-1", reqWorker)
	require.NoError(t, err, "worker navega cualquier vacancy")
	assert.Equal(t, "Backend Go Sr", got.Title)

	_, err = uc.GetByID(ctx, "v-1", reqEmployer)
	require.NoError(t, err, "el dueño lee la suya")
}

func TestVacancyCreate_SoloEmployer(t *testing.T) {
	repo := newMemVacancyRepo()
	uc := usecase.NewVacancyUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateVacancyRequest{Title: "DevOps"}, reqEmployer)
	require.NoError(t, err)
	assert.Equal(t, "e-1", out.OwnerID)

	_, err = uc.Create(ctx, dto.CreateVacancyRequest{Title: "x"}, reqWorker)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Create(ctx, dto.CreateVacancyRequest{Title: "x"}, reqAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden, "el admin tampoco publica vacantes")
}

func TestVacancyUpdateDelete_DueñoOAdmin(t *testing.T) {
	repo := newMemVacancyRepo()
	seedVacancies(t, repo)
	uc := usecase.NewVacancyUseCase(repo)
	ctx := context.Background()

	in := dto.UpdateVacancyRequest{Title: "Backend Go Staff"}

	_, err := uc.Update(ctx, "v-1", in, reqEmployer2)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Update(ctx, "v-1", in, reqEmployer)
	require.NoError(t, err)
	assert.Equal(t, "Backend Go Staff", out.Title)

	// Asimetría con resumes: el admin sí interviene vacantes ajenas.
	_, err = uc.Update(ctx, "v-2", dto.UpdateVacancyRequest{Title: "Data Eng Sr"}, reqAdmin)
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, "v-2", reqAdmin))

	err = uc.Delete(ctx, "v-1", reqWorker)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVacancyGetMine(t *testing.T) {
	repo := newMemVacancyRepo()
	seedVacancies(t, repo)
	uc := usecase.NewVacancyUseCase(repo)
	ctx := context.Background()

	mine, err := uc.GetMine(ctx, reqEmployer)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "v-1", mine[0].ID)

	_, err = uc.GetMine(ctx, reqWorker)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVacancySearch(t *testing.T) {
	repo := newMemVacancyRepo()
	seedVacancies(t, repo)
	uc := usecase.NewVacancyUseCase(repo)
	ctx := context.Background()

	got, err := uc.Search(ctx, "pipelines", reqWorker)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Data Engineer", got[0].Title)

	got, err = uc.Search(ctx, "", reqWorker)
	require.NoError(t, err)
	assert.Len(t, got, 2, "keyword vacío devuelve el conjunto completo")

	_, err = uc.Search(ctx, "Go", reqEmployer)
	assert.ErrorIs(t, err, domain.ErrForbidden, "los employers no buscan vacantes")
}
