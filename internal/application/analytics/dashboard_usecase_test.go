package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleos-api/internal/application/analytics"
	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

// fakeLinkQueries implementa analytics.LinkQueries con listas fijas.
type fakeLinkQueries struct {
	all      []dto.LinkResponse
	mine     []dto.LinkResponse
	received []dto.LinkResponse
}

func (f *fakeLinkQueries) GetAll(_ context.Context, _ entity.Requester) ([]dto.LinkResponse, error) {
	return f.all, nil
}

func (f *fakeLinkQueries) MyApplications(_ context.Context, _ entity.Requester) ([]dto.LinkResponse, error) {
	return f.mine, nil
}

func (f *fakeLinkQueries) ReceivedApplications(_ context.Context, _ entity.Requester) ([]dto.LinkResponse, error) {
	return f.received, nil
}

// linksAt genera n links con SubmittedAt espaciados hacia atrás desde base.
func linksAt(base time.Time, step time.Duration, n int) []dto.LinkResponse {
	out := make([]dto.LinkResponse, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, dto.LinkResponse{
			ID:          string(rune('a' + i)),
			SubmittedAt: base.Add(-time.Duration(i) * step),
		})
	}
	return out
}

func TestDashboard_Admin(t *testing.T) {
	now := time.Now()
	// 12 links: los primeros 3 de hoy, el resto uno por día hacia atrás.
	all := linksAt(now, 24*time.Hour, 12)
	all[1].SubmittedAt = now.Add(-time.Second)
	all[2].SubmittedAt = now.Add(-2 * time.Second)

	uc := analytics.NewDashboardUseCase(&fakeLinkQueries{all: all})
	out, err := uc.GetSummary(context.Background(), entity.Requester{ID: "a-1", Role: entity.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, "admin", out.Role)
	assert.Equal(t, 12, out.Total)
	require.Len(t, out.Recent, 10, "el admin ve los 10 más recientes")
	// Orden descendente por SubmittedAt.
	for i := 1; i < len(out.Recent); i++ {
		assert.False(t, out.Recent[i].SubmittedAt.After(out.Recent[i-1].SubmittedAt))
	}
	assert.Equal(t, 3, out.Stats.Today)
	assert.GreaterOrEqual(t, out.Stats.LastWeek, 8)
}

func TestDashboard_Worker(t *testing.T) {
	now := time.Now()
	mine := linksAt(now, time.Second, 7)

	uc := analytics.NewDashboardUseCase(&fakeLinkQueries{mine: mine})
	out, err := uc.GetSummary(context.Background(), entity.Requester{ID: "w-1", Role: entity.RoleWorker})
	require.NoError(t, err)

	assert.Equal(t, "worker", out.Role)
	assert.Equal(t, 7, out.Total)
	assert.Len(t, out.Recent, 5, "el worker ve los 5 más recientes")
	assert.Equal(t, 7, out.Stats.ThisMonth)
}

func TestDashboard_Employer(t *testing.T) {
	now := time.Now()
	received := linksAt(now, time.Second, 3)

	uc := analytics.NewDashboardUseCase(&fakeLinkQueries{received: received})
	out, err := uc.GetSummary(context.Background(), entity.Requester{ID: "e-1", Role: entity.RoleEmployer})
	require.NoError(t, err)

	assert.Equal(t, "employer", out.Role)
	assert.Equal(t, 3, out.Total)
	assert.Len(t, out.Recent, 3)
	assert.Equal(t, 3, out.Stats.Today)
}

// Un rol no reconocido es un error de configuración, no un fallo de dominio.
func TestDashboard_RolDesconocido(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeLinkQueries{})
	_, err := uc.GetSummary(context.Background(), entity.Requester{ID: "x", Role: entity.Role("ghost")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rol desconocido")
}
