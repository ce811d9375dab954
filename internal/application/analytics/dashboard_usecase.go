// Package analytics contiene el caso de uso del dashboard: composición de
// lectura sobre las consultas de links, sin reglas de autorización nuevas.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

// Cantidad de links recientes en el widget según rol.
const (
	adminRecent  = 10
	scopedRecent = 5
)

// LinkQueries es el contrato mínimo que el dashboard necesita del caso de
// uso de links. La interfaz mantiene la composición testeable sin tocar
// almacenamiento.
type LinkQueries interface {
	GetAll(ctx context.Context, requester entity.Requester) ([]dto.LinkResponse, error)
	MyApplications(ctx context.Context, requester entity.Requester) ([]dto.LinkResponse, error)
	ReceivedApplications(ctx context.Context, requester entity.Requester) ([]dto.LinkResponse, error)
}

// DashboardUseCase genera el resumen de actividad por rol.
type DashboardUseCase struct {
	links LinkQueries
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(links LinkQueries) *DashboardUseCase {
	return &DashboardUseCase{links: links}
}

// GetSummary construye el DashboardResponse para el requester.
//
//	admin:    total de links, 10 más recientes, contadores de hoy y últimos 7 días.
//	worker:   postulaciones propias, 5 más recientes, contador del mes en curso.
//	employer: postulaciones recibidas, 5 más recientes, contador de hoy.
//
// Un rol no reconocido es un error de configuración, no un fallo de la
// petición: el token nunca debería haberse emitido con ese rol.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, requester entity.Requester) (*dto.DashboardResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch requester.Role {
	case entity.RoleAdmin:
		links, err := uc.links.GetAll(ctx, requester)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardResponse{
			Role:   string(entity.RoleAdmin),
			Total:  len(links),
			Recent: mostRecent(links, adminRecent),
			Stats: dto.DashboardStats{
				Today:    countSince(links, todayStart),
				LastWeek: countSince(links, todayStart.AddDate(0, 0, -7)),
			},
		}, nil

	case entity.RoleWorker:
		links, err := uc.links.MyApplications(ctx, requester)
		if err != nil {
			return nil, err
		}
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &dto.DashboardResponse{
			Role:   string(entity.RoleWorker),
			Total:  len(links),
			Recent: mostRecent(links, scopedRecent),
			Stats: dto.DashboardStats{
				ThisMonth: countSince(links, monthStart),
			},
		}, nil

	case entity.RoleEmployer:
		links, err := uc.links.ReceivedApplications(ctx, requester)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardResponse{
			Role:   string(entity.RoleEmployer),
			Total:  len(links),
			Recent: mostRecent(links, scopedRecent),
			Stats: dto.DashboardStats{
				Today: countSince(links, todayStart),
			},
		}, nil
	}

	return nil, fmt.Errorf("dashboard: rol desconocido %q", requester.Role)
}

// mostRecent devuelve los n links más recientes por SubmittedAt descendente,
// sin mutar la lista de entrada.
func mostRecent(links []dto.LinkResponse, n int) []dto.LinkResponse {
	sorted := make([]dto.LinkResponse, len(links))
	copy(sorted, links)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SubmittedAt.After(sorted[j].SubmittedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func countSince(links []dto.LinkResponse, since time.Time) int {
	count := 0
	for _, l := range links {
		if !l.SubmittedAt.Before(since) {
			count++
		}
	}
	return count
}
