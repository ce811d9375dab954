package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/empleos-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen de actividad por rol.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen de links según el rol del requester.
// GET /api/dashboard/summary
//
// admin:    total del sistema, 10 más recientes, contadores de hoy y 7 días.
// worker:   postulaciones propias, 5 más recientes, contador del mes.
// employer: postulaciones recibidas, 5 más recientes, contador de hoy.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context(), GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
