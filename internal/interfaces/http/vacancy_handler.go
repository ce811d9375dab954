package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/application/usecase"
)

// VacancyHandler maneja las peticiones HTTP para Vacancy (protegido).
type VacancyHandler struct {
	uc *usecase.VacancyUseCase
}

// NewVacancyHandler construye el handler.
func NewVacancyHandler(uc *usecase.VacancyUseCase) *VacancyHandler {
	return &VacancyHandler{uc: uc}
}

// List godoc
// @Summary      Listar vacantes (visibilidad según rol)
// @Tags         vacancies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.VacancyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/vacancies [get]
func (h *VacancyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context(), GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMine godoc
// @Summary      Listar las vacantes del employer autenticado
// @Tags         vacancies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.VacancyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/vacancies/my [get]
func (h *VacancyHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(c.Context(), GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar vacantes por keyword en título o descripción
// @Tags         vacancies
// @Security     Bearer
// @Produce      json
// @Param        keyword  query  string  false  "Subcadena a buscar (case-sensitive)"
// @Success      200  {array}   dto.VacancyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/vacancies/search [get]
func (h *VacancyHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), c.Query("keyword"), GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vacancy por ID
// @Tags         vacancies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vacancy"
// @Success      200  {object}  dto.VacancyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vacancies/{id} [get]
func (h *VacancyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id, GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear vacancy (solo employer; el dueño es el requester)
// @Tags         vacancies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVacancyRequest  true  "Datos de la vacancy"
// @Success      201   {object}  dto.VacancyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/vacancies [post]
func (h *VacancyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVacancyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in, GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar vacancy (dueño o admin)
// @Tags         vacancies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la vacancy"
// @Param        body  body  dto.UpdateVacancyRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.VacancyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vacancies/{id} [put]
func (h *VacancyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateVacancyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in, GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vacancy (dueño o admin; sus links caen en cascada)
// @Tags         vacancies
// @Security     Bearer
// @Param        id  path  string  true  "ID de la vacancy"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vacancies/{id} [delete]
func (h *VacancyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id, GetRequester(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
