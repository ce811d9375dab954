package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/application/usecase"
)

// ResumeHandler maneja las peticiones HTTP para Resume (protegido).
type ResumeHandler struct {
	uc *usecase.ResumeUseCase
}

// NewResumeHandler construye el handler.
func NewResumeHandler(uc *usecase.ResumeUseCase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

// List godoc
// @Summary      Listar resumes (visibilidad según rol)
// @Tags         resumes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ResumeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/resumes [get]
func (h *ResumeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context(), GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar resumes por keyword en título o descripción
// @Tags         resumes
// @Security     Bearer
// @Produce      json
// @Param        keyword  query  string  false  "Subcadena a buscar (case-sensitive)"
// @Success      200  {array}   dto.ResumeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/resumes/search [get]
func (h *ResumeHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), c.Query("keyword"), GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener resume por ID
// @Tags         resumes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del resume"
// @Success      200  {object}  dto.ResumeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resumes/{id} [get]
func (h *ResumeHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear resume (solo worker; el dueño es el requester)
// @Tags         resumes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResumeRequest  true  "Datos del resume"
// @Success      201   {object}  dto.ResumeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/resumes [post]
func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResumeRequest
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
// @Summary      Actualizar resume (solo el dueño)
// @Tags         resumes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del resume"
// @Param        body  body  dto.UpdateResumeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ResumeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resumes/{id} [put]
func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateResumeRequest
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
// @Summary      Eliminar resume (solo el dueño; sus links caen en cascada)
// @Tags         resumes
// @Security     Bearer
// @Param        id  path  string  true  "ID del resume"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id, GetRequester(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
