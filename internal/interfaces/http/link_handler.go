package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empleos-api/internal/application/dto"
	"github.com/jhoicas/empleos-api/internal/application/usecase"
)

// LinkHandler maneja las peticiones HTTP para Link (protegido).
type LinkHandler struct {
	uc *usecase.LinkUseCase
}

// NewLinkHandler construye el handler.
func NewLinkHandler(uc *usecase.LinkUseCase) *LinkHandler {
	return &LinkHandler{uc: uc}
}

// Apply godoc
// @Summary      Postular un resume propio a una vacancy (worker)
// @Tags         links
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyRequest  true  "resume_id, vacancy_id"
// @Success      201   {object}  dto.LinkResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/links/apply [post]
func (h *LinkHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ResumeID == "" || in.VacancyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "resume_id y vacancy_id son requeridos"})
	}
	out, err := h.uc.Apply(c.Context(), in.ResumeID, in.VacancyID, GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Offer godoc
// @Summary      Ofrecer una vacancy propia a un resume (employer)
// @Tags         links
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OfferRequest  true  "vacancy_id, resume_id"
// @Success      201   {object}  dto.LinkResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/links/offer [post]
func (h *LinkHandler) Offer(c *fiber.Ctx) error {
	var in dto.OfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ResumeID == "" || in.VacancyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "vacancy_id y resume_id son requeridos"})
	}
	out, err := h.uc.Offer(c.Context(), in.VacancyID, in.ResumeID, GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CheckExists godoc
// @Summary      Verificar si existe un link para el par resume/vacancy
// @Tags         links
// @Security     Bearer
// @Produce      json
// @Param        resume_id   query  string  true  "ID del resume"
// @Param        vacancy_id  query  string  true  "ID de la vacancy"
// @Success      200  {object}  dto.LinkExistsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/links/check-exists [get]
func (h *LinkHandler) CheckExists(c *fiber.Ctx) error {
	resumeID := c.Query("resume_id")
	vacancyID := c.Query("vacancy_id")
	if resumeID == "" || vacancyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "resume_id y vacancy_id son requeridos"})
	}
	exists, err := h.uc.Exists(c.Context(), resumeID, vacancyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LinkExistsResponse{Exists: exists})
}

// List godoc
// @Summary      Listar todos los links (solo admin)
// @Tags         links
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.LinkResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/links [get]
func (h *LinkHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context(), GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MyApplications godoc
// @Summary      Postulaciones de los resumes del worker autenticado
// @Tags         links
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.LinkResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/links/my-applications [get]
func (h *LinkHandler) MyApplications(c *fiber.Ctx) error {
	out, err := h.uc.MyApplications(c.Context(), GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReceivedApplications godoc
// @Summary      Postulaciones recibidas en las vacantes del employer autenticado
// @Tags         links
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.LinkResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/links/received-applications [get]
func (h *LinkHandler) ReceivedApplications(c *fiber.Ctx) error {
	out, err := h.uc.ReceivedApplications(c.Context(), GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener link por ID (admin o dueño de alguno de los lados)
// @Tags         links
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del link"
// @Success      200  {object}  dto.LinkResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/links/{id} [get]
func (h *LinkHandler) GetByID(c *fiber.Ctx) error {
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

// Delete godoc
// @Summary      Retirar un link (admin o dueño de alguno de los lados)
// @Tags         links
// @Security     Bearer
// @Param        id  path  string  true  "ID del link"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/links/{id} [delete]
func (h *LinkHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id, GetRequester(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ByResume godoc
// @Summary      Links de un resume (visibles para el requester)
// @Tags         links
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del resume"
// @Success      200  {array}   dto.LinkResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resumes/{id}/links [get]
func (h *LinkHandler) ByResume(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByResume(c.Context(), id, GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByVacancy godoc
// @Summary      Links de una vacancy (visibles para el requester)
// @Tags         links
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vacancy"
// @Success      200  {array}   dto.LinkResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vacancies/{id}/links [get]
func (h *LinkHandler) ByVacancy(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByVacancy(c.Context(), id, GetRequester(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
