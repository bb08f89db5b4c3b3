package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/application/usecase"
)

// MonthlyReportHandler relatórios mensais (base del dashboard).
type MonthlyReportHandler struct {
	uc *usecase.MonthlyReportUseCase
}

// NewMonthlyReportHandler construye el handler.
func NewMonthlyReportHandler(uc *usecase.MonthlyReportUseCase) *MonthlyReportHandler {
	return &MonthlyReportHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar relatório mensal
// @Tags         monthly-report
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMonthlyReportRequest  true  "relatório"
// @Success      201   {object}  dto.MonthlyReportResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /monthly-report [post]
func (h *MonthlyReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMonthlyReportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /monthly-report
func (h *MonthlyReportHandler) List(c *fiber.Ctx) error {
	page, err := pageQuery(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /monthly-report/:id
func (h *MonthlyReportHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update PATCH /monthly-report/:id
func (h *MonthlyReportHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateMonthlyReportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /monthly-report/:id (admin)
func (h *MonthlyReportHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
