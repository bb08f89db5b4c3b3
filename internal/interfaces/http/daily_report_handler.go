package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/application/usecase"
)

// DailyReportHandler relatórios diários de expedição.
type DailyReportHandler struct {
	uc *usecase.DailyReportUseCase
}

// NewDailyReportHandler construye el handler.
func NewDailyReportHandler(uc *usecase.DailyReportUseCase) *DailyReportHandler {
	return &DailyReportHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar expedição
// @Description  Acepta products+customerCode o customerGroups (un relatório por cliente, todo en una transacción).
// @Description  fillingDate la fija el servidor.
// @Tags         daily-report
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateDailyReportRequest  true  "expedição"
// @Success      201   {object}  dto.CreateDailyReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "usuário, cliente o veículo inexistente"
// @Router       /daily-report [post]
func (h *DailyReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDailyReportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar relatórios diários
// @Tags         daily-report
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.Page[dto.DailyReportResponse]
// @Router       /daily-report [get]
func (h *DailyReportHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /daily-report/:id
func (h *DailyReportHandler) GetByID(c *fiber.Ctx) error {
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

// Update PATCH /daily-report/:id
func (h *DailyReportHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateDailyReportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /daily-report/:id (admin)
func (h *DailyReportHandler) Delete(c *fiber.Ctx) error {
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
