package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/expedicao-api/internal/application/reporting"
)

// ReportHandler vista por mes y relatório de comercialização (DIPOVA).
type ReportHandler struct {
	uc *reporting.ReportingUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportingUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily godoc
// @Summary      Relatórios diários agrupados por mês
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.MonthGroupDTO
// @Router       /reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.Monthly(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Months GET /reports/months: meses disponibles, el más reciente primero.
func (h *ReportHandler) Months(c *fiber.Ctx) error {
	out, err := h.uc.Months(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Dipova godoc
// @Summary      Relatório de comercialização (JSON)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  string  false  "Mon-YYYY, ej. Jan-2025; vacío = mes más reciente"
// @Success      200  {object}  dto.DipovaDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /reports/dipova [get]
func (h *ReportHandler) Dipova(c *fiber.Ctx) error {
	out, err := h.uc.Dipova(c.UserContext(), c.Query("month"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Descargar relatório de comercialização
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        month   query  string  false  "Mon-YYYY"
// @Param        format  query  string  false  "xlsx (defecto) o pdf"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /reports/dipova/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	file, err := h.uc.Export(c.UserContext(), c.Query("month"), c.Query("format"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Send(file.Body)
}
