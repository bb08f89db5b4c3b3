package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/expedicao-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Totais de produtos, clientes e veículos
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// MostProductsSold godoc
// @Summary      Ranking de produtos por quantidade vendida
// @Description  nome es null cuando el produto ya no está en el catálogo.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ProductSoldDTO
// @Router       /dashboard/mostProductsSold [get]
func (h *DashboardHandler) MostProductsSold(c *fiber.Ctx) error {
	out, err := h.uc.MostProductsSold(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ProductsSoldByState godoc
// @Summary      Quantidade vendida por destino (UF)
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.StateSalesDTO
// @Router       /dashboard/productsSoldByState [get]
func (h *DashboardHandler) ProductsSoldByState(c *fiber.Ctx) error {
	out, err := h.uc.ProductsSoldByState(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
