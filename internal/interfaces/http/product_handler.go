package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/application/usecase"
)

// ProductHandler maneja el catálogo de produtos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar produto
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProductRequest  true  "produto"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Listar produtos
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.Page[dto.ProductResponse]
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
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

// GetByCode GET /products/:code
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	code, err := pathID(c, "code")
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.GetByCode(c.UserContext(), code)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update PATCH /products/:code
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	code, err := pathID(c, "code")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), code, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /products/:code; 409 si hay relatórios mensais del produto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	code, err := pathID(c, "code")
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), code)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
