package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCustomerRequest  true  "cliente"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
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
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.Page[dto.CustomerResponse]
// @Router       /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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

// GetByCode GET /customers/:code
func (h *CustomerHandler) GetByCode(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Atualizar cliente (parcial)
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path  int                        true  "código do cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "campos a alterar"
// @Success      200   {object}  dto.UpdatedResponse[dto.CustomerResponse]
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /customers/{code} [patch]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	code, err := pathID(c, "code")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), code, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir cliente
// @Description  409 si el cliente tiene relatórios vinculados.
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        code  path  int  true  "código do cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /customers/{code} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
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
