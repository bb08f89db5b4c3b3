package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
)

// pathID lee un parámetro de ruta numérico (id o código).
func pathID(c *fiber.Ctx, name string) (int64, error) {
	n, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || n < 1 {
		return 0, domain.BadRequest(msgInvalidID)
	}
	return n, nil
}

// pageQuery lee ?limit=&offset=; los valores fuera de rango los recorta DefaultPage.
func pageQuery(c *fiber.Ctx) (dto.PageRequest, error) {
	var p dto.PageRequest
	if err := c.QueryParser(&p); err != nil {
		return p, domain.BadRequest("limit e offset devem ser números inteiros")
	}
	return p, nil
}
