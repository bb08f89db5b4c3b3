package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
)

const (
	msgInternal    = "Erro interno do servidor."
	msgInvalidBody = "Corpo da requisição inválido"
	msgInvalidID   = "Identificador inválido."
)

// kindStatus orden importa: Duplicate/Referenced son Conflict y se resuelven antes que el resto.
var kindStatus = []struct {
	kind   error
	status int
	code   string
}{
	{domain.ErrBadRequest, fiber.StatusBadRequest, "BAD_REQUEST"},
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// statusOf traduce la clase del error de dominio a status HTTP y código.
func statusOf(err error) (int, string) {
	for _, k := range kindStatus {
		if errors.Is(err, k.kind) {
			return k.status, k.code
		}
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// fail escribe el ErrorResponse correspondiente. Los 500 se registran y nunca
// exponen el error original.
func fail(c *fiber.Ctx, err error) error {
	status, code := statusOf(err)
	msg := domain.Message(err)
	if status == fiber.StatusInternalServerError || msg == "" {
		requestLogger(c).Error().Err(err).Str("path", c.Path()).Msg("http: error no controlado")
		status, code, msg = fiber.StatusInternalServerError, "INTERNAL", msgInternal
	} else {
		requestLogger(c).Debug().Err(err).Int("status", status).Msg("http: error de dominio")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// badBody respuesta para JSON mal formado o con campos desconocidos.
func badBody(c *fiber.Ctx, err error) error {
	return fail(c, domain.Wrap(domain.ErrBadRequest, msgInvalidBody+": "+err.Error(), err))
}

// ErrorHandler manejador global de Fiber: errores de ruta (404/405), panics
// recuperados y cualquier error que un handler devuelva sin responder.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusRequestTimeout:
				code = "TIMEOUT"
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		if _, ok := c.Locals(localLogger).(*zerolog.Logger); !ok {
			c.Locals(localLogger, &log)
		}
		return fail(c, err)
	}
}
