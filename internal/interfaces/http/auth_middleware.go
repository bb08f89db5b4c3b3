package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/expedicao-api/internal/application/auth"
	"github.com/jhoicas/expedicao-api/internal/domain"
)

// LocalPrincipal clave de Locals donde AuthMiddleware deja el *auth.Principal.
const LocalPrincipal = "principal"

const (
	msgMissingToken = "Token não encontrado!"
	msgUnauthorized = "Acesso não autorizado."
	msgNoPrincipal  = "Token inválido."
	msgAccessDenied = "Acesso Negado."
)

// SessionValidator verifica el token y recarga el usuario. Lo implementa
// *auth.AuthUseCase; la interfaz permite probar el middleware aislado.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*auth.Principal, error)
}

// AuthMiddleware exige "Authorization: Bearer <token>" y un usuario activo detrás del token.
func AuthMiddleware(sessions SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fail(c, domain.Unauthenticated(msgMissingToken))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			return fail(c, domain.Unauthenticated(msgMissingToken))
		}
		principal, err := sessions.ValidateSession(c.UserContext(), strings.TrimSpace(parts[1]))
		if err != nil {
			if domain.Message(err) == "" {
				err = domain.Wrap(domain.ErrUnauthenticated, msgUnauthorized, err)
			}
			return fail(c, err)
		}
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// RequireAdmin debe ir después de AuthMiddleware: sin principal es un error de
// composición de rutas (400); con rol distinto de admin, 403.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return fail(c, domain.BadRequest(msgNoPrincipal))
		}
		if !p.IsAdmin() {
			return fail(c, domain.Forbidden(msgAccessDenied))
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el usuario autenticado (nil fuera de rutas protegidas).
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	return p
}
