package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/expedicao-api/internal/application/auth"
	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	apphttp "github.com/jhoicas/expedicao-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeSessions acepta los tokens registrados en el mapa; cualquier otro es inválido.
type fakeSessions map[string]*auth.Principal

func (f fakeSessions) ValidateSession(_ context.Context, token string) (*auth.Principal, error) {
	if p, ok := f[token]; ok {
		return p, nil
	}
	return nil, domain.Unauthenticated("Acesso não autorizado.")
}

var sessions = fakeSessions{
	"tok-admin": {UserID: 1, Username: "victor.leal", Role: entity.RoleAdmin},
	"tok-user":  {UserID: 2, Username: "maria.souza", Role: entity.RoleUser},
}

// buildGuardApp aplicación mínima con AuthMiddleware + RequireAdmin delante de un handler dummy.
func buildGuardApp() *fiber.App {
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, zerolog.Nop())
	app.Get("/protected",
		apphttp.AuthMiddleware(sessions),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "username": apphttp.GetPrincipal(c).Username})
		},
	)
	app.Get("/me", apphttp.AuthMiddleware(sessions), func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		return c.JSON(fiber.Map{"user_id": p.UserID, "role": p.Role})
	})
	// Ruta mal compuesta: RequireAdmin sin AuthMiddleware delante.
	app.Get("/misrouted", apphttp.RequireAdmin(), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	return app
}

func get(t *testing.T, app *fiber.App, path, authHeader string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var body dto.ErrorResponse
	if resp.StatusCode >= 400 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp, body := get(t, buildGuardApp(), "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
	assert.Equal(t, "Token não encontrado!", body.Message)
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildGuardApp()
	for _, h := range []string{"tok-admin", "Basic tok-admin", "Bearer ", "bearer tok-admin"} {
		resp, body := get(t, app, "/protected", h)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, h)
		assert.Equal(t, "Token não encontrado!", body.Message, h)
	}
}

func TestAuthMiddleware_TokenRechazado_Retorna401(t *testing.T) {
	resp, body := get(t, buildGuardApp(), "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Acesso não autorizado.", body.Message)
}

func TestAuthMiddleware_AdjuntaPrincipal(t *testing.T) {
	resp, _ := get(t, buildGuardApp(), "/me", "Bearer tok-user")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.UserID)
	assert.Equal(t, entity.RoleUser, body.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAccede(t *testing.T) {
	resp, _ := get(t, buildGuardApp(), "/protected", "Bearer tok-admin")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_UsuarioComunRecibe403(t *testing.T) {
	resp, body := get(t, buildGuardApp(), "/protected", "Bearer tok-user")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Equal(t, "Acesso Negado.", body.Message)
}

func TestRequireAdmin_SinPrincipalRecibe400(t *testing.T) {
	resp, body := get(t, buildGuardApp(), "/misrouted", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Token inválido.", body.Message)
}

func TestRequestID_GeneraOPropaga(t *testing.T) {
	app := buildGuardApp()

	resp, _ := get(t, app, "/protected", "Bearer tok-admin")
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-admin")
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestErrorHandler_RutaInexistente(t *testing.T) {
	resp, body := get(t, buildGuardApp(), "/no-existe", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body.Code)
}
