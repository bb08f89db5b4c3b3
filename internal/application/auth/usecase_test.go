package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/expedicao-api/internal/application/auth"
	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/infrastructure/memory"
	"github.com/jhoicas/expedicao-api/pkg/jwt"
)

var testTokens = jwt.Options{Secret: "test-secret-key-for-unit-tests", Issuer: "expedicao-test", TTL: time.Hour}

func setup(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	s := memory.New()
	hash, err := auth.HashPassword("segredo")
	require.NoError(t, err)
	require.NoError(t, s.Users().Create(context.Background(), &entity.User{
		Name: "Victor", Username: "victor.leal", PasswordHash: hash, Role: entity.RoleAdmin, Active: true,
	}))
	return auth.NewAuthUseCase(s.Users(), testTokens, zerolog.Nop()), s
}

func TestAuthenticate_OK(t *testing.T) {
	uc, _ := setup(t)
	out, err := uc.Authenticate(context.Background(), dto.LoginRequest{Username: "victor.leal", Password: "segredo"})
	require.NoError(t, err)
	assert.Equal(t, dto.ID(1), out.ID)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	require.NotEmpty(t, out.Token)

	p, err := uc.ValidateSession(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.UserID)
	assert.True(t, p.IsAdmin())
}

func TestAuthenticate_MismoMensajeParaTodoFallo(t *testing.T) {
	uc, s := setup(t)
	ctx := context.Background()

	_, err := uc.Authenticate(ctx, dto.LoginRequest{Username: "victor.leal", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, "Usuário ou Senha incorretos.", domain.Message(err))

	_, err = uc.Authenticate(ctx, dto.LoginRequest{Username: "nao.existe", Password: "segredo"})
	assert.Equal(t, "Usuário ou Senha incorretos.", domain.Message(err))

	u, err := s.Users().GetByID(ctx, 1)
	require.NoError(t, err)
	u.Active = false
	require.NoError(t, s.Users().Update(ctx, u))
	_, err = uc.Authenticate(ctx, dto.LoginRequest{Username: "victor.leal", Password: "segredo"})
	assert.Equal(t, "Usuário ou Senha incorretos.", domain.Message(err))
}

func TestValidateSession_UsuarioDesactivadoOBorrado(t *testing.T) {
	uc, s := setup(t)
	ctx := context.Background()
	out, err := uc.Authenticate(ctx, dto.LoginRequest{Username: "victor.leal", Password: "segredo"})
	require.NoError(t, err)

	u, err := s.Users().GetByID(ctx, 1)
	require.NoError(t, err)
	u.Active = false
	require.NoError(t, s.Users().Update(ctx, u))

	_, err = uc.ValidateSession(ctx, out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, "Acesso não autorizado.", domain.Message(err))

	require.NoError(t, s.Users().Delete(ctx, 1))
	_, err = uc.ValidateSession(ctx, out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.ValidateSession(ctx, "no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestPrincipal_IsAdminNilSafe(t *testing.T) {
	var p *auth.Principal
	assert.False(t, p.IsAdmin())
	assert.False(t, (&auth.Principal{Role: entity.RoleUser}).IsAdmin())
}

func TestHashPassword_MasDe72BytesEsBadRequest(t *testing.T) {
	_, err := auth.HashPassword(strings.Repeat("é", 40))
	require.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Equal(t, "A senha deve ter no máximo 72 bytes", domain.Message(err))
}
