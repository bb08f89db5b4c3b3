package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
	"github.com/jhoicas/expedicao-api/pkg/jwt"
)

// Mensajes al cliente. El mismo para usuario inexistente, inactivo o password incorrecto.
const (
	msgBadCredentials = "Usuário ou Senha incorretos."
	msgAuthFailure    = "Falha ao autenticar o usuário."
	msgUnauthorized   = "Acesso não autorizado."

	msgPasswordTooLong = "A senha deve ter no máximo 72 bytes"
)

// Hash de relleno para que la comparación cueste lo mismo cuando el usuario no existe.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("expedicao-dummy-password"), bcrypt.DefaultCost)

// Principal usuario autenticado adjunto a la request.
type Principal struct {
	UserID   int64
	Username string
	Role     string
}

// IsAdmin indica rol admin; nil-safe.
func (p *Principal) IsAdmin() bool { return p != nil && p.Role == entity.RoleAdmin }

// AuthUseCase login y validación de sesión.
type AuthUseCase struct {
	users  repository.UserRepository
	tokens jwt.Options
	log    zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, tokens jwt.Options, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, log: log}
}

// Authenticate verifica username/password y emite un token firmado.
func (uc *AuthUseCase) Authenticate(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		uc.log.Error().Err(err).Msg("auth: lookup de usuario")
		return nil, domain.Wrap(domain.ErrUnauthenticated, msgAuthFailure, err)
	}
	if user == nil || !user.Active {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.Unauthenticated(msgBadCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Unauthenticated(msgBadCredentials)
	}
	token, err := jwt.Generate(uc.tokens, user.ID, user.Username, user.Role)
	if err != nil {
		uc.log.Error().Err(err).Int64("user_id", user.ID).Msg("auth: firma de token")
		return nil, domain.Wrap(domain.ErrUnauthenticated, msgAuthFailure, err)
	}
	return &dto.LoginResponse{
		ID:       dto.ID(user.ID),
		Name:     user.Name,
		Username: user.Username,
		Active:   user.Active,
		Role:     user.Role,
		Token:    token,
	}, nil
}

// ValidateSession verifica el token y recarga el usuario: un usuario borrado o
// desactivado queda fuera aunque su token siga vigente.
func (uc *AuthUseCase) ValidateSession(ctx context.Context, token string) (*Principal, error) {
	claims, err := jwt.Parse(uc.tokens, token)
	if err != nil {
		return nil, domain.Wrap(domain.ErrUnauthenticated, msgUnauthorized, err)
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, domain.Wrap(domain.ErrUnauthenticated, msgUnauthorized, err)
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Int64("user_id", id).Msg("auth: recarga de usuario")
		return nil, domain.Wrap(domain.ErrUnauthenticated, msgUnauthorized, err)
	}
	if user == nil || !user.Active {
		return nil, domain.Unauthenticated(msgUnauthorized)
	}
	return &Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// HashPassword bcrypt con el costo por defecto. Más de 72 bytes es BadRequest.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.Wrap(domain.ErrBadRequest, msgPasswordTooLong, err)
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
