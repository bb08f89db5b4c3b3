package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/expedicao-api/internal/application/auth"
	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

const (
	msgUsernameTaken = "Nome de usuário já cadastrado."
	msgUserNotFound  = "Usuário não encontrado."
)

// UserUseCase aplica reglas de negocio para usuarios. Nunca devuelve el hash.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create registra un usuario activo con el password hasheado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.MessageResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict(msgUsernameTaken)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Wrap(domain.ErrConflict, msgUsernameTaken, err)
		}
		return nil, err
	}
	return &dto.MessageResponse{Message: "Usuário registrado com sucesso!"}, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound(msgUserNotFound)
	}
	return entityToUserResponse(user), nil
}

// List lista usuarios por id descendente.
func (uc *UserUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.Page[dto.UserResponse], error) {
	in, page := toRepoPage(in)
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	out := dto.NewPage(items, in, total)
	return &out, nil
}

// Update aplica sólo los campos informados; un password nuevo se vuelve a hashear.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UpdatedResponse[dto.UserResponse], error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound(msgUserNotFound)
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Username != nil && *in.Username != user.Username {
		other, err := uc.repo.GetByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.Conflict(msgUsernameTaken)
		}
		user.Username = *in.Username
	}
	setString(&user.Role, in.Role)
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Wrap(domain.ErrConflict, msgUsernameTaken, err)
		}
		return nil, err
	}
	return &dto.UpdatedResponse[dto.UserResponse]{
		Data:    *entityToUserResponse(user),
		Message: "Usuário atualizado com sucesso!",
	}, nil
}

// Delete elimina un usuario; Conflict si tiene relatórios.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound(msgUserNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrReferenced) {
			return nil, domain.Wrap(domain.ErrConflict, "Não é possível deletar usuários vinculados a relatórios.", err)
		}
		return nil, err
	}
	return &dto.MessageResponse{Message: "Usuário deletado com sucesso!"}, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        dto.ID(u.ID),
		Name:      u.Name,
		Username:  u.Username,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
