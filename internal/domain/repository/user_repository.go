package repository

import (
	"context"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, page Page) ([]*entity.User, int, error)
	ListAll(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
