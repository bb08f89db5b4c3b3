package repository

import (
	"context"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByCode(ctx context.Context, code int64) (*entity.Product, error)
	List(ctx context.Context, page Page) ([]*entity.Product, int, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, code int64) error
	Count(ctx context.Context) (int, error)
}
