package repository

import (
	"context"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByCode(ctx context.Context, code int64) (*entity.Customer, error)
	// GetByCodeOrTaxID busca cualquier cliente que choque con la clave natural.
	GetByCodeOrTaxID(ctx context.Context, code int64, taxID string) (*entity.Customer, error)
	List(ctx context.Context, page Page) ([]*entity.Customer, int, error)
	ListAll(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, code int64) error
	Count(ctx context.Context) (int, error)
}
