package repository

import (
	"context"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para Vehicle.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id int64) (*entity.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*entity.Vehicle, error)
	List(ctx context.Context, page Page) ([]*entity.Vehicle, int, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
