package repository

import (
	"context"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
)

// DailyReportRepository define el puerto de persistencia para los relatórios diarios.
type DailyReportRepository interface {
	// CreateMany inserta todos los relatórios en una única transacción y completa sus IDs.
	CreateMany(ctx context.Context, reports []*entity.DailyShipmentReport) error
	GetByID(ctx context.Context, id int64) (*entity.DailyShipmentReport, error)
	List(ctx context.Context, page Page) ([]*entity.DailyShipmentReport, int, error)
	ListAll(ctx context.Context) ([]*entity.DailyShipmentReport, error)
	Update(ctx context.Context, report *entity.DailyShipmentReport) error
	Delete(ctx context.Context, id int64) error
}
