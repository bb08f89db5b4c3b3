package repository

import (
	"context"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
)

// MonthlyReportRepository define el puerto de persistencia para los registros mensuales.
type MonthlyReportRepository interface {
	Create(ctx context.Context, report *entity.MonthlyShipmentReport) error
	GetByID(ctx context.Context, id int64) (*entity.MonthlyShipmentReport, error)
	List(ctx context.Context, page Page) ([]*entity.MonthlyShipmentReport, int, error)
	Update(ctx context.Context, report *entity.MonthlyShipmentReport) error
	Delete(ctx context.Context, id int64) error
}
