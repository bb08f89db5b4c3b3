package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

var _ repository.MonthlyReportRepository = (*MonthlyReportRepo)(nil)

const monthlyReportColumns = `id, quantity, destination, temperature, deliverer,
	production_date, shipment_date, product_id, customer_id`

// MonthlyReportRepo persiste los registros mensuales del dashboard.
type MonthlyReportRepo struct {
	q  Querier
	tx *TxRunner
}

// NewMonthlyReportRepository construye el adaptador.
func NewMonthlyReportRepository(pool *pgxpool.Pool) *MonthlyReportRepo {
	return &MonthlyReportRepo{q: pool, tx: NewTxRunner(pool)}
}

func scanMonthlyReport(row pgx.Row) (*entity.MonthlyShipmentReport, error) {
	var m entity.MonthlyShipmentReport
	err := row.Scan(&m.ID, &m.Quantity, &m.Destination, &m.Temperature, &m.Deliverer,
		&m.ProductionDate, &m.ShipmentDate, &m.ProductID, &m.CustomerID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un registro y completa su ID.
func (r *MonthlyReportRepo) Create(ctx context.Context, m *entity.MonthlyShipmentReport) error {
	const query = `
		INSERT INTO monthly_shipment_report (
			quantity, destination, temperature, deliverer, production_date, shipment_date, product_id, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.Quantity, m.Destination, m.Temperature, m.Deliverer, m.ProductionDate, m.ShipmentDate,
		m.ProductID, m.CustomerID).Scan(&m.ID)
	return translateError("insert monthly report", err)
}

// GetByID obtiene un registro.
func (r *MonthlyReportRepo) GetByID(ctx context.Context, id int64) (*entity.MonthlyShipmentReport, error) {
	m, err := scanMonthlyReport(r.q.QueryRow(ctx, `SELECT `+monthlyReportColumns+` FROM monthly_shipment_report WHERE id = $1`, id))
	return noRows(m, "get monthly report", err)
}

// List página de registros por id descendente.
func (r *MonthlyReportRepo) List(ctx context.Context, page repository.Page) ([]*entity.MonthlyShipmentReport, int, error) {
	return listPage(ctx, r.tx, "monthly_shipment_report", monthlyReportColumns, "id", page, scanMonthlyReport)
}

// Update reescribe el registro.
func (r *MonthlyReportRepo) Update(ctx context.Context, m *entity.MonthlyShipmentReport) error {
	const query = `
		UPDATE monthly_shipment_report SET
			quantity = $2, destination = $3, temperature = $4, deliverer = $5,
			production_date = $6, shipment_date = $7, product_id = $8, customer_id = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Quantity, m.Destination, m.Temperature, m.Deliverer,
		m.ProductionDate, m.ShipmentDate, m.ProductID, m.CustomerID)
	return translateError("update monthly report", err)
}

// Delete elimina un registro.
func (r *MonthlyReportRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM monthly_shipment_report WHERE id = $1`, id)
	return translateError("delete monthly report", err)
}
