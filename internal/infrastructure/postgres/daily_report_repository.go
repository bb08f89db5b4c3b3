package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

var _ repository.DailyReportRepository = (*DailyReportRepo)(nil)

const dailyReportColumns = `id, invoice_number, quantity, production_date, vehicle_temperature,
	has_good_sanitary_condition, driver, user_id, products, customer_code, has_sif_or_sisbi,
	sif_or_sisbi, product_temperature, filling_date, shipment_date, deliver_vehicle`

// DailyReportRepo persiste relatórios diarios; las líneas de producto van en JSONB.
type DailyReportRepo struct {
	q  Querier
	tx *TxRunner
}

// NewDailyReportRepository construye el adaptador.
func NewDailyReportRepository(pool *pgxpool.Pool) *DailyReportRepo {
	return &DailyReportRepo{q: pool, tx: NewTxRunner(pool)}
}

func scanDailyReport(row pgx.Row) (*entity.DailyShipmentReport, error) {
	var (
		r        entity.DailyShipmentReport
		products []byte
	)
	err := row.Scan(&r.ID, &r.InvoiceNumber, &r.Quantity, &r.ProductionDate, &r.VehicleTemperature,
		&r.HasGoodSanitaryCondition, &r.Driver, &r.UserID, &products, &r.CustomerCode, &r.HasSifOrSisbi,
		&r.SifOrSisbi, &r.ProductTemperature, &r.FillingDate, &r.ShipmentDate, &r.DeliverVehicle)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		if err := json.Unmarshal(products, &r.Products); err != nil {
			return nil, fmt.Errorf("decode products of report %d: %w", r.ID, err)
		}
	}
	return &r, nil
}

func encodeItems(items []entity.ProductItem) ([]byte, error) {
	if items == nil {
		items = []entity.ProductItem{}
	}
	return json.Marshal(items)
}

// CreateMany inserta todos los relatórios en una transacción; si uno falla no queda ninguno.
func (r *DailyReportRepo) CreateMany(ctx context.Context, reports []*entity.DailyShipmentReport) error {
	const query = `
		INSERT INTO daily_shipment_report (
			invoice_number, quantity, production_date, vehicle_temperature, has_good_sanitary_condition,
			driver, user_id, products, customer_code, has_sif_or_sisbi, sif_or_sisbi,
			product_temperature, filling_date, shipment_date, deliver_vehicle)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	return r.tx.Run(ctx, func(q Querier) error {
		for _, d := range reports {
			items, err := encodeItems(d.Products)
			if err != nil {
				return fmt.Errorf("encode products: %w", err)
			}
			err = q.QueryRow(ctx, query,
				d.InvoiceNumber, d.Quantity, d.ProductionDate, d.VehicleTemperature, d.HasGoodSanitaryCondition,
				d.Driver, d.UserID, items, d.CustomerCode, d.HasSifOrSisbi, d.SifOrSisbi,
				d.ProductTemperature, d.FillingDate, d.ShipmentDate, d.DeliverVehicle,
			).Scan(&d.ID)
			if err != nil {
				return translateError("insert daily report", err)
			}
		}
		return nil
	})
}

// GetByID obtiene un relatório.
func (r *DailyReportRepo) GetByID(ctx context.Context, id int64) (*entity.DailyShipmentReport, error) {
	d, err := scanDailyReport(r.q.QueryRow(ctx, `SELECT `+dailyReportColumns+` FROM daily_shipment_report WHERE id = $1`, id))
	return noRows(d, "get daily report", err)
}

// List página de relatórios por id descendente.
func (r *DailyReportRepo) List(ctx context.Context, page repository.Page) ([]*entity.DailyShipmentReport, int, error) {
	return listPage(ctx, r.tx, "daily_shipment_report", dailyReportColumns, "id", page, scanDailyReport)
}

// ListAll todos los relatórios, fuente de la vista mensual y del DIPOVA.
func (r *DailyReportRepo) ListAll(ctx context.Context) ([]*entity.DailyShipmentReport, error) {
	return listAll(ctx, r.q, "daily_shipment_report", dailyReportColumns, "id", scanDailyReport)
}

// Update reescribe el relatório; filling_date no se toca.
func (r *DailyReportRepo) Update(ctx context.Context, d *entity.DailyShipmentReport) error {
	items, err := encodeItems(d.Products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	const query = `
		UPDATE daily_shipment_report SET
			invoice_number = $2, quantity = $3, production_date = $4, vehicle_temperature = $5,
			has_good_sanitary_condition = $6, driver = $7, user_id = $8, products = $9,
			customer_code = $10, has_sif_or_sisbi = $11, sif_or_sisbi = $12,
			product_temperature = $13, shipment_date = $14, deliver_vehicle = $15
		WHERE id = $1`
	_, err = r.q.Exec(ctx, query,
		d.ID, d.InvoiceNumber, d.Quantity, d.ProductionDate, d.VehicleTemperature,
		d.HasGoodSanitaryCondition, d.Driver, d.UserID, items,
		d.CustomerCode, d.HasSifOrSisbi, d.SifOrSisbi,
		d.ProductTemperature, d.ShipmentDate, d.DeliverVehicle,
	)
	return translateError("update daily report", err)
}

// Delete elimina un relatório.
func (r *DailyReportRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM daily_shipment_report WHERE id = $1`, id)
	return translateError("delete daily report", err)
}
