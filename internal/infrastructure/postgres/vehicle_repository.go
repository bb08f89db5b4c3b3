package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

const vehicleColumns = `id, model, plate, phone, maximum_load, description`

// VehicleRepo implementación de VehicleRepository.
type VehicleRepo struct {
	q  Querier
	tx *TxRunner
}

// NewVehicleRepository construye el adaptador.
func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{q: pool, tx: NewTxRunner(pool)}
}

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	if err := row.Scan(&v.ID, &v.Model, &v.Plate, &v.Phone, &v.MaximumLoad, &v.Description); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un vehículo y completa su ID.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO vehicles (model, plate, phone, maximum_load, description)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		v.Model, v.Plate, v.Phone, v.MaximumLoad, v.Description).Scan(&v.ID)
	return translateError("insert vehicle", err)
}

// GetByID obtiene un vehículo.
func (r *VehicleRepo) GetByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id))
	return noRows(v, "get vehicle", err)
}

// GetByPlate obtiene un vehículo por placa normalizada.
func (r *VehicleRepo) GetByPlate(ctx context.Context, plate string) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE plate = $1`, plate))
	return noRows(v, "get vehicle by plate", err)
}

// List página de vehículos por id descendente.
func (r *VehicleRepo) List(ctx context.Context, page repository.Page) ([]*entity.Vehicle, int, error) {
	return listPage(ctx, r.tx, "vehicles", vehicleColumns, "id", page, scanVehicle)
}

// Update reescribe el vehículo; un cambio de placa se propaga a los relatórios (ON UPDATE CASCADE).
func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	_, err := r.q.Exec(ctx,
		`UPDATE vehicles SET model = $2, plate = $3, phone = $4, maximum_load = $5, description = $6 WHERE id = $1`,
		v.ID, v.Model, v.Plate, v.Phone, v.MaximumLoad, v.Description)
	return translateError("update vehicle", err)
}

// Delete elimina un vehículo; ErrReferenced si algún relatório usa la placa.
func (r *VehicleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return translateError("delete vehicle", err)
}

// Count total de vehículos.
func (r *VehicleRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "vehicles")
}
