package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CreateVehicleRequest entrada para cadastrar um veículo.
type CreateVehicleRequest struct {
	Model       string          `json:"model" validate:"required"`
	Plate       string          `json:"plate" validate:"required"`
	Phone       string          `json:"phone" validate:"required"`
	MaximumLoad decimal.Decimal `json:"maximumLoad" validate:"min=0"`
	Description string          `json:"description"`
}

// Normalize placa en mayúsculas y sin espacios.
func (r *CreateVehicleRequest) Normalize() {
	r.Plate = NormalizePlate(r.Plate)
	r.Model = strings.TrimSpace(r.Model)
}

// Validate valida campos obligatorios.
func (r *CreateVehicleRequest) Validate() error {
	return check(r)
}

// UpdateVehicleRequest actualización parcial de un vehículo.
type UpdateVehicleRequest struct {
	Model       *string          `json:"model" validate:"omitempty,min=1"`
	Plate       *string          `json:"plate" validate:"omitempty,min=1"`
	Phone       *string          `json:"phone"`
	MaximumLoad *decimal.Decimal `json:"maximumLoad" validate:"omitempty,min=0"`
	Description *string          `json:"description"`
}

// Validate valida sólo los campos informados.
func (r *UpdateVehicleRequest) Validate() error {
	if r.Plate != nil {
		p := NormalizePlate(*r.Plate)
		r.Plate = &p
	}
	return check(r)
}

// VehicleResponse salida de un vehículo.
type VehicleResponse struct {
	ID          ID              `json:"id"`
	Model       string          `json:"model"`
	Plate       string          `json:"plate"`
	Phone       string          `json:"phone"`
	MaximumLoad decimal.Decimal `json:"maximumLoad"`
	Description string          `json:"description"`
}

// NormalizePlate quita espacios y guiones y pasa a mayúsculas ("abc-1d23" → "ABC1D23").
func NormalizePlate(p string) string {
	p = strings.ToUpper(strings.TrimSpace(p))
	return strings.NewReplacer(" ", "", "-", "").Replace(p)
}
