package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMonthlyReportRequest entrada para un registro mensual.
// Valores ausentes: destination "N/A", deliverer "Próprio", fechas = ahora.
type CreateMonthlyReportRequest struct {
	Quantity       decimal.Decimal `json:"quantity" validate:"min=0"`
	Destination    *string         `json:"destination"`
	Temperature    decimal.Decimal `json:"temperature"`
	Deliverer      *string         `json:"deliverer"`
	ProductionDate *Date           `json:"productionDate"`
	ShipmentDate   *Date           `json:"shipmentDate"`
	ProductID      ID              `json:"productId" validate:"min=1"`
	CustomerID     ID              `json:"customersId" validate:"min=1"`
}

// Validate exige producto y cliente y cantidad no negativa.
func (r *CreateMonthlyReportRequest) Validate() error {
	return check(r)
}

// UpdateMonthlyReportRequest actualización parcial.
type UpdateMonthlyReportRequest struct {
	Quantity       *decimal.Decimal `json:"quantity" validate:"omitempty,min=0"`
	Destination    *string          `json:"destination"`
	Temperature    *decimal.Decimal `json:"temperature"`
	Deliverer      *string          `json:"deliverer"`
	ProductionDate *Date            `json:"productionDate"`
	ShipmentDate   *Date            `json:"shipmentDate"`
	ProductID      *ID              `json:"productId" validate:"omitempty,min=1"`
	CustomerID     *ID              `json:"customersId" validate:"omitempty,min=1"`
}

// Validate valida sólo los campos informados.
func (r *UpdateMonthlyReportRequest) Validate() error {
	return check(r)
}

// MonthlyReportResponse salida de un registro mensual.
type MonthlyReportResponse struct {
	ID             ID              `json:"id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Destination    string          `json:"destination"`
	Temperature    decimal.Decimal `json:"temperature"`
	Deliverer      string          `json:"deliverer"`
	ProductionDate time.Time       `json:"productionDate"`
	ShipmentDate   time.Time       `json:"shipmentDate"`
	ProductID      ID              `json:"productId"`
	CustomerID     ID              `json:"customersId"`
}
