package entity

import "github.com/shopspring/decimal"

// Vehicle representa un vehículo de entrega; Plate es única y la referencian los relatórios.
type Vehicle struct {
	ID          int64
	Model       string
	Plate       string
	Phone       string
	MaximumLoad decimal.Decimal
	Description string
}
