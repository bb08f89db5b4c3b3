package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores válidos de inspección sanitaria.
const (
	InspectionSIF   = "SIF"
	InspectionSISBI = "SISBI"
	InspectionNA    = "NA"
)

// ProductItem línea de producto embebida en el relatório diario (JSONB).
// Los campos opcionales se omiten del JSON cuando no vienen informados.
type ProductItem struct {
	Code               int64            `json:"code"`
	Quantity           decimal.Decimal  `json:"quantity"`
	Description        string           `json:"description,omitempty"`
	SifOrSisbi         string           `json:"sifOrSisbi,omitempty"`
	ProductTemperature *decimal.Decimal `json:"productTemperature,omitempty"`
	ProductionDate     *time.Time       `json:"productionDate,omitempty"`
}

// DailyShipmentReport relatório diario de expedição.
// FillingDate la fija el servidor al crear; nunca viene del cliente.
type DailyShipmentReport struct {
	ID                       int64
	InvoiceNumber            int64
	Quantity                 decimal.Decimal
	ProductionDate           *time.Time
	VehicleTemperature       decimal.Decimal
	HasGoodSanitaryCondition bool
	Driver                   string
	UserID                   int64
	Products                 []ProductItem
	CustomerCode             int64
	HasSifOrSisbi            bool
	SifOrSisbi               *string
	ProductTemperature       decimal.Decimal
	FillingDate              time.Time
	ShipmentDate             *time.Time
	DeliverVehicle           *string
}

// TotalQuantity suma las cantidades de las líneas.
func TotalQuantity(items []ProductItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity)
	}
	return total
}
