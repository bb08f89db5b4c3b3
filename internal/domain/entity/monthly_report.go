package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyShipmentReport registro consolidado de ventas usado por el dashboard.
type MonthlyShipmentReport struct {
	ID             int64
	Quantity       decimal.Decimal
	Destination    string
	Temperature    decimal.Decimal
	Deliverer      string
	ProductionDate time.Time
	ShipmentDate   time.Time
	ProductID      int64 // código del producto
	CustomerID     int64 // código del cliente
}
