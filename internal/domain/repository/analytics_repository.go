package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductSalesResult fila de "produtos mais vendidos". ProductName es nil si el código no existe en products.
type ProductSalesResult struct {
	ProductID   int64
	ProductName *string
	TotalSold   decimal.Decimal
	TimesSold   int
}

// DestinationSalesResult fila de "vendas por destino".
type DestinationSalesResult struct {
	State     string
	TotalSold decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura (GROUP BY) sobre monthly_shipment_report para el dashboard.
type AnalyticsRepository interface {
	MostProductsSold(ctx context.Context) ([]ProductSalesResult, error)
	ProductsSoldByState(ctx context.Context) ([]DestinationSalesResult, error)
}
