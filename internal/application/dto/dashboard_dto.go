package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /dashboard/stats.
type DashboardStatsDTO struct {
	Products  int `json:"products"`
	Customers int `json:"customers"`
	Vehicles  int `json:"vehicles"`
}

// ProductSoldDTO fila de GET /dashboard/mostProductsSold.
// Nome es null cuando el producto ya no existe en el catálogo.
type ProductSoldDTO struct {
	ID        ID              `json:"id"`
	Nome      *string         `json:"nome"`
	TotalSold decimal.Decimal `json:"totalSold"`
	TimesSold int             `json:"timesSold"`
}

// StateSalesDTO fila de GET /dashboard/productsSoldByState.
type StateSalesDTO struct {
	State     string          `json:"state"`
	TotalSold decimal.Decimal `json:"totalSold"`
}
