// Package analytics contiene los casos de uso del dashboard: contadores y
// agregados de ventas sobre los relatórios mensais.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

// Counter puerto mínimo para los contadores del dashboard.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// DashboardUseCase genera los datos del dashboard.
//
// Fuente de datos: AnalyticsRepository (GROUP BY read-only) y los Count de
// productos, clientes y vehículos.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	products      Counter
	customers     Counter
	vehicles      Counter
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, products, customers, vehicles Counter) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		products:      products,
		customers:     customers,
		vehicles:      vehicles,
	}
}

// Stats cuenta productos, clientes y vehículos.
//
// Tres consultas independientes en paralelo; se esperan todas antes de responder.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	productsCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)
	vehiclesCh := make(chan countResult, 1)

	go func() {
		n, err := uc.products.Count(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.customers.Count(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.vehicles.Count(ctx)
		vehiclesCh <- countResult{n, err}
	}()

	products := <-productsCh
	customers := <-customersCh
	vehicles := <-vehiclesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: contar productos: %w", products.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: contar clientes: %w", customers.err)
	}
	if vehicles.err != nil {
		return nil, fmt.Errorf("dashboard: contar vehículos: %w", vehicles.err)
	}
	return &dto.DashboardStatsDTO{
		Products:  products.n,
		Customers: customers.n,
		Vehicles:  vehicles.n,
	}, nil
}

// MostProductsSold productos ordenados por cantidad total vendida (desc).
func (uc *DashboardUseCase) MostProductsSold(ctx context.Context) ([]dto.ProductSoldDTO, error) {
	rows, err := uc.analyticsRepo.MostProductsSold(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: produtos mais vendidos: %w", err)
	}
	out := make([]dto.ProductSoldDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductSoldDTO{
			ID:        dto.ID(r.ProductID),
			Nome:      r.ProductName,
			TotalSold: r.TotalSold,
			TimesSold: r.TimesSold,
		})
	}
	return out, nil
}

// ProductsSoldByState cantidad vendida por destino (desc).
func (uc *DashboardUseCase) ProductsSoldByState(ctx context.Context) ([]dto.StateSalesDTO, error) {
	rows, err := uc.analyticsRepo.ProductsSoldByState(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: vendas por destino: %w", err)
	}
	out := make([]dto.StateSalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StateSalesDTO{State: r.State, TotalSold: r.TotalSold})
	}
	return out, nil
}
