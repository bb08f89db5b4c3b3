package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre monthly_shipment_report para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{q: pool}
}

// MostProductsSold suma y cuenta ventas por producto. LEFT JOIN: un código que ya no está
// en el catálogo aparece con nombre NULL.
func (r *AnalyticsRepo) MostProductsSold(ctx context.Context) ([]repository.ProductSalesResult, error) {
	const query = `
	SELECT
	    m.product_id,
	    p.description,
	    SUM(m.quantity)  AS total_sold,
	    COUNT(*)::INT    AS times_sold
	FROM monthly_shipment_report m
	LEFT JOIN products p ON p.code = m.product_id
	GROUP BY m.product_id, p.description
	ORDER BY total_sold DESC, m.product_id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.MostProductsSold: %w", err)
	}
	defer rows.Close()

	results := make([]repository.ProductSalesResult, 0)
	for rows.Next() {
		var row repository.ProductSalesResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalSold, &row.TimesSold); err != nil {
			return nil, fmt.Errorf("analytics.MostProductsSold scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.MostProductsSold rows: %w", err)
	}
	return results, nil
}

// ProductsSoldByState suma la cantidad vendida por destino.
func (r *AnalyticsRepo) ProductsSoldByState(ctx context.Context) ([]repository.DestinationSalesResult, error) {
	const query = `
	SELECT destination, SUM(quantity) AS total_sold
	FROM monthly_shipment_report
	GROUP BY destination
	ORDER BY total_sold DESC, destination`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.ProductsSoldByState: %w", err)
	}
	defer rows.Close()

	results := make([]repository.DestinationSalesResult, 0)
	for rows.Next() {
		var row repository.DestinationSalesResult
		if err := rows.Scan(&row.State, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("analytics.ProductsSoldByState scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.ProductsSoldByState rows: %w", err)
	}
	return results, nil
}
