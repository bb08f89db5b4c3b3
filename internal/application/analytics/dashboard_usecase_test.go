package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/expedicao-api/internal/application/analytics"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/infrastructure/memory"
)

type failingCounter struct{}

func (failingCounter) Count(context.Context) (int, error) { return 0, errors.New("db down") }

func seed(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.Customers().Create(ctx, &entity.Customer{Code: 10, TaxID: "1"}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{Code: 1, Description: "Linguiça"}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{Code: 2, Description: "Bacon"}))
	now := time.Now()
	for _, m := range []entity.MonthlyShipmentReport{
		{ProductID: 1, CustomerID: 10, Quantity: decimal.NewFromInt(5), Destination: "DF"},
		{ProductID: 1, CustomerID: 10, Quantity: decimal.NewFromInt(2), Destination: "GO"},
		{ProductID: 2, CustomerID: 10, Quantity: decimal.NewFromInt(9), Destination: "DF"},
	} {
		m.ProductionDate, m.ShipmentDate = now, now
		require.NoError(t, s.MonthlyReports().Create(ctx, &m))
	}
	return s
}

func TestDashboard_Stats(t *testing.T) {
	s := seed(t)
	uc := analytics.NewDashboardUseCase(s.Analytics(), s.Products(), s.Customers(), s.Vehicles())
	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Products)
	assert.Equal(t, 1, stats.Customers)
	assert.Equal(t, 0, stats.Vehicles)

	broken := analytics.NewDashboardUseCase(s.Analytics(), s.Products(), failingCounter{}, s.Vehicles())
	_, err = broken.Stats(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestDashboard_Rankings(t *testing.T) {
	s := seed(t)
	uc := analytics.NewDashboardUseCase(s.Analytics(), s.Products(), s.Customers(), s.Vehicles())

	top, err := uc.MostProductsSold(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.EqualValues(t, 2, top[0].ID)
	assert.True(t, decimal.NewFromInt(9).Equal(top[0].TotalSold))
	require.NotNil(t, top[1].Nome)
	assert.Equal(t, "Linguiça", *top[1].Nome)
	assert.Equal(t, 2, top[1].TimesSold)

	states, err := uc.ProductsSoldByState(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "DF", states[0].State)
	assert.True(t, decimal.NewFromInt(14).Equal(states[0].TotalSold))
}
