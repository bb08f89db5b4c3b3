package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
)

func TestProductItem_OmiteOpcionalesVacios(t *testing.T) {
	raw, err := json.Marshal(entity.ProductItem{Code: 10, Quantity: decimal.NewFromInt(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":10,"quantity":"3"}`, string(raw))
}

func TestTotalQuantity(t *testing.T) {
	items := []entity.ProductItem{
		{Code: 1, Quantity: decimal.RequireFromString("2.5")},
		{Code: 2, Quantity: decimal.NewFromInt(4)},
	}
	assert.True(t, decimal.RequireFromString("6.5").Equal(entity.TotalQuantity(items)))
	assert.True(t, entity.TotalQuantity(nil).IsZero())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&entity.User{Role: entity.RoleAdmin}).IsAdmin())
	assert.False(t, (&entity.User{Role: entity.RoleUser}).IsAdmin())
	var nilUser *entity.User
	assert.False(t, nilUser.IsAdmin())
}
