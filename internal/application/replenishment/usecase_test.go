package replenishment_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mistica-api/internal/application/replenishment"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

type fakeProducts []entity.Product

func (f fakeProducts) Products() []entity.Product { return f }

type fakeLedger struct {
	settings  []entity.StockSettings
	movements []entity.StockMovement
}

func (f fakeLedger) Settings() []entity.StockSettings  { return f.settings }
func (f fakeLedger) Movements() []entity.StockMovement { return f.movements }

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func product(id string, stock int, price, cost string, status entity.ProductStatus) entity.Product {
	return entity.Product{
		ID: id, Name: "P" + id, Stock: stock, Status: status,
		Price: decimal.RequireFromString(price), CostPrice: decimal.RequireFromString(cost),
	}
}

func TestGenerateList(t *testing.T) {
	maxStock := 40
	products := fakeProducts{
		product("1", 3, "20", "10", entity.StatusActive),  // margen 100
		product("2", 5, "15", "10", entity.StatusActive),  // margen 50
		product("3", 12, "20", "10", entity.StatusActive), // sobre el punto de reorden
		product("4", 0, "20", "10", entity.StatusInactive),
		product("5", 1, "20", "10", entity.StatusActive), // sin configuración
		product("6", 2, "20", "10", entity.StatusOutOfStock),
	}
	ledger := fakeLedger{
		settings: []entity.StockSettings{
			{ProductID: "1", ReorderPoint: 5},
			{ProductID: "2", ReorderPoint: 10, MaxStock: &maxStock},
			{ProductID: "3", ReorderPoint: 10},
			{ProductID: "4", ReorderPoint: 10},
			{ProductID: "6", ReorderPoint: 5},
		},
		movements: []entity.StockMovement{
			{ProductID: "6", Type: entity.MovementSalida, Quantity: 8, CreatedAt: now.Add(-24 * time.Hour)},
			{ProductID: "1", Type: entity.MovementSalida, Quantity: 3, CreatedAt: now.Add(-24 * time.Hour)},
			{ProductID: "1", Type: entity.MovementSalida, Quantity: 50, CreatedAt: now.Add(-100 * 24 * time.Hour)},
		},
	}

	got := replenishment.NewReplenishmentUseCase(products, ledger).GenerateList(now)

	require.Len(t, got, 3)
	// 6 y 1 empatan en margen; 6 vendió más.
	assert.Equal(t, []string{"6", "1", "2"}, []string{got[0].ProductID, got[1].ProductID, got[2].ProductID})
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Priority, got[1].Priority, got[2].Priority})

	one := got[1]
	assert.Equal(t, 8, one.IdealStock) // ceil(5 * 1.5)
	assert.Equal(t, 5, one.SuggestedOrderQty)
	assert.Equal(t, 3, one.UnitsSold)
	assert.True(t, decimal.NewFromInt(50).Equal(one.EstimatedOrderCost))

	two := got[2]
	assert.Equal(t, 40, two.IdealStock)
	assert.Equal(t, 35, two.SuggestedOrderQty)
	assert.True(t, decimal.NewFromInt(50).Equal(two.ProfitMargin))
}

func TestGenerateList_SinConfiguracion(t *testing.T) {
	got := replenishment.NewReplenishmentUseCase(fakeProducts{product("1", 0, "2", "1", entity.StatusActive)}, fakeLedger{}).GenerateList(now)

	assert.Empty(t, got)
	assert.NotNil(t, got)
}
