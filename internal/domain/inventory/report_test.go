package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func at(d time.Duration, typ entity.MovementType, qty int) entity.StockMovement {
	return entity.StockMovement{ProductID: "1", Type: typ, Quantity: qty, CreatedAt: now.Add(-d)}
}

func TestGenerateStockReport(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Stock: 15, CostPrice: decimal.RequireFromString("18.50")},
		{ID: "2", Stock: 0, CostPrice: decimal.RequireFromString("22")},
		{ID: "3", Stock: 4, CostPrice: decimal.RequireFromString("2.25")},
	}
	movements := []entity.StockMovement{
		at(time.Hour, entity.MovementEntrada, 1),
		at(inventory.RecentWindow, entity.MovementSalida, 1),
		at(inventory.RecentWindow+time.Second, entity.MovementSalida, 1),
	}
	alerts := []entity.StockAlert{
		{ProductID: "1", Type: entity.AlertStockBajo, IsActive: true},
		{ProductID: "2", Type: entity.AlertSinStock, IsActive: true},
		{ProductID: "3", Type: entity.AlertStockCritico, IsActive: false},
	}

	r := inventory.GenerateStockReport(products, movements, alerts, now)

	assert.Equal(t, 3, r.TotalProducts)
	assert.Equal(t, "286.5", r.TotalStockValue.String())
	assert.Equal(t, 2, r.RecentMovements)
	assert.Equal(t, 2, r.ActiveAlerts)
	assert.Equal(t, 1, r.LowStockProducts)
	assert.Equal(t, 0, r.CriticalStockProducts, "las alertas resueltas no cuentan")
	assert.Equal(t, 1, r.OutOfStockProducts)
}

func TestGetMovementStats_SinLimites(t *testing.T) {
	movs := []entity.StockMovement{
		at(time.Hour, entity.MovementEntrada, 10),
		at(2*time.Hour, entity.MovementSalida, 4),
		at(3*time.Hour, entity.MovementAjuste, -6),
		at(4*time.Hour, entity.MovementAjuste, 2),
	}

	s := inventory.GetMovementStats(movs, nil, nil)

	assert.Equal(t, inventory.MovementStats{
		TotalEntradas: 10, TotalSalidas: 4, TotalAjustes: 8,
		CantidadEntradas: 1, CantidadSalidas: 1, CantidadAjustes: 2,
	}, s)
}

func TestGetMovementStats_VentanaInclusiva(t *testing.T) {
	movs := []entity.StockMovement{
		at(time.Hour, entity.MovementEntrada, 1),
		at(2*time.Hour, entity.MovementEntrada, 2),
		at(3*time.Hour, entity.MovementEntrada, 4),
	}
	from := now.Add(-3 * time.Hour)
	to := now.Add(-2 * time.Hour)

	s := inventory.GetMovementStats(movs, &from, &to)
	assert.Equal(t, 6, s.TotalEntradas)
	assert.Equal(t, 2, s.CantidadEntradas)

	s = inventory.GetMovementStats(movs, nil, &to)
	assert.Equal(t, 6, s.TotalEntradas)

	s = inventory.GetMovementStats(movs, &to, nil)
	assert.Equal(t, 3, s.TotalEntradas)
}

func TestSortMovementsByDate_NoModificaEntrada(t *testing.T) {
	movs := []entity.StockMovement{
		at(3*time.Hour, entity.MovementEntrada, 3),
		at(time.Hour, entity.MovementEntrada, 1),
		at(2*time.Hour, entity.MovementEntrada, 2),
	}

	sorted := inventory.SortMovementsByDate(movs)

	assert.Equal(t, []int{1, 2, 3}, []int{sorted[0].Quantity, sorted[1].Quantity, sorted[2].Quantity})
	assert.Equal(t, 3, movs[0].Quantity)
}

func TestGroupMovementsByProduct(t *testing.T) {
	movs := []entity.StockMovement{
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 2},
		{ProductID: "a", Quantity: 3},
	}

	g := inventory.GroupMovementsByProduct(movs)

	assert.Len(t, g, 2)
	assert.Equal(t, 1, g["a"][0].Quantity)
	assert.Equal(t, 3, g["a"][1].Quantity)
	assert.Len(t, g["b"], 1)
}
