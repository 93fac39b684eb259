package inventory_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
)

func mov(t entity.MovementType, qty, newStock int) entity.StockMovement {
	return entity.StockMovement{ProductID: "1", Type: t, Quantity: qty, NewStock: newStock}
}

func TestCalculateCurrentStock_SoloEntradasYSalidas(t *testing.T) {
	movs := []entity.StockMovement{
		mov(entity.MovementEntrada, 10, 0),
		mov(entity.MovementSalida, 3, 0),
		mov(entity.MovementEntrada, 5, 0),
		mov(entity.MovementSalida, 20, 0),
	}
	assert.Equal(t, 10-3+5-20, inventory.CalculateCurrentStock(movs))
}

func TestCalculateCurrentStock_AjusteReemplazaAcumulado(t *testing.T) {
	movs := []entity.StockMovement{
		mov(entity.MovementEntrada, 100, 0),
		mov(entity.MovementAjuste, 7, 32),
		mov(entity.MovementSalida, 2, 0),
	}
	assert.Equal(t, 30, inventory.CalculateCurrentStock(movs))

	assert.Equal(t, 32, inventory.CalculateCurrentStock(movs[:2]))
}

func TestCalculateCurrentStock_Vacio(t *testing.T) {
	assert.Equal(t, 0, inventory.CalculateCurrentStock(nil))
}

func TestGetAlertType_CeroSiempreSinStock(t *testing.T) {
	for _, min := range []int{-5, 0, 1, 10, 1000} {
		typ, ok := inventory.GetAlertType(0, min)
		require.True(t, ok)
		assert.Equal(t, entity.AlertSinStock, typ, "minStock=%d", min)
	}
}

func TestGetAlertType_Rangos(t *testing.T) {
	cases := []struct {
		stock, min int
		want       entity.AlertType
		ok         bool
	}{
		{1, 10, entity.AlertStockCritico, true},
		{5, 10, entity.AlertStockCritico, true},
		{6, 10, entity.AlertStockBajo, true},
		{10, 10, entity.AlertStockBajo, true},
		{11, 10, "", false},
		{2, 5, entity.AlertStockCritico, true}, // 2 <= 2.5
		{3, 5, entity.AlertStockBajo, true},
		{1, 1, entity.AlertStockBajo, true},
		{4, 0, "", false},
		{math.MaxInt, 10, "", false},
		{math.MaxInt / 2, math.MaxInt, entity.AlertStockCritico, true},
		{math.MaxInt/2 + 1, math.MaxInt, entity.AlertStockBajo, true},
	}
	for _, c := range cases {
		typ, ok := inventory.GetAlertType(c.stock, c.min)
		assert.Equal(t, c.ok, ok, "stock=%d min=%d", c.stock, c.min)
		assert.Equal(t, c.want, typ, "stock=%d min=%d", c.stock, c.min)
	}
}

func TestAlertThreshold(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(inventory.AlertThreshold(entity.AlertSinStock, 10)))
	assert.Equal(t, "2.5", inventory.AlertThreshold(entity.AlertStockCritico, 5).String())
	assert.Equal(t, "10", inventory.AlertThreshold(entity.AlertStockBajo, 10).String())
}

func TestValidateStockAdjustment(t *testing.T) {
	err := inventory.ValidateStockAdjustment(5, -1, "ok")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), inventory.MsgNegativeStock)

	assert.NoError(t, inventory.ValidateStockAdjustment(5, 6, "Conteo"))
	assert.NoError(t, inventory.ValidateStockAdjustment(5, 6, " año "))
	assert.ErrorIs(t, inventory.ValidateStockAdjustment(5, 6, "ok"), domain.ErrInvalidInput)
	assert.NoError(t, inventory.ValidateStockAdjustment(5, 0, "Inventario físico"))

	err = inventory.ValidateStockAdjustment(5, 6, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), inventory.MsgReasonEmpty)

	err = inventory.ValidateStockAdjustment(5, 6, " ab ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), inventory.MsgReasonShort)
}

func TestProfitMargin(t *testing.T) {
	d := decimal.RequireFromString
	assert.True(t, decimal.Zero.Equal(inventory.ProfitMargin(d("10"), d("0"))))
	assert.True(t, decimal.Zero.Equal(inventory.ProfitMargin(d("10"), d("-1"))))
	assert.Equal(t, "40.49", inventory.ProfitMargin(d("25.99"), d("18.50")).String())
	assert.Equal(t, "100", inventory.ProfitMargin(d("20"), d("10")).String())
	assert.Equal(t, "-50", inventory.ProfitMargin(d("5"), d("10")).String())
}

func TestFormatLabels(t *testing.T) {
	assert.Equal(t, "Entrada", inventory.FormatMovementType(entity.MovementEntrada))
	assert.Equal(t, "Ajuste", inventory.FormatMovementType(entity.MovementAjuste))
	assert.Equal(t, "otro", inventory.FormatMovementType("otro"))
	assert.Equal(t, "Stock Crítico", inventory.FormatAlertType(entity.AlertStockCritico))
	assert.Equal(t, "raro", inventory.FormatAlertType("raro"))
}
