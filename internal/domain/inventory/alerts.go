package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

var half = decimal.New(5, -1)

// GetAlertType clasifica el stock frente al mínimo configurado.
// Stock 0 siempre es sin_stock, aunque minStock sea 0 o negativo.
// ok es false cuando no corresponde alerta.
func GetAlertType(currentStock, minStock int) (t entity.AlertType, ok bool) {
	switch {
	case currentStock == 0:
		return entity.AlertSinStock, true
	case currentStock <= minStock/2: // currentStock <= minStock*0.5 en enteros, sin desbordar
		return entity.AlertStockCritico, true
	case currentStock <= minStock:
		return entity.AlertStockBajo, true
	}
	return "", false
}

// AlertThreshold umbral que se registra en la alerta: 0, minStock*0.5 o minStock.
func AlertThreshold(t entity.AlertType, minStock int) decimal.Decimal {
	switch t {
	case entity.AlertStockCritico:
		return decimal.NewFromInt(int64(minStock)).Mul(half)
	case entity.AlertStockBajo:
		return decimal.NewFromInt(int64(minStock))
	}
	return decimal.Zero
}
