package inventory

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ProfitMargin margen porcentual sobre el costo, redondeado a 2 decimales.
// ((price - cost) / cost) * 100; 0 si cost <= 0.
func ProfitMargin(price, cost decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return price.Sub(cost).Div(cost).Mul(hundred).Round(2)
}
