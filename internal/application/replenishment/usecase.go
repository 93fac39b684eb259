// Package replenishment sugiere reposición para productos en o bajo su punto de reorden.
package replenishment

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
)

// SalesWindow ventana de ventas considerada para priorizar.
const SalesWindow = 90 * 24 * time.Hour

// ProductSource catálogo actual.
type ProductSource interface {
	Products() []entity.Product
}

// LedgerSource configuración de stock y movimientos.
type LedgerSource interface {
	Settings() []entity.StockSettings
	Movements() []entity.StockMovement
}

// Suggestion sugerencia de reposición de un producto.
type Suggestion struct {
	ProductID          string          `json:"productId"`
	Barcode            string          `json:"barcode"`
	ProductName        string          `json:"productName"`
	CurrentStock       int             `json:"currentStock"`
	ReorderPoint       int             `json:"reorderPoint"`
	IdealStock         int             `json:"idealStock"`         // MaxStock, o ReorderPoint * 1.5
	SuggestedOrderQty  int             `json:"suggestedOrderQty"`  // IdealStock - CurrentStock
	UnitCost           decimal.Decimal `json:"unitCost"`           // precio de costo actual
	EstimatedOrderCost decimal.Decimal `json:"estimatedOrderCost"` // SuggestedOrderQty * UnitCost
	ProfitMargin       decimal.Decimal `json:"profitMargin"`       // % sobre costo
	UnitsSold          int             `json:"unitsSold"`          // salidas en SalesWindow
	Priority           int             `json:"priority"`           // 1 = más urgente
}

// ReplenishmentUseCase genera la lista de reposición.
type ReplenishmentUseCase struct {
	products ProductSource
	ledger   LedgerSource
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(products ProductSource, ledger LedgerSource) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{products: products, ledger: ledger}
}

// GenerateList devuelve los productos con configuración cuyo stock está en o bajo el punto
// de reorden, priorizados por margen, luego ventas recientes y luego déficit.
// Productos inactivos o sin punto de reorden no se sugieren.
func (uc *ReplenishmentUseCase) GenerateList(now time.Time) []Suggestion {
	settings := make(map[string]entity.StockSettings)
	for _, s := range uc.ledger.Settings() {
		settings[s.ProductID] = s
	}

	since := now.Add(-SalesWindow)
	sold := make(map[string]int)
	for _, m := range uc.ledger.Movements() {
		if m.Type == entity.MovementSalida && !m.CreatedAt.Before(since) {
			sold[m.ProductID] += m.Quantity
		}
	}

	out := make([]Suggestion, 0)
	for _, p := range uc.products.Products() {
		s, ok := settings[p.ID]
		if !ok || s.ReorderPoint <= 0 || p.Status == entity.StatusInactive || p.Stock > s.ReorderPoint {
			continue
		}
		ideal := idealStock(s)
		qty := ideal - p.Stock
		if qty < 0 {
			qty = 0
		}
		out = append(out, Suggestion{
			ProductID:          p.ID,
			Barcode:            p.Barcode,
			ProductName:        p.Name,
			CurrentStock:       p.Stock,
			ReorderPoint:       s.ReorderPoint,
			IdealStock:         ideal,
			SuggestedOrderQty:  qty,
			UnitCost:           p.CostPrice,
			EstimatedOrderCost: p.CostPrice.Mul(decimal.NewFromInt(int64(qty))),
			ProfitMargin:       inventory.ProfitMargin(p.Price, p.CostPrice),
			UnitsSold:          sold[p.ID],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.ProfitMargin.Equal(b.ProfitMargin) {
			return a.ProfitMargin.GreaterThan(b.ProfitMargin)
		}
		if a.UnitsSold != b.UnitsSold {
			return a.UnitsSold > b.UnitsSold
		}
		return a.ReorderPoint-a.CurrentStock > b.ReorderPoint-b.CurrentStock
	})

	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}

// idealStock: MaxStock si está configurado; si no, ReorderPoint * 1.5 redondeado hacia arriba.
func idealStock(s entity.StockSettings) int {
	if s.MaxStock != nil && *s.MaxStock > 0 {
		return *s.MaxStock
	}
	return (s.ReorderPoint*3 + 1) / 2
}
