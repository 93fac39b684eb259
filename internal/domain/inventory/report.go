package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// RecentWindow ventana para contar movimientos recientes en el reporte.
const RecentWindow = 7 * 24 * time.Hour

// StockReport resumen de stock para reportes.
type StockReport struct {
	TotalProducts         int             `json:"totalProducts"`
	TotalStockValue       decimal.Decimal `json:"totalStockValue"`
	LowStockProducts      int             `json:"lowStockProducts"`
	CriticalStockProducts int             `json:"criticalStockProducts"`
	OutOfStockProducts    int             `json:"outOfStockProducts"`
	RecentMovements       int             `json:"recentMovements"`
	ActiveAlerts          int             `json:"activeAlerts"`
}

// GenerateStockReport arma el resumen evaluado en now.
// Los conteos bajo/crítico/sin stock salen de las alertas activas, no del stock de los productos.
func GenerateStockReport(products []entity.Product, movements []entity.StockMovement, alerts []entity.StockAlert, now time.Time) StockReport {
	r := StockReport{TotalProducts: len(products), TotalStockValue: decimal.Zero}
	for _, p := range products {
		r.TotalStockValue = r.TotalStockValue.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	since := now.Add(-RecentWindow)
	for _, m := range movements {
		if !m.CreatedAt.Before(since) {
			r.RecentMovements++
		}
	}
	for _, a := range alerts {
		if !a.IsActive {
			continue
		}
		r.ActiveAlerts++
		switch a.Type {
		case entity.AlertStockBajo:
			r.LowStockProducts++
		case entity.AlertStockCritico:
			r.CriticalStockProducts++
		case entity.AlertSinStock:
			r.OutOfStockProducts++
		}
	}
	return r
}

// MovementStats totales y cantidades por tipo de movimiento.
type MovementStats struct {
	TotalEntradas    int `json:"totalEntradas"`
	TotalSalidas     int `json:"totalSalidas"`
	TotalAjustes     int `json:"totalAjustes"`
	CantidadEntradas int `json:"cantidadEntradas"`
	CantidadSalidas  int `json:"cantidadSalidas"`
	CantidadAjustes  int `json:"cantidadAjustes"`
}

// GetMovementStats filtra por la ventana [from, to] (inclusiva; nil = sin límite) y acumula.
func GetMovementStats(movements []entity.StockMovement, from, to *time.Time) MovementStats {
	var s MovementStats
	for _, m := range movements {
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		switch m.Type {
		case entity.MovementEntrada:
			s.TotalEntradas += m.Quantity
			s.CantidadEntradas++
		case entity.MovementSalida:
			s.TotalSalidas += m.Quantity
			s.CantidadSalidas++
		case entity.MovementAjuste:
			q := m.Quantity
			if q < 0 {
				q = -q
			}
			s.TotalAjustes += q
			s.CantidadAjustes++
		}
	}
	return s
}

// SortMovementsByDate devuelve una copia ordenada de más reciente a más antiguo.
func SortMovementsByDate(movements []entity.StockMovement) []entity.StockMovement {
	out := make([]entity.StockMovement, len(movements))
	copy(out, movements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GroupMovementsByProduct agrupa conservando el orden de entrada dentro de cada producto.
func GroupMovementsByProduct(movements []entity.StockMovement) map[string][]entity.StockMovement {
	groups := make(map[string][]entity.StockMovement)
	for _, m := range movements {
		groups[m.ProductID] = append(groups[m.ProductID], m)
	}
	return groups
}
