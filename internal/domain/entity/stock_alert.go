package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertType severidad de una alerta de stock.
type AlertType string

const (
	AlertStockBajo    AlertType = "stock_bajo"
	AlertStockCritico AlertType = "stock_critico"
	AlertSinStock     AlertType = "sin_stock"
)

// StockAlert condición de stock bajo, crítico o agotado para un producto.
// A lo sumo una alerta activa por (ProductID, Type).
type StockAlert struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	Type         AlertType       `json:"type"`
	Threshold    decimal.Decimal `json:"threshold"`
	CurrentStock int             `json:"currentStock"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	ResolvedAt   *time.Time      `json:"resolvedAt,omitempty"`
}
