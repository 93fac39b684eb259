package entity

import "time"

// StockAdjustment corrección manual de stock; siempre va acompañada de un movimiento "ajuste".
type StockAdjustment struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	OldQuantity int       `json:"oldQuantity"`
	NewQuantity int       `json:"newQuantity"`
	Difference  int       `json:"difference"`
	Reason      string    `json:"reason"`
	Notes       string    `json:"notes,omitempty"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}
