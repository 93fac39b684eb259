package entity

import "time"

// MovementType tipo de movimiento de stock.
type MovementType string

// Tipos de movimiento. entrada/salida son deltas; ajuste fija el stock en NewStock.
const (
	MovementEntrada MovementType = "entrada"
	MovementSalida  MovementType = "salida"
	MovementAjuste  MovementType = "ajuste"
)

// StockMovement registro inmutable de un cambio de stock.
// Para entrada/salida se espera NewStock = PreviousStock ± Quantity; no se verifica.
type StockMovement struct {
	ID            string       `json:"id"`
	ProductID     string       `json:"productId"`
	Type          MovementType `json:"type"`
	Quantity      int          `json:"quantity"`
	Reason        string       `json:"reason"`
	Reference     string       `json:"reference,omitempty"` // venta, compra, etc.
	UserID        string       `json:"userId"`
	CreatedAt     time.Time    `json:"createdAt"`
	PreviousStock int          `json:"previousStock"`
	NewStock      int          `json:"newStock"`
}
