package entity

// StockSettings umbrales por producto. Una fila por producto (se reemplaza al escribir).
type StockSettings struct {
	ProductID    string `json:"productId"`
	MinStock     int    `json:"minStock"`
	MaxStock     *int   `json:"maxStock,omitempty"`
	ReorderPoint int    `json:"reorderPoint"`
	AlertEnabled bool   `json:"alertEnabled"`
}
