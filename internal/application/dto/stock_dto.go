package dto

import (
	"github.com/jhoicas/mistica-api/internal/application/catalog"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// StockQuantityRequest entrada o salida de stock.
type StockQuantityRequest struct {
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Reference string `json:"reference"`
}

// Change datos comunes de la operación con el usuario autenticado.
func (r StockQuantityRequest) Change(userID string) catalog.StockChange {
	return catalog.StockChange{Reason: r.Reason, Reference: r.Reference, UserID: userID}
}

// SetStockRequest fija el stock en un valor.
type SetStockRequest struct {
	NewStock int    `json:"newStock"`
	Reason   string `json:"reason"`
}

// AdjustmentRequest ajuste manual de inventario.
type AdjustmentRequest struct {
	NewQuantity int    `json:"newQuantity"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
}

// AdjustmentResponse ajuste registrado y su movimiento.
type AdjustmentResponse struct {
	Adjustment entity.StockAdjustment `json:"adjustment"`
	Movement   entity.StockMovement   `json:"movement"`
}

// SettingsRequest configuración de stock de un producto.
type SettingsRequest struct {
	MinStock     int  `json:"minStock"`
	MaxStock     *int `json:"maxStock"`
	ReorderPoint int  `json:"reorderPoint"`
	AlertEnabled bool `json:"alertEnabled"`
}

// ToSettings convierte el cuerpo en la configuración del producto.
func (r SettingsRequest) ToSettings(productID string) entity.StockSettings {
	return entity.StockSettings{
		ProductID:    productID,
		MinStock:     r.MinStock,
		MaxStock:     r.MaxStock,
		ReorderPoint: r.ReorderPoint,
		AlertEnabled: r.AlertEnabled,
	}
}
