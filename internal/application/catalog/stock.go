package catalog

import (
	"context"
	"fmt"
	"math"

	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
)

// SystemUserID usuario por defecto de los movimientos.
const SystemUserID = "system"

// StockChange datos comunes de una operación de stock.
type StockChange struct {
	Reason    string
	Reference string // venta, compra, etc.
	UserID    string // vacío = system
}

// AdjustmentInput ajuste manual de stock.
type AdjustmentInput struct {
	ProductID   string
	NewQuantity int
	Reason      string
	Notes       string
	UserID      string
}

// UpdateStock fija el stock en newStock y registra un movimiento "ajuste".
func (uc *CatalogUseCase) UpdateStock(ctx context.Context, productID string, newStock int, c StockChange) (entity.StockMovement, error) {
	if newStock < 0 {
		return entity.StockMovement{}, domain.Invalid(inventory.MsgNegativeStock)
	}
	return uc.changeStock(ctx, productID, c, func(prev int) (entity.MovementType, int, int, error) {
		diff := newStock - prev
		if diff < 0 {
			diff = -diff
		}
		return entity.MovementAjuste, diff, newStock, nil
	})
}

// ReduceStock descuenta quantity. Falla con ErrInsufficientStock si no alcanza.
func (uc *CatalogUseCase) ReduceStock(ctx context.Context, productID string, quantity int, c StockChange) (entity.StockMovement, error) {
	if quantity <= 0 {
		return entity.StockMovement{}, domain.Invalid("la cantidad debe ser mayor a cero")
	}
	return uc.changeStock(ctx, productID, c, func(prev int) (entity.MovementType, int, int, error) {
		if prev < quantity {
			return "", 0, 0, fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, prev, quantity)
		}
		return entity.MovementSalida, quantity, prev - quantity, nil
	})
}

// AddStock suma quantity.
func (uc *CatalogUseCase) AddStock(ctx context.Context, productID string, quantity int, c StockChange) (entity.StockMovement, error) {
	if quantity <= 0 {
		return entity.StockMovement{}, domain.Invalid("la cantidad debe ser mayor a cero")
	}
	return uc.changeStock(ctx, productID, c, func(prev int) (entity.MovementType, int, int, error) {
		if quantity > math.MaxInt-prev {
			return "", 0, 0, domain.Invalid(fmt.Sprintf("la cantidad excede el máximo de stock (disponible %d, solicitado %d)", prev, quantity))
		}
		return entity.MovementEntrada, quantity, prev + quantity, nil
	})
}

// changeStock escribe el nuevo stock, registra un movimiento y revisa alertas bajo el lock del catálogo.
func (uc *CatalogUseCase) changeStock(ctx context.Context, productID string, c StockChange,
	next func(prev int) (entity.MovementType, int, int, error)) (entity.StockMovement, error) {
	if err := wait(ctx, uc.delays.Write); err != nil {
		return entity.StockMovement{}, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexLocked(productID)
	if i < 0 {
		return entity.StockMovement{}, domain.ErrProductNotFound
	}
	prev := uc.products[i].Stock
	typ, qty, newStock, err := next(prev)
	if err != nil {
		return entity.StockMovement{}, err
	}
	uc.products[i].Stock = newStock
	uc.products[i].UpdatedAt = uc.now()

	userID := c.UserID
	if userID == "" {
		userID = SystemUserID
	}
	m := uc.ledger.AddMovement(ctx, entity.StockMovement{
		ProductID:     productID,
		Type:          typ,
		Quantity:      qty,
		Reason:        c.Reason,
		Reference:     c.Reference,
		UserID:        userID,
		PreviousStock: prev,
		NewStock:      newStock,
	})
	uc.ledger.CheckStockAlerts(ctx, productID, newStock)
	uc.log.Debug().Str("product_id", productID).Str("type", string(typ)).Int("previous", prev).Int("new", newStock).Msg("catalog: stock actualizado")
	return m, nil
}

// ApplyAdjustment ajuste manual: valida, registra el ajuste (un único movimiento "ajuste"),
// escribe el stock en el producto y revisa alertas.
func (uc *CatalogUseCase) ApplyAdjustment(ctx context.Context, in AdjustmentInput) (entity.StockAdjustment, entity.StockMovement, error) {
	if err := wait(ctx, uc.delays.Write); err != nil {
		return entity.StockAdjustment{}, entity.StockMovement{}, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexLocked(in.ProductID)
	if i < 0 {
		return entity.StockAdjustment{}, entity.StockMovement{}, domain.ErrProductNotFound
	}
	prev := uc.products[i].Stock
	if err := inventory.ValidateStockAdjustment(prev, in.NewQuantity, in.Reason); err != nil {
		return entity.StockAdjustment{}, entity.StockMovement{}, err
	}
	userID := in.UserID
	if userID == "" {
		userID = SystemUserID
	}
	adj, m := uc.ledger.AddAdjustment(ctx, entity.StockAdjustment{
		ProductID:   in.ProductID,
		OldQuantity: prev,
		NewQuantity: in.NewQuantity,
		Difference:  in.NewQuantity - prev,
		Reason:      in.Reason,
		Notes:       in.Notes,
		UserID:      userID,
	})
	uc.products[i].Stock = in.NewQuantity
	uc.products[i].UpdatedAt = uc.now()
	uc.ledger.CheckStockAlerts(ctx, in.ProductID, in.NewQuantity)
	return adj, m, nil
}
