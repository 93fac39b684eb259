// Package catalog mantiene el catálogo de productos y sus operaciones de stock.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/pkg/barcode"
	"github.com/jhoicas/mistica-api/pkg/logger"
)

// StockLedger capacidad de registrar movimientos, ajustes y revisar alertas.
type StockLedger interface {
	AddMovement(ctx context.Context, m entity.StockMovement) entity.StockMovement
	AddAdjustment(ctx context.Context, adj entity.StockAdjustment) (entity.StockAdjustment, entity.StockMovement)
	CheckStockAlerts(ctx context.Context, productID string, currentStock int) (entity.StockAlert, bool)
}

// ActivityRecorder registra actividades del catálogo.
type ActivityRecorder interface {
	AddActivity(a entity.Activity) entity.Activity
}

// Delays latencias simuladas de lectura y escritura.
type Delays struct {
	Load  time.Duration
	Write time.Duration
}

// CatalogUseCase catálogo en memoria. Lock order: catálogo → ledger → actividades.
type CatalogUseCase struct {
	mu       sync.RWMutex
	products []entity.Product
	nextID   int
	status   entity.StoreStatus
	err      string

	ledger     StockLedger
	activities ActivityRecorder
	delays     Delays
	log        *logger.Logger
	now        func() time.Time
}

// NewCatalogUseCase construye el catálogo vacío. activities puede ser nil.
func NewCatalogUseCase(ledger StockLedger, activities ActivityRecorder, delays Delays, log *logger.Logger) *CatalogUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogUseCase{
		nextID:     1,
		status:     entity.StatusIdle,
		ledger:     ledger,
		activities: activities,
		delays:     delays,
		log:        log,
		now:        time.Now,
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uc *CatalogUseCase) setStatus(st entity.StoreStatus, err error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.setStatusLocked(st, err)
}

func (uc *CatalogUseCase) setStatusLocked(st entity.StoreStatus, err error) {
	uc.status = st
	uc.err = ""
	if err != nil {
		uc.err = err.Error()
	}
}

// begin marca loading y espera la latencia simulada. Un contexto cancelado deja el estado en error.
func (uc *CatalogUseCase) begin(ctx context.Context, d time.Duration) error {
	uc.setStatus(entity.StatusLoading, nil)
	if err := wait(ctx, d); err != nil {
		uc.setStatus(entity.StatusError, err)
		return err
	}
	return nil
}

// finishLocked cierra una operación con success o error.
func (uc *CatalogUseCase) finishLocked(err error) error {
	if err != nil {
		uc.setStatusLocked(entity.StatusError, err)
		return err
	}
	uc.setStatusLocked(entity.StatusSuccess, nil)
	return nil
}

// Status estado de la última operación y su error.
func (uc *CatalogUseCase) Status() (entity.StoreStatus, string) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.status, uc.err
}

// LoadProducts reemplaza el catálogo por el catálogo inicial.
func (uc *CatalogUseCase) LoadProducts(ctx context.Context) error {
	if err := uc.begin(ctx, uc.delays.Load); err != nil {
		return err
	}
	seed := SeedProducts(uc.now())
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.products = seed
	uc.nextID = 1
	for _, p := range seed {
		if n, err := strconv.Atoi(p.ID); err == nil && n >= uc.nextID {
			uc.nextID = n + 1
		}
	}
	uc.log.Info().Int("products", len(seed)).Msg("catalog: productos cargados")
	return uc.finishLocked(nil)
}

// AddProduct agrega el producto al inicio con id numérico secuencial.
// Sin código de barras se deriva del id; un código repetido devuelve ErrDuplicate.
func (uc *CatalogUseCase) AddProduct(ctx context.Context, in ProductInput) (entity.Product, error) {
	if err := uc.begin(ctx, uc.delays.Write); err != nil {
		return entity.Product{}, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	id := uc.nextID
	p := entity.Product{
		ID:            strconv.Itoa(id),
		Name:          in.Name,
		Barcode:       in.Barcode,
		Category:      in.Category,
		Price:         in.Price,
		CostPrice:     in.CostPrice,
		Stock:         in.Stock,
		UnitOfMeasure: in.UnitOfMeasure,
		Image:         in.Image,
		Description:   in.Description,
		Status:        in.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if p.Barcode == "" {
		p.Barcode = barcode.Generate(id, now)
	}
	if p.Status == "" {
		p.Status = entity.StatusActive
	}
	if uc.barcodeTakenLocked(p.Barcode, "") {
		return entity.Product{}, uc.finishLocked(fmt.Errorf("%w: código de barras %s", domain.ErrDuplicate, p.Barcode))
	}
	uc.nextID++
	uc.products = append([]entity.Product{p}, uc.products...)
	uc.record(entity.ActivityCambioProducto, "Producto agregado: "+p.Name, p.ID, nil)
	return p, uc.finishLocked(nil)
}

// UpdateProduct aplica los campos presentes en u y refresca UpdatedAt.
// Un cambio de precio de venta se registra como cambio_precio.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, u ProductUpdate) (entity.Product, error) {
	if err := uc.begin(ctx, uc.delays.Write); err != nil {
		return entity.Product{}, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexLocked(id)
	if i < 0 {
		return entity.Product{}, uc.finishLocked(domain.ErrProductNotFound)
	}
	p := uc.products[i]
	if u.ExpectedStock != nil && *u.ExpectedStock != p.Stock {
		return entity.Product{}, uc.finishLocked(domain.Invalid(MsgStockReadOnly))
	}
	oldPrice := p.Price
	u.apply(&p)
	if u.Barcode != nil && uc.barcodeTakenLocked(p.Barcode, id) {
		return entity.Product{}, uc.finishLocked(fmt.Errorf("%w: código de barras %s", domain.ErrDuplicate, p.Barcode))
	}
	p.UpdatedAt = uc.now()
	uc.products[i] = p

	if !p.Price.Equal(oldPrice) {
		price := p.Price
		uc.record(entity.ActivityCambioPrecio,
			fmt.Sprintf("Cambio de precio: %s (%s → %s)", p.Name, oldPrice.StringFixed(2), price.StringFixed(2)), p.ID, &price)
	} else {
		uc.record(entity.ActivityCambioProducto, "Producto actualizado: "+p.Name, p.ID, nil)
	}
	return p, uc.finishLocked(nil)
}

// DeleteProduct quita el producto del catálogo. El historial del ledger se conserva.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.begin(ctx, uc.delays.Write); err != nil {
		return err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexLocked(id)
	if i < 0 {
		return uc.finishLocked(domain.ErrProductNotFound)
	}
	p := uc.products[i]
	uc.products = append(uc.products[:i:i], uc.products[i+1:]...)
	uc.record(entity.ActivityCambioProducto, "Producto eliminado: "+p.Name, p.ID, nil)
	return uc.finishLocked(nil)
}

func (uc *CatalogUseCase) record(t entity.ActivityType, desc, productID string, amount *decimal.Decimal) {
	if uc.activities == nil {
		return
	}
	uc.activities.AddActivity(entity.Activity{
		Type:        t,
		Description: desc,
		Amount:      amount,
		Metadata:    map[string]any{"productId": productID},
	})
}

func (uc *CatalogUseCase) indexLocked(id string) int {
	for i := range uc.products {
		if uc.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (uc *CatalogUseCase) barcodeTakenLocked(code, exceptID string) bool {
	for _, p := range uc.products {
		if p.Barcode == code && p.ID != exceptID {
			return true
		}
	}
	return false
}
