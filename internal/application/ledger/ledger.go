// Package ledger implementa el libro de stock: movimientos, alertas, ajustes y configuración por producto.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
	"github.com/jhoicas/mistica-api/internal/domain/repository"
	"github.com/jhoicas/mistica-api/pkg/logger"
)

// DefaultRecentLimit cantidad por defecto de RecentMovements.
const DefaultRecentLimit = 10

// ActivityRecorder registra actividades derivadas de los movimientos.
type ActivityRecorder interface {
	AddActivity(a entity.Activity) entity.Activity
}

type alertKey struct {
	productID string
	typ       entity.AlertType
}

// StockLedger guarda movimientos, alertas, ajustes y settings de todo el catálogo.
// Cada mutación se persiste completa en el BlobStore (best-effort).
type StockLedger struct {
	mu          sync.RWMutex
	movements   []entity.StockMovement // más reciente primero
	alerts      []*entity.StockAlert   // más reciente primero
	byID        map[string]*entity.StockAlert
	active      map[alertKey]*entity.StockAlert
	adjustments []entity.StockAdjustment
	settings    []entity.StockSettings // una fila por producto, en orden de escritura

	store      repository.BlobStore
	activities ActivityRecorder
	log        *logger.Logger
	now        func() time.Time
}

// NewStockLedger construye el libro. store y activities pueden ser nil.
func NewStockLedger(store repository.BlobStore, activities ActivityRecorder, log *logger.Logger) *StockLedger {
	if log == nil {
		log = logger.Nop()
	}
	return &StockLedger{
		byID:       make(map[string]*entity.StockAlert),
		active:     make(map[alertKey]*entity.StockAlert),
		store:      store,
		activities: activities,
		log:        log,
		now:        time.Now,
	}
}

// AddMovement registra un movimiento con id y fecha nuevos y deriva la actividad correspondiente.
func (l *StockLedger) AddMovement(ctx context.Context, m entity.StockMovement) entity.StockMovement {
	l.mu.Lock()
	defer l.mu.Unlock()
	m = l.addMovementLocked(m)
	l.persistLocked(ctx)
	return m
}

func (l *StockLedger) addMovementLocked(m entity.StockMovement) entity.StockMovement {
	m.ID = uuid.New().String()
	m.CreatedAt = l.now()
	l.movements = append([]entity.StockMovement{m}, l.movements...)
	if l.activities != nil {
		l.activities.AddActivity(activityFromMovement(m))
	}
	return m
}

func activityFromMovement(m entity.StockMovement) entity.Activity {
	typ := entity.ActivityOtro
	switch m.Type {
	case entity.MovementEntrada:
		typ = entity.ActivityIngreso
	case entity.MovementSalida:
		typ = entity.ActivityEgreso
	case entity.MovementAjuste:
		typ = entity.ActivityCambioProducto
	}
	meta := map[string]any{"productId": m.ProductID, "movementId": m.ID}
	if m.Reference != "" {
		meta["reference"] = m.Reference
	}
	return entity.Activity{
		Type:        typ,
		Description: inventory.FormatMovementType(m.Type) + " de stock: " + m.Reason,
		UserID:      m.UserID,
		Metadata:    meta,
	}
}

// MovementsByProduct movimientos de un producto, más reciente primero.
func (l *StockLedger) MovementsByProduct(productID string) []entity.StockMovement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockMovement, 0)
	for _, m := range l.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// RecentMovements los limit movimientos más recientes por fecha de creación.
func (l *StockLedger) RecentMovements(limit int) []entity.StockMovement {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	sorted := inventory.SortMovementsByDate(l.Movements())
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// Movements copia de todos los movimientos.
func (l *StockLedger) Movements() []entity.StockMovement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockMovement, len(l.movements))
	copy(out, l.movements)
	return out
}

// CreateAlert inserta una alerta o, si ya hay una activa para (producto, tipo), solo actualiza su CurrentStock.
func (l *StockLedger) CreateAlert(ctx context.Context, a entity.StockAlert) entity.StockAlert {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.createAlertLocked(a)
	l.persistLocked(ctx)
	return out
}

func (l *StockLedger) createAlertLocked(a entity.StockAlert) entity.StockAlert {
	key := alertKey{a.ProductID, a.Type}
	if existing, ok := l.active[key]; ok {
		existing.CurrentStock = a.CurrentStock
		return *existing
	}
	a.ID = uuid.New().String()
	a.CreatedAt = l.now()
	stored := &a
	l.alerts = append([]*entity.StockAlert{stored}, l.alerts...)
	l.byID[a.ID] = stored
	if a.IsActive {
		l.active[key] = stored
	}
	return a
}

// ResolveAlert desactiva la alerta y registra ResolvedAt. La alerta se conserva como historial.
func (l *StockLedger) ResolveAlert(ctx context.Context, id string) (entity.StockAlert, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.byID[id]
	if !ok {
		return entity.StockAlert{}, domain.ErrAlertNotFound
	}
	now := l.now()
	a.IsActive = false
	a.ResolvedAt = &now
	key := alertKey{a.ProductID, a.Type}
	if l.active[key] == a {
		delete(l.active, key)
	}
	l.persistLocked(ctx)
	return *a, nil
}

// Alerts copia de todas las alertas, activas o no.
func (l *StockLedger) Alerts() []entity.StockAlert {
	return l.filterAlerts(func(*entity.StockAlert) bool { return true })
}

// ActiveAlerts alertas activas.
func (l *StockLedger) ActiveAlerts() []entity.StockAlert {
	return l.filterAlerts(func(a *entity.StockAlert) bool { return a.IsActive })
}

// AlertsByProduct alertas de un producto.
func (l *StockLedger) AlertsByProduct(productID string) []entity.StockAlert {
	return l.filterAlerts(func(a *entity.StockAlert) bool { return a.ProductID == productID })
}

func (l *StockLedger) filterAlerts(keep func(*entity.StockAlert) bool) []entity.StockAlert {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockAlert, 0, len(l.alerts))
	for _, a := range l.alerts {
		if keep(a) {
			out = append(out, *a)
		}
	}
	return out
}

// AddAdjustment registra el ajuste y su único movimiento "ajuste" derivado.
func (l *StockLedger) AddAdjustment(ctx context.Context, adj entity.StockAdjustment) (entity.StockAdjustment, entity.StockMovement) {
	l.mu.Lock()
	defer l.mu.Unlock()
	adj.ID = uuid.New().String()
	adj.CreatedAt = l.now()
	l.adjustments = append([]entity.StockAdjustment{adj}, l.adjustments...)

	qty := adj.Difference
	if qty < 0 {
		qty = -qty
	}
	m := l.addMovementLocked(entity.StockMovement{
		ProductID:     adj.ProductID,
		Type:          entity.MovementAjuste,
		Quantity:      qty,
		Reason:        "Ajuste manual: " + adj.Reason,
		UserID:        adj.UserID,
		PreviousStock: adj.OldQuantity,
		NewStock:      adj.NewQuantity,
	})
	l.persistLocked(ctx)
	return adj, m
}

// Adjustments copia de todos los ajustes.
func (l *StockLedger) Adjustments() []entity.StockAdjustment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockAdjustment, len(l.adjustments))
	copy(out, l.adjustments)
	return out
}

// AdjustmentsByProduct ajustes de un producto.
func (l *StockLedger) AdjustmentsByProduct(productID string) []entity.StockAdjustment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockAdjustment, 0)
	for _, a := range l.adjustments {
		if a.ProductID == productID {
			out = append(out, a)
		}
	}
	return out
}

// UpdateStockSettings reemplaza la fila completa del producto (sin merge de campos).
func (l *StockLedger) UpdateStockSettings(ctx context.Context, productID string, s entity.StockSettings) entity.StockSettings {
	s.ProductID = productID
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.settings[:0:0]
	for _, row := range l.settings {
		if row.ProductID != productID {
			kept = append(kept, row)
		}
	}
	l.settings = append(kept, s)
	l.persistLocked(ctx)
	return s
}

// StockSettings configuración del producto; ok false si no existe.
func (l *StockLedger) StockSettings(productID string) (entity.StockSettings, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settingsLocked(productID)
}

func (l *StockLedger) settingsLocked(productID string) (entity.StockSettings, bool) {
	for _, s := range l.settings {
		if s.ProductID == productID {
			return s, true
		}
	}
	return entity.StockSettings{}, false
}

// Settings copia de todas las filas de configuración.
func (l *StockLedger) Settings() []entity.StockSettings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockSettings, len(l.settings))
	copy(out, l.settings)
	return out
}

// CheckStockAlerts evalúa el stock contra la configuración del producto y crea (o actualiza) a lo sumo una alerta.
// Sin configuración o con alertas deshabilitadas no hace nada. Nunca resuelve alertas existentes.
func (l *StockLedger) CheckStockAlerts(ctx context.Context, productID string, currentStock int) (entity.StockAlert, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.settingsLocked(productID)
	if !ok || !s.AlertEnabled {
		return entity.StockAlert{}, false
	}
	typ, ok := inventory.GetAlertType(currentStock, s.MinStock)
	if !ok {
		return entity.StockAlert{}, false
	}
	a := l.createAlertLocked(entity.StockAlert{
		ProductID:    productID,
		Type:         typ,
		Threshold:    inventory.AlertThreshold(typ, s.MinStock),
		CurrentStock: currentStock,
		IsActive:     true,
	})
	l.persistLocked(ctx)
	return a, true
}

// StockSummary conteo de alertas activas por tipo.
type StockSummary struct {
	// TotalProducts cuenta filas de configuración, no productos del catálogo.
	TotalProducts         int `json:"totalProducts"`
	LowStockProducts      int `json:"lowStockProducts"`
	CriticalStockProducts int `json:"criticalStockProducts"`
	OutOfStock            int `json:"outOfStock"`
}

// GetStockSummary resume las alertas activas.
func (l *StockLedger) GetStockSummary() StockSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	sum := StockSummary{TotalProducts: len(l.settings)}
	for _, a := range l.alerts {
		if !a.IsActive {
			continue
		}
		switch a.Type {
		case entity.AlertStockBajo:
			sum.LowStockProducts++
		case entity.AlertStockCritico:
			sum.CriticalStockProducts++
		case entity.AlertSinStock:
			sum.OutOfStock++
		}
	}
	return sum
}
