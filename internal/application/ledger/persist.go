package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/repository"
)

// persistedVersion versión del formato del blob.
const persistedVersion = 0

type snapshot struct {
	Movements   []entity.StockMovement   `json:"movements"`
	Alerts      []entity.StockAlert      `json:"alerts"`
	Adjustments []entity.StockAdjustment `json:"adjustments"`
	Settings    []entity.StockSettings   `json:"settings"`
}

type envelope struct {
	State   snapshot `json:"state"`
	Version int      `json:"version"`
}

func (l *StockLedger) snapshotLocked() snapshot {
	s := snapshot{
		Movements:   make([]entity.StockMovement, len(l.movements)),
		Alerts:      make([]entity.StockAlert, 0, len(l.alerts)),
		Adjustments: make([]entity.StockAdjustment, len(l.adjustments)),
		Settings:    make([]entity.StockSettings, len(l.settings)),
	}
	copy(s.Movements, l.movements)
	copy(s.Adjustments, l.adjustments)
	copy(s.Settings, l.settings)
	for _, a := range l.alerts {
		s.Alerts = append(s.Alerts, *a)
	}
	return s
}

// persistLocked guarda el estado completo. Los errores se registran y no se propagan.
func (l *StockLedger) persistLocked(ctx context.Context) {
	if l.store == nil {
		return
	}
	data, err := json.Marshal(envelope{State: l.snapshotLocked(), Version: persistedVersion})
	if err != nil {
		l.log.Warn().Err(err).Msg("ledger: no se pudo serializar el estado")
		return
	}
	if err := l.store.Save(ctx, repository.StockStoreKey, data); err != nil {
		l.log.Warn().Err(err).Str("key", repository.StockStoreKey).Msg("ledger: no se pudo persistir el estado")
	}
}

// Hydrate reemplaza el estado en memoria por el blob persistido. Sin blob no hace nada.
// Si el blob trae más de una alerta activa para el mismo (producto, tipo), la primera (más reciente) queda como la activa indexada.
func (l *StockLedger) Hydrate(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	data, err := l.store.Load(ctx, repository.StockStoreKey)
	if err != nil {
		return fmt.Errorf("ledger: cargar estado: %w", err)
	}
	if data == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("ledger: decodificar estado: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.movements = env.State.Movements
	l.adjustments = env.State.Adjustments
	l.settings = env.State.Settings
	l.alerts = make([]*entity.StockAlert, 0, len(env.State.Alerts))
	l.byID = make(map[string]*entity.StockAlert, len(env.State.Alerts))
	l.active = make(map[alertKey]*entity.StockAlert)
	for i := range env.State.Alerts {
		a := &env.State.Alerts[i]
		l.alerts = append(l.alerts, a)
		l.byID[a.ID] = a
		key := alertKey{a.ProductID, a.Type}
		if _, dup := l.active[key]; a.IsActive && !dup {
			l.active[key] = a
		}
	}
	l.log.Info().
		Int("movements", len(l.movements)).
		Int("alerts", len(l.alerts)).
		Int("adjustments", len(l.adjustments)).
		Int("settings", len(l.settings)).
		Msg("ledger: estado restaurado")
	return nil
}
