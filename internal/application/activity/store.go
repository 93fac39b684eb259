// Package activity mantiene el historial de actividades del negocio.
package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// DefaultRecentLimit cantidad por defecto de Recent.
const DefaultRecentLimit = 10

// Store lista de actividades, la más reciente primero. Sin límite de tamaño.
type Store struct {
	mu         sync.RWMutex
	activities []entity.Activity
	status     entity.StoreStatus
	err        string
	now        func() time.Time
}

// NewStore crea un historial vacío.
func NewStore() *Store {
	return &Store{status: entity.StatusIdle, now: time.Now}
}

// AddActivity asigna id y fecha nuevos y agrega la actividad al inicio.
func (s *Store) AddActivity(a entity.Activity) entity.Activity {
	a.ID = uuid.New().String()
	a.Date = s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append([]entity.Activity{a}, s.activities...)
	s.status = entity.StatusSuccess
	s.err = ""
	return a
}

// List devuelve una copia del historial completo.
func (s *Store) List() []entity.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// ListByType filtra por tipo conservando el orden.
func (s *Store) ListByType(t entity.ActivityType) []entity.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Activity, 0)
	for _, a := range s.activities {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// Recent devuelve las primeras limit actividades según el orden de inserción.
func (s *Store) Recent(limit int) []entity.Activity {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit > len(s.activities) {
		limit = len(s.activities)
	}
	out := make([]entity.Activity, limit)
	copy(out, s.activities[:limit])
	return out
}

// Clear vacía el historial y vuelve a idle.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = nil
	s.status = entity.StatusIdle
	s.err = ""
}

// SetLoading marca el store como cargando (o idle), limpiando el error al iniciar.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loading {
		s.status = entity.StatusLoading
		s.err = ""
		return
	}
	s.status = entity.StatusIdle
}

// SetError registra un error; msg vacío vuelve a success.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	if msg != "" {
		s.status = entity.StatusError
		return
	}
	s.status = entity.StatusSuccess
}

// Status estado actual y último error.
func (s *Store) Status() (entity.StoreStatus, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.err
}

// Len cantidad de actividades registradas.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}
