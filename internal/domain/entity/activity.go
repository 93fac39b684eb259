package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityType clasificación de los eventos del historial.
type ActivityType string

const (
	ActivityIngreso        ActivityType = "ingreso"
	ActivityEgreso         ActivityType = "egreso"
	ActivityCambioProducto ActivityType = "cambio_producto"
	ActivityCambioPrecio   ActivityType = "cambio_precio"
	ActivityOtro           ActivityType = "otro"
)

// Valid indica si el tipo es conocido.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityIngreso, ActivityEgreso, ActivityCambioProducto, ActivityCambioPrecio, ActivityOtro:
		return true
	}
	return false
}

// Activity entrada legible del historial de negocio.
type Activity struct {
	ID          string           `json:"id"`
	Type        ActivityType     `json:"type"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount,omitempty"` // vacío en actividades no monetarias
	Date        time.Time        `json:"date"`
	UserID      string           `json:"userId,omitempty"`
	Metadata    map[string]any   `json:"metadata,omitempty"`
}

// StoreStatus estado de carga de un store en memoria.
type StoreStatus string

const (
	StatusIdle    StoreStatus = "idle"
	StatusLoading StoreStatus = "loading"
	StatusSuccess StoreStatus = "success"
	StatusError   StoreStatus = "error"
)
