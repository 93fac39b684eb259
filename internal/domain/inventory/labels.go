package inventory

import "github.com/jhoicas/mistica-api/internal/domain/entity"

// FormatMovementType etiqueta visible del tipo de movimiento.
func FormatMovementType(t entity.MovementType) string {
	switch t {
	case entity.MovementEntrada:
		return "Entrada"
	case entity.MovementSalida:
		return "Salida"
	case entity.MovementAjuste:
		return "Ajuste"
	}
	return string(t)
}

// FormatAlertType etiqueta visible del tipo de alerta.
func FormatAlertType(t entity.AlertType) string {
	switch t {
	case entity.AlertStockBajo:
		return "Stock Bajo"
	case entity.AlertStockCritico:
		return "Stock Crítico"
	case entity.AlertSinStock:
		return "Sin Stock"
	}
	return string(t)
}
