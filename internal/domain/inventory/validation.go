package inventory

import (
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/mistica-api/internal/domain"
)

// Mensajes de validación de ajustes.
const (
	MsgNegativeStock = "El stock no puede ser negativo"
	MsgReasonEmpty   = "Debe proporcionar un motivo para el ajuste"
	MsgReasonShort   = "El motivo debe tener al menos 3 caracteres"
)

// ValidateStockAdjustment valida un ajuste manual. currentStock no se verifica.
// Retorna nil si el ajuste es válido o un error que envuelve domain.ErrInvalidInput.
func ValidateStockAdjustment(currentStock, newStock int, reason string) error {
	if newStock < 0 {
		return domain.Invalid(MsgNegativeStock)
	}
	r := strings.TrimSpace(reason)
	if r == "" {
		return domain.Invalid(MsgReasonEmpty)
	}
	if utf8.RuneCountInString(r) < 3 {
		return domain.Invalid(MsgReasonShort)
	}
	return nil
}
