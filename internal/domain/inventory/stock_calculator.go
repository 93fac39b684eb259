package inventory

import "github.com/jhoicas/mistica-api/internal/domain/entity"

// CalculateCurrentStock reduce los movimientos en el orden recibido.
// entrada suma, salida resta y ajuste reemplaza el acumulado por su NewStock.
// El llamador debe entregar los movimientos en orden cronológico ascendente.
func CalculateCurrentStock(movements []entity.StockMovement) int {
	total := 0
	for _, m := range movements {
		switch m.Type {
		case entity.MovementEntrada:
			total += m.Quantity
		case entity.MovementSalida:
			total -= m.Quantity
		case entity.MovementAjuste:
			total = m.NewStock
		}
	}
	return total
}
