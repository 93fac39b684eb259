// Package csv exporta el historial de movimientos con gocsv.
package csv

import (
	"context"
	"fmt"
	"time"

	"github.com/gocarina/gocsv"

	appreport "github.com/jhoicas/mistica-api/internal/application/report"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
)

type movementRow struct {
	Fecha         string `csv:"fecha"`
	ProductoID    string `csv:"producto_id"`
	Producto      string `csv:"producto"`
	Tipo          string `csv:"tipo"`
	Cantidad      int    `csv:"cantidad"`
	StockAnterior int    `csv:"stock_anterior"`
	StockNuevo    int    `csv:"stock_nuevo"`
	Motivo        string `csv:"motivo"`
	Referencia    string `csv:"referencia"`
	Usuario       string `csv:"usuario"`
}

// MovementsCSV implementa report.MovementCSV.
type MovementsCSV struct{}

var _ appreport.MovementCSV = (*MovementsCSV)(nil)

// NewMovementsCSV construye el exportador.
func NewMovementsCSV() *MovementsCSV { return &MovementsCSV{} }

// MovementsCSV una fila por movimiento; fechas en RFC3339. Productos sin nombre conocido quedan vacíos.
func (e *MovementsCSV) MovementsCSV(_ context.Context, movements []entity.StockMovement, productNames map[string]string) ([]byte, error) {
	rows := make([]*movementRow, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, &movementRow{
			Fecha:         m.CreatedAt.Format(time.RFC3339),
			ProductoID:    m.ProductID,
			Producto:      productNames[m.ProductID],
			Tipo:          inventory.FormatMovementType(m.Type),
			Cantidad:      m.Quantity,
			StockAnterior: m.PreviousStock,
			StockNuevo:    m.NewStock,
			Motivo:        m.Reason,
			Referencia:    m.Reference,
			Usuario:       m.UserID,
		})
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("csv: serializar movimientos: %w", err)
	}
	return out, nil
}
