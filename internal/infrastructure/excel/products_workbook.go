// Package excel genera la planilla de productos con excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appreport "github.com/jhoicas/mistica-api/internal/application/report"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
)

// SheetName nombre de la hoja exportada.
const SheetName = "Productos"

// Headers encabezados fijos de la planilla.
var Headers = []string{
	"Código de Barras",
	"Producto",
	"Categoría",
	"Precio Costo (ARS)",
	"Precio Venta (ARS)",
	"Margen (%)",
	"Stock",
	"Unidad de Medida",
	"Estado",
	"Descripción",
}

var widths = []float64{15, 30, 12, 15, 15, 10, 8, 12, 10, 40}

// ProductsWorkbook implementa report.ProductSpreadsheet.
type ProductsWorkbook struct{}

var _ appreport.ProductSpreadsheet = (*ProductsWorkbook)(nil)

// NewProductsWorkbook construye el generador.
func NewProductsWorkbook() *ProductsWorkbook { return &ProductsWorkbook{} }

// ProductsWorkbook escribe una fila por producto debajo de los encabezados y devuelve el .xlsx.
func (g *ProductsWorkbook) ProductsWorkbook(_ context.Context, products []entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: encabezados: %w", err)
	}
	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			p.Barcode,
			p.Name,
			p.Category.Label(),
			p.CostPrice.InexactFloat64(),
			p.Price.InexactFloat64(),
			inventory.ProfitMargin(p.Price, p.CostPrice).StringFixed(1),
			p.Stock,
			p.UnitOfMeasure.Short(),
			p.Status.Label(),
			p.Description,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("excel: ancho de columna %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
