// Package pdf genera documentos PDF de MÍSTICA con Maroto v2.
//
// Etiquetas: una fila por copia con nombre, precio y código de barras Code128.
// Reporte de stock: encabezado, indicadores del reporte y tabla de alertas activas.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appreport "github.com/jhoicas/mistica-api/internal/application/report"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
)

var (
	colorPrimary = &props.Color{Red: 69, Green: 90, Blue: 84} // #455a54
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ appreport.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("MÍSTICA", true).
		Build()
	return maroto.New(cfg)
}

// BarcodeLabels genera copies etiquetas por producto.
func (g *MarotoPDFGenerator) BarcodeLabels(_ context.Context, products []entity.Product, copies int) ([]byte, error) {
	if copies <= 0 {
		copies = 1
	}
	m := newDocument("Etiquetas MÍSTICA")
	for _, p := range products {
		for i := 0; i < copies; i++ {
			m.AddRows(labelRow(p))
			m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
		}
	}
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelRow: nombre y precio (izq), código de barras con su texto (der).
func labelRow(p entity.Product) core.Row {
	return row.New(28).Add(
		col.New(5).Add(
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 3, Color: colorPrimary}),
			text.New(p.Category.Label(), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(money(p.Price), props.Text{Style: fontstyle.Bold, Size: 12, Top: 18}),
		),
		col.New(7).Add(
			code.NewBar(p.Barcode, props.Barcode{Percent: 70, Center: true}),
			text.New(p.Barcode, props.Text{Size: 8, Align: align.Center, Top: 23}),
		),
	)
}

// StockReport genera el reporte de stock.
func (g *MarotoPDFGenerator) StockReport(_ context.Context, d appreport.StockDocument) ([]byte, error) {
	m := newDocument("Reporte de stock MÍSTICA")

	m.AddRows(reportHeaderRow(d.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(indicatorRows(d)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(alertsHeaderRow())
	if len(d.ActiveAlerts) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin alertas activas.", props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	for _, a := range d.ActiveAlerts {
		m.AddRows(alertRow(a, d.ProductNames[a.ProductID]))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func reportHeaderRow(generatedAt string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("MÍSTICA", props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Reporte de stock", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt, props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func indicatorRows(d appreport.StockDocument) []core.Row {
	r := d.Report
	item := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return []core.Row{
		row.New(14).Add(
			item("Productos", fmt.Sprint(r.TotalProducts)),
			item("Valor de stock (costo)", money(r.TotalStockValue)),
			item("Movimientos (7 días)", fmt.Sprint(r.RecentMovements)),
			item("Alertas activas", fmt.Sprint(r.ActiveAlerts)),
		),
		row.New(14).Add(
			item("Stock bajo", fmt.Sprint(r.LowStockProducts)),
			item("Stock crítico", fmt.Sprint(r.CriticalStockProducts)),
			item("Sin stock", fmt.Sprint(r.OutOfStockProducts)),
			item("Productos con configuración", fmt.Sprint(d.Summary.TotalProducts)),
		),
	}
}

func alertsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Alerta", 3, align.Left),
		h("Umbral", 2, align.Right),
		h("Stock", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func alertRow(a entity.StockAlert, productName string) core.Row {
	if productName == "" {
		productName = "#" + a.ProductID
	}
	cell := func(s string, size int, al align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: al, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(productName, 5, align.Left),
		cell(inventory.FormatAlertType(a.Type), 3, align.Left),
		cell(a.Threshold.String(), 2, align.Right),
		cell(fmt.Sprint(a.CurrentStock), 2, align.Right),
	)
}

// money formatea en ARS: "$1.234,50".
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := "$" + formatThousands(intPart) + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
