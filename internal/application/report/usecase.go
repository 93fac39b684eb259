// Package report arma reportes de stock y exportaciones del catálogo.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mistica-api/internal/application/ledger"
	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
	"github.com/jhoicas/mistica-api/pkg/logger"
)

// MsgNothingToExport mensaje cuando la exportación no tiene filas.
const MsgNothingToExport = "No hay productos para exportar"

// MaxLabelCopies tope de etiquetas por producto en un PDF.
const MaxLabelCopies = 100

// ExportSummary resumen mostrado antes de exportar.
type ExportSummary struct {
	Total      int             `json:"total"`
	Categories map[string]int  `json:"categories"` // por etiqueta de categoría
	TotalValue decimal.Decimal `json:"totalValue"` // Σ precio de venta × stock
}

// Digest resumen periódico de stock.
type Digest struct {
	Report  inventory.StockReport
	Summary ledger.StockSummary
}

// ReportUseCase reportes sobre catálogo + ledger.
type ReportUseCase struct {
	products ProductSource
	ledger   LedgerSource
	xlsx     ProductSpreadsheet
	csv      MovementCSV
	pdf      PDFGenerator
	log      *logger.Logger
}

// NewReportUseCase construye el caso de uso. Los generadores pueden ser nil si no se exponen.
func NewReportUseCase(products ProductSource, stock LedgerSource, xlsx ProductSpreadsheet, csv MovementCSV, pdf PDFGenerator, log *logger.Logger) *ReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{products: products, ledger: stock, xlsx: xlsx, csv: csv, pdf: pdf, log: log}
}

// StockReport reporte de stock evaluado en now.
func (uc *ReportUseCase) StockReport(now time.Time) inventory.StockReport {
	return inventory.GenerateStockReport(uc.products.Products(), uc.ledger.Movements(), uc.ledger.Alerts(), now)
}

// Digest reporte y resumen de alertas para el job periódico.
func (uc *ReportUseCase) Digest(now time.Time) Digest {
	return Digest{Report: uc.StockReport(now), Summary: uc.ledger.GetStockSummary()}
}

// MovementStats estadísticas de movimientos en [from, to].
func (uc *ReportUseCase) MovementStats(from, to *time.Time) inventory.MovementStats {
	return inventory.GetMovementStats(uc.ledger.Movements(), from, to)
}

// ExportFilename nombre del archivo de exportación de productos.
func ExportFilename(filtered bool, now time.Time) string {
	prefix := "productos"
	if filtered {
		prefix += "-filtrados"
	}
	return fmt.Sprintf("%s-mistica-%s.xlsx", prefix, now.Format(time.DateOnly))
}

// ExportProducts genera la planilla de products. Sin productos devuelve ErrInvalidInput.
func (uc *ReportUseCase) ExportProducts(ctx context.Context, products []entity.Product, filtered bool, now time.Time) (string, []byte, error) {
	if len(products) == 0 {
		return "", nil, domain.Invalid(MsgNothingToExport)
	}
	data, err := uc.xlsx.ProductsWorkbook(ctx, products)
	if err != nil {
		return "", nil, fmt.Errorf("report: exportar productos: %w", err)
	}
	uc.log.Info().Int("products", len(products)).Bool("filtered", filtered).Msg("report: productos exportados")
	return ExportFilename(filtered, now), data, nil
}

// Summary resumen de exportación de products.
func Summary(products []entity.Product) ExportSummary {
	s := ExportSummary{Total: len(products), Categories: map[string]int{}, TotalValue: decimal.Zero}
	for _, p := range products {
		s.Categories[p.Category.Label()]++
		s.TotalValue = s.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return s
}

// ExportMovements historial de movimientos en CSV, más reciente primero.
// productID vacío exporta todos; from/to nil no limitan.
func (uc *ReportUseCase) ExportMovements(ctx context.Context, productID string, from, to *time.Time, now time.Time) (string, []byte, error) {
	movs := make([]entity.StockMovement, 0)
	for _, m := range inventory.SortMovementsByDate(uc.ledger.Movements()) {
		if productID != "" && m.ProductID != productID {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		movs = append(movs, m)
	}
	data, err := uc.csv.MovementsCSV(ctx, movs, uc.productNames())
	if err != nil {
		return "", nil, fmt.Errorf("report: exportar movimientos: %w", err)
	}
	return fmt.Sprintf("movimientos-mistica-%s.csv", now.Format(time.DateOnly)), data, nil
}

// ProductLabel PDF con copies etiquetas del código de barras del producto.
func (uc *ReportUseCase) ProductLabel(ctx context.Context, productID string, copies int) ([]byte, error) {
	p, err := uc.products.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	if copies <= 0 {
		copies = 1
	}
	if copies > MaxLabelCopies {
		copies = MaxLabelCopies
	}
	return uc.pdf.BarcodeLabels(ctx, []entity.Product{p}, copies)
}

// StockReportPDF reporte de stock en PDF.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context, now time.Time) ([]byte, error) {
	doc := StockDocument{
		Report:       uc.StockReport(now),
		Summary:      uc.ledger.GetStockSummary(),
		ActiveAlerts: uc.ledger.ActiveAlerts(),
		ProductNames: uc.productNames(),
		GeneratedAt:  now.Format("02/01/2006 15:04"),
	}
	return uc.pdf.StockReport(ctx, doc)
}

func (uc *ReportUseCase) productNames() map[string]string {
	names := make(map[string]string)
	for _, p := range uc.products.Products() {
		names[p.ID] = p.Name
	}
	return names
}
