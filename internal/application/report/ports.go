package report

import (
	"context"

	"github.com/jhoicas/mistica-api/internal/application/ledger"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
)

// ProductSource lectura del catálogo.
type ProductSource interface {
	Products() []entity.Product
	GetProductByID(id string) (entity.Product, error)
}

// LedgerSource lectura del libro de stock.
type LedgerSource interface {
	Movements() []entity.StockMovement
	Alerts() []entity.StockAlert
	ActiveAlerts() []entity.StockAlert
	GetStockSummary() ledger.StockSummary
}

// ProductSpreadsheet genera la planilla de productos.
type ProductSpreadsheet interface {
	ProductsWorkbook(ctx context.Context, products []entity.Product) ([]byte, error)
}

// MovementCSV genera el historial de movimientos en CSV.
type MovementCSV interface {
	MovementsCSV(ctx context.Context, movements []entity.StockMovement, productNames map[string]string) ([]byte, error)
}

// StockDocument datos del reporte de stock en PDF.
type StockDocument struct {
	Report       inventory.StockReport
	Summary      ledger.StockSummary
	ActiveAlerts []entity.StockAlert
	ProductNames map[string]string
	GeneratedAt  string
}

// PDFGenerator genera etiquetas de código de barras y el reporte de stock.
type PDFGenerator interface {
	BarcodeLabels(ctx context.Context, products []entity.Product, copies int) ([]byte, error)
	StockReport(ctx context.Context, doc StockDocument) ([]byte, error)
}
