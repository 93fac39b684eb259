package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appreport "github.com/jhoicas/mistica-api/internal/application/report"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
	"github.com/jhoicas/mistica-api/internal/infrastructure/pdf"
)

func TestBarcodeLabels(t *testing.T) {
	p := entity.Product{ID: "1", Name: "Aceite Esencial de Lavanda", Barcode: "MST7891230001",
		Category: entity.CategoryAromaticos, Price: decimal.RequireFromString("25.99")}

	data, err := pdf.NewMarotoPDFGenerator().BarcodeLabels(context.Background(), []entity.Product{p}, 3)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestStockReport(t *testing.T) {
	doc := appreport.StockDocument{
		Report: inventory.StockReport{TotalProducts: 11, TotalStockValue: decimal.RequireFromString("1234.5"), ActiveAlerts: 1},
		ActiveAlerts: []entity.StockAlert{
			{ProductID: "7", Type: entity.AlertSinStock, Threshold: decimal.Zero, IsActive: true},
		},
		ProductNames: map[string]string{"7": "Miel de Manuka Orgánica"},
		GeneratedAt:  "01/03/2024 09:30",
	}

	data, err := pdf.NewMarotoPDFGenerator().StockReport(context.Background(), doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
