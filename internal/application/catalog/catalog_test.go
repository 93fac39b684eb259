package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mistica-api/internal/application/activity"
	"github.com/jhoicas/mistica-api/internal/application/catalog"
	"github.com/jhoicas/mistica-api/internal/application/ledger"
	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/pkg/barcode"
)

type fixture struct {
	catalog *catalog.CatalogUseCase
	ledger  *ledger.StockLedger
	acts    *activity.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	acts := activity.NewStore()
	l := ledger.NewStockLedger(nil, acts, nil)
	c := catalog.NewCatalogUseCase(l, acts, catalog.Delays{}, nil)
	require.NoError(t, c.LoadProducts(context.Background()))
	return fixture{catalog: c, ledger: l, acts: acts}
}

func validInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:          "Sahumerio de Palo Santo",
		Category:      entity.CategoryAromaticos,
		Price:         decimal.RequireFromString("8.50"),
		CostPrice:     decimal.RequireFromString("4.00"),
		Stock:         20,
		UnitOfMeasure: entity.UnitGramo,
		Description:   "Palo santo peruano",
	}
}

func TestLoadProducts_CargaCatalogoInicial(t *testing.T) {
	f := newFixture(t)

	products := f.catalog.Products()
	require.Len(t, products, 11)
	st, msg := f.catalog.Status()
	assert.Equal(t, entity.StatusSuccess, st)
	assert.Empty(t, msg)

	lavanda, err := f.catalog.GetProductByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Aceite Esencial de Lavanda", lavanda.Name)
	assert.True(t, barcode.Validate(lavanda.Barcode))
	id, ok := barcode.ExtractProductID(lavanda.Barcode)
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestLoadProducts_RespetaCancelacion(t *testing.T) {
	c := catalog.NewCatalogUseCase(ledger.NewStockLedger(nil, nil, nil), nil, catalog.Delays{Load: time.Hour}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.LoadProducts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, c.Products())
	st, _ := c.Status()
	assert.Equal(t, entity.StatusError, st)
}

func TestGetProductStats(t *testing.T) {
	f := newFixture(t)

	s := f.catalog.GetProductStats()

	assert.Equal(t, catalog.ProductStats{Total: 11, Active: 9, OutOfStock: 1, LowStock: 2}, s)
	assert.Len(t, f.catalog.GetLowStockProducts(0), 2)
	assert.Len(t, f.catalog.GetLowStockProducts(20), 4)
	assert.Len(t, f.catalog.GetProductsByCategory(entity.CategoryWellness), 3)
}

func TestSearchProducts_IgnoraAcentosYMayusculas(t *testing.T) {
	f := newFixture(t)

	got := f.catalog.SearchProducts("MEDITACION")
	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Kit de Meditación Completo", "Incienso de Sándalo Premium"}, names)

	assert.Len(t, f.catalog.SearchProducts("orgánicos"), 4)
	assert.Len(t, f.catalog.SearchProducts("sándalo"), 1)
	assert.Empty(t, f.catalog.SearchProducts("zzz"))
}

func TestAddProduct_IdSecuencialYCodigoDerivado(t *testing.T) {
	f := newFixture(t)

	p, err := f.catalog.AddProduct(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "16", p.ID)
	assert.Equal(t, entity.StatusActive, p.Status)
	id, ok := barcode.ExtractProductID(p.Barcode)
	require.True(t, ok)
	assert.Equal(t, 16, id)
	assert.Equal(t, p.ID, f.catalog.Products()[0].ID)

	acts := f.acts.List()
	require.NotEmpty(t, acts)
	assert.Equal(t, entity.ActivityCambioProducto, acts[0].Type)
	assert.Equal(t, "Producto agregado: Sahumerio de Palo Santo", acts[0].Description)

	p2, err := f.catalog.AddProduct(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "17", p2.ID)
}

func TestAddProduct_CodigoDuplicado(t *testing.T) {
	f := newFixture(t)
	lavanda, err := f.catalog.GetProductByID("1")
	require.NoError(t, err)
	in := validInput()
	in.Barcode = lavanda.Barcode

	_, err = f.catalog.AddProduct(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, f.catalog.Products(), 11)
	st, _ := f.catalog.Status()
	assert.Equal(t, entity.StatusError, st)
}

func TestUpdateProduct_CambioDePrecio(t *testing.T) {
	f := newFixture(t)
	price := decimal.RequireFromString("29.99")

	p, err := f.catalog.UpdateProduct(context.Background(), "1", catalog.ProductUpdate{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, "29.99", p.Price.String())
	assert.Equal(t, "Aceite Esencial de Lavanda", p.Name)
	acts := f.acts.List()
	require.NotEmpty(t, acts)
	assert.Equal(t, entity.ActivityCambioPrecio, acts[0].Type)
	require.NotNil(t, acts[0].Amount)
	assert.Equal(t, "29.99", acts[0].Amount.String())
	assert.Contains(t, acts[0].Description, "25.99 → 29.99")
}

func TestUpdateProduct_SinCambioDePrecio(t *testing.T) {
	f := newFixture(t)
	name := "Lavanda Premium"

	p, err := f.catalog.UpdateProduct(context.Background(), "1", catalog.ProductUpdate{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, name, p.Name)
	assert.Equal(t, 15, p.Stock)
	assert.Equal(t, entity.ActivityCambioProducto, f.acts.List()[0].Type)
}

func TestUpdateProduct_RechazaCambioDeStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	name := "Lavanda Premium"
	stock := 40

	_, err := f.catalog.UpdateProduct(ctx, "1", catalog.ProductUpdate{Name: &name, ExpectedStock: &stock})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), catalog.MsgStockReadOnly)
	p, _ := f.catalog.GetProductByID("1")
	assert.Equal(t, "Aceite Esencial de Lavanda", p.Name)
	assert.Equal(t, 15, p.Stock)

	stock = 15
	p, err = f.catalog.UpdateProduct(ctx, "1", catalog.ProductUpdate{Name: &name, ExpectedStock: &stock})
	require.NoError(t, err)
	assert.Equal(t, name, p.Name)
}

func TestUpdateYDelete_Inexistente(t *testing.T) {
	f := newFixture(t)
	name := "x"

	_, err := f.catalog.UpdateProduct(context.Background(), "999", catalog.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, f.catalog.DeleteProduct(context.Background(), "999"), domain.ErrNotFound)
}

func TestDeleteProduct_ConservaHistorialDelLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.catalog.AddStock(ctx, "3", 5, catalog.StockChange{Reason: "Compra"})
	require.NoError(t, err)

	require.NoError(t, f.catalog.DeleteProduct(ctx, "3"))

	_, err = f.catalog.GetProductByID("3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, f.ledger.MovementsByProduct("3"), 1)
	assert.Equal(t, "Producto eliminado: Té Orgánico de Manzanilla", f.acts.List()[0].Description)
}

func TestValidateProductInput(t *testing.T) {
	assert.NoError(t, catalog.ValidateProductInput(validInput()))

	in := validInput()
	in.Name = "  "
	assert.ErrorIs(t, catalog.ValidateProductInput(in), domain.ErrInvalidInput)

	in = validInput()
	in.CostPrice = in.Price
	err := catalog.ValidateProductInput(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), catalog.MsgCostAbovePrice)

	in = validInput()
	in.Stock = -1
	assert.Contains(t, catalog.ValidateProductInput(in).Error(), catalog.MsgInvalidNumbers)

	in = validInput()
	in.Category = "velas"
	assert.Contains(t, catalog.ValidateProductInput(in).Error(), catalog.MsgInvalidEnum)
}

func TestCatalog_Concurrente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = f.catalog.AddStock(ctx, "14", 1, catalog.StockChange{Reason: "Compra"})
		}()
		go func() {
			defer wg.Done()
			_ = f.catalog.SearchProducts("cúrcuma")
		}()
	}
	wg.Wait()

	p, err := f.catalog.GetProductByID("14")
	require.NoError(t, err)
	assert.Equal(t, 65, p.Stock)
	assert.Len(t, f.ledger.MovementsByProduct("14"), 20)
}
