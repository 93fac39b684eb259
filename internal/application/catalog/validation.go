package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// Mensajes del formulario de producto.
const (
	MsgRequiredFields = "Por favor completa todos los campos obligatorios."
	MsgInvalidNumbers = "Los precios y stock deben ser números válidos."
	MsgCostAbovePrice = "El precio de costo debe ser menor al precio de venta."
	MsgInvalidEnum    = "Categoría, unidad de medida o estado inválido."
	MsgStockReadOnly  = "El stock no se edita desde el producto; usa los movimientos de stock."
)

// ProductInput datos del formulario de alta o edición.
type ProductInput struct {
	Name          string
	Barcode       string // opcional: se genera a partir del id
	Category      entity.Category
	Price         decimal.Decimal
	CostPrice     decimal.Decimal
	Stock         int
	UnitOfMeasure entity.UnitOfMeasure
	Image         string
	Description   string
	Status        entity.ProductStatus // vacío = active
}

// ValidateProductInput aplica las reglas del formulario. El store no las exige.
func ValidateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" || in.Price.IsZero() || in.CostPrice.IsZero() {
		return domain.Invalid(MsgRequiredFields)
	}
	if in.Price.IsNegative() || in.CostPrice.IsNegative() || in.Stock < 0 {
		return domain.Invalid(MsgInvalidNumbers)
	}
	if in.CostPrice.GreaterThanOrEqual(in.Price) {
		return domain.Invalid(MsgCostAbovePrice)
	}
	if !in.Category.Valid() || !in.UnitOfMeasure.Valid() || (in.Status != "" && !in.Status.Valid()) {
		return domain.Invalid(MsgInvalidEnum)
	}
	return nil
}

// ProductUpdate campos a modificar; nil deja el valor actual. El stock solo cambia vía operaciones de stock.
type ProductUpdate struct {
	Name          *string
	Barcode       *string
	Category      *entity.Category
	Price         *decimal.Decimal
	CostPrice     *decimal.Decimal
	UnitOfMeasure *entity.UnitOfMeasure
	Image         *string
	Description   *string
	Status        *entity.ProductStatus

	// ExpectedStock si no es nil debe coincidir con el stock actual.
	ExpectedStock *int
}

// UpdateFromInput construye un ProductUpdate que reemplaza todos los campos editables.
func UpdateFromInput(in ProductInput) ProductUpdate {
	u := ProductUpdate{
		Name:          &in.Name,
		Category:      &in.Category,
		Price:         &in.Price,
		CostPrice:     &in.CostPrice,
		UnitOfMeasure: &in.UnitOfMeasure,
		Image:         &in.Image,
		Description:   &in.Description,
	}
	if in.Barcode != "" {
		u.Barcode = &in.Barcode
	}
	if in.Status != "" {
		u.Status = &in.Status
	}
	return u
}

func (u ProductUpdate) apply(p *entity.Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Barcode != nil {
		p.Barcode = *u.Barcode
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.CostPrice != nil {
		p.CostPrice = *u.CostPrice
	}
	if u.UnitOfMeasure != nil {
		p.UnitOfMeasure = *u.UnitOfMeasure
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
}
