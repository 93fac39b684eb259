package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category categorías del catálogo MÍSTICA.
type Category string

const (
	CategoryOrganicos  Category = "organicos"
	CategoryAromaticos Category = "aromaticos"
	CategoryWellness   Category = "wellness"
)

// Valid indica si la categoría pertenece al catálogo.
func (c Category) Valid() bool {
	switch c {
	case CategoryOrganicos, CategoryAromaticos, CategoryWellness:
		return true
	}
	return false
}

// Label etiqueta visible de la categoría.
func (c Category) Label() string {
	switch c {
	case CategoryOrganicos:
		return "Orgánicos"
	case CategoryAromaticos:
		return "Aromáticos"
	case CategoryWellness:
		return "Wellness"
	}
	return string(c)
}

// UnitOfMeasure unidad en la que se mide el stock.
type UnitOfMeasure string

const (
	UnitGramo UnitOfMeasure = "gramo"
	UnitLitro UnitOfMeasure = "litro"
)

// Valid indica si la unidad es conocida.
func (u UnitOfMeasure) Valid() bool {
	return u == UnitGramo || u == UnitLitro
}

// Short abreviatura usada en exportaciones (g, L).
func (u UnitOfMeasure) Short() string {
	switch u {
	case UnitGramo:
		return "g"
	case UnitLitro:
		return "L"
	}
	return string(u)
}

// ProductStatus estado comercial del producto.
type ProductStatus string

const (
	StatusActive     ProductStatus = "active"
	StatusInactive   ProductStatus = "inactive"
	StatusOutOfStock ProductStatus = "out_of_stock"
)

// Valid indica si el estado es conocido.
func (s ProductStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOutOfStock:
		return true
	}
	return false
}

// Label etiqueta visible del estado.
func (s ProductStatus) Label() string {
	switch s {
	case StatusActive:
		return "Activo"
	case StatusInactive:
		return "Inactivo"
	case StatusOutOfStock:
		return "Sin Stock"
	}
	return string(s)
}

// Product representa un producto del catálogo.
// CostPrice < Price solo se exige al enviar el formulario, no como invariante almacenado.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	Category      Category        `json:"category"`
	Price         decimal.Decimal `json:"price"`     // precio de venta
	CostPrice     decimal.Decimal `json:"costPrice"` // precio de costo
	Stock         int             `json:"stock"`
	UnitOfMeasure UnitOfMeasure   `json:"unitOfMeasure"`
	Image         string          `json:"image"`
	Description   string          `json:"description"`
	Status        ProductStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
