package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mistica-api/internal/application/catalog"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// ProductRequest cuerpo de alta y edición de producto.
// En la edición Stock es opcional y debe coincidir con el stock actual: el stock cambia vía /stock.
type ProductRequest struct {
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	Stock         *int            `json:"stock,omitempty"`
	UnitOfMeasure string          `json:"unitOfMeasure"`
	Image         string          `json:"image"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
}

// ToInput convierte el cuerpo en la entrada del catálogo.
func (r ProductRequest) ToInput() catalog.ProductInput {
	stock := 0
	if r.Stock != nil {
		stock = *r.Stock
	}
	return catalog.ProductInput{
		Name:          r.Name,
		Barcode:       r.Barcode,
		Category:      entity.Category(r.Category),
		Price:         r.Price,
		CostPrice:     r.CostPrice,
		Stock:         stock,
		UnitOfMeasure: entity.UnitOfMeasure(r.UnitOfMeasure),
		Image:         r.Image,
		Description:   r.Description,
		Status:        entity.ProductStatus(r.Status),
	}
}

// ToUpdate convierte el cuerpo de la edición. El stock enviado solo se compara con el actual.
func (r ProductRequest) ToUpdate() catalog.ProductUpdate {
	u := catalog.UpdateFromInput(r.ToInput())
	u.ExpectedStock = r.Stock
	return u
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items      []entity.Product `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}
