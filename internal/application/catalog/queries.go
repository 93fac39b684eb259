package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// DefaultLowStockThreshold umbral por defecto de stock bajo en el catálogo.
const DefaultLowStockThreshold = 10

// ProductStats conteos del catálogo.
type ProductStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	OutOfStock int `json:"outOfStock"` // por estado, no por stock
	LowStock   int `json:"lowStock"`   // 0 < stock <= 10
}

// Products copia del catálogo en su orden actual.
func (uc *CatalogUseCase) Products() []entity.Product {
	return uc.filter(func(entity.Product) bool { return true })
}

// GetProductByID busca por id.
func (uc *CatalogUseCase) GetProductByID(id string) (entity.Product, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if i := uc.indexLocked(id); i >= 0 {
		return uc.products[i], nil
	}
	return entity.Product{}, domain.ErrProductNotFound
}

// GetProductsByCategory productos de una categoría.
func (uc *CatalogUseCase) GetProductsByCategory(c entity.Category) []entity.Product {
	return uc.filter(func(p entity.Product) bool { return p.Category == c })
}

// GetLowStockProducts productos con 0 < stock <= threshold. threshold <= 0 usa el valor por defecto.
func (uc *CatalogUseCase) GetLowStockProducts(threshold int) []entity.Product {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return uc.filter(func(p entity.Product) bool { return p.Stock > 0 && p.Stock <= threshold })
}

// GetProductStats resumen del catálogo.
func (uc *CatalogUseCase) GetProductStats() ProductStats {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	s := ProductStats{Total: len(uc.products)}
	for _, p := range uc.products {
		switch p.Status {
		case entity.StatusActive:
			s.Active++
		case entity.StatusOutOfStock:
			s.OutOfStock++
		}
		if p.Stock > 0 && p.Stock <= DefaultLowStockThreshold {
			s.LowStock++
		}
	}
	return s
}

// SearchProducts busca en nombre, descripción y categoría sin distinguir mayúsculas ni acentos.
func (uc *CatalogUseCase) SearchProducts(query string) []entity.Product {
	q := fold(query)
	return uc.filter(func(p entity.Product) bool {
		return strings.Contains(fold(p.Name), q) ||
			strings.Contains(fold(p.Description), q) ||
			strings.Contains(fold(string(p.Category)), q) ||
			strings.Contains(fold(p.Category.Label()), q)
	})
}

func (uc *CatalogUseCase) filter(keep func(entity.Product) bool) []entity.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]entity.Product, 0, len(uc.products))
	for _, p := range uc.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// fold pasa a minúsculas y elimina las marcas diacríticas.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
