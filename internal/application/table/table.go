// Package table aplica orden, filtros por columna y paginación a colecciones en memoria.
package table

import (
	"sort"
	"strings"
)

// Direction sentido del orden.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize tamaño de página por defecto.
const DefaultPageSize = 10

// Query estado de la tabla: orden, filtros y ventana de página.
type Query struct {
	SortKey   string
	Direction Direction
	Filters   map[string]string // columna -> texto contenido (sin distinguir mayúsculas)
	Page      int               // desde 1
	PageSize  int
}

// Filtered indica si la consulta trae algún filtro no vacío.
func (q Query) Filtered() bool {
	for _, v := range q.Filters {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Column describe cómo leer y comparar una columna de T.
type Column[T any] struct {
	Key   string
	Value func(T) string
	Less  func(a, b T) bool // opcional; por defecto compara Value
}

// Page ventana de resultados.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Table conjunto de columnas consultables.
type Table[T any] struct {
	columns map[string]Column[T]
}

// New crea una tabla con las columnas dadas.
func New[T any](cols ...Column[T]) *Table[T] {
	t := &Table[T]{columns: make(map[string]Column[T], len(cols))}
	for _, c := range cols {
		t.columns[c.Key] = c
	}
	return t
}

// Filter aplica filtros y orden sin paginar. Columnas desconocidas se ignoran.
func (t *Table[T]) Filter(rows []T, q Query) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if t.matches(r, q.Filters) {
			out = append(out, r)
		}
	}
	col, ok := t.columns[q.SortKey]
	if !ok {
		return out
	}
	less := col.Less
	if less == nil {
		less = func(a, b T) bool {
			return strings.ToLower(col.Value(a)) < strings.ToLower(col.Value(b))
		}
	}
	desc := q.Direction == Desc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func (t *Table[T]) matches(r T, filters map[string]string) bool {
	for key, want := range filters {
		want = strings.ToLower(strings.TrimSpace(want))
		if want == "" {
			continue
		}
		col, ok := t.columns[key]
		if !ok {
			continue
		}
		if !strings.Contains(strings.ToLower(col.Value(r)), want) {
			return false
		}
	}
	return true
}

// Apply filtra, ordena y devuelve la página pedida. Una página fuera de rango queda vacía.
func (t *Table[T]) Apply(rows []T, q Query) Page[T] {
	all := t.Filter(rows, q)
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	p := Page[T]{Page: page, PageSize: size, Total: len(all)}
	p.TotalPages = len(all) / size
	if len(all)%size != 0 {
		p.TotalPages++
	}
	if page > p.TotalPages {
		p.Items = []T{}
		return p
	}
	start := (page - 1) * size
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	p.Items = all[start:end]
	return p
}
