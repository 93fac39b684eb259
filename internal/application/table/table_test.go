package table_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mistica-api/internal/application/table"
)

type row struct {
	name  string
	cat   string
	stock int
}

func rows() []row {
	return []row{
		{"Lavanda", "aromaticos", 15},
		{"Manzanilla", "organicos", 32},
		{"Kit", "wellness", 5},
		{"Sándalo", "aromaticos", 28},
		{"Miel", "organicos", 0},
	}
}

func newTable() *table.Table[row] {
	return table.New(
		table.Column[row]{Key: "name", Value: func(r row) string { return r.name }},
		table.Column[row]{Key: "category", Value: func(r row) string { return r.cat }},
		table.Column[row]{
			Key:   "stock",
			Value: func(r row) string { return strconv.Itoa(r.stock) },
			Less:  func(a, b row) bool { return a.stock < b.stock },
		},
	)
}

func names(rs []row) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.name
	}
	return out
}

func TestApply_OrdenNumericoDescendente(t *testing.T) {
	p := newTable().Apply(rows(), table.Query{SortKey: "stock", Direction: table.Desc})

	assert.Equal(t, []string{"Manzanilla", "Sándalo", "Lavanda", "Kit", "Miel"}, names(p.Items))
	assert.Equal(t, 5, p.Total)
	assert.Equal(t, 1, p.TotalPages)
}

func TestApply_OrdenPorTextoAscendente(t *testing.T) {
	p := newTable().Apply(rows(), table.Query{SortKey: "name"})

	assert.Equal(t, []string{"Kit", "Lavanda", "Manzanilla", "Miel", "Sándalo"}, names(p.Items))
}

func TestApply_FiltrosPorColumna(t *testing.T) {
	q := table.Query{Filters: map[string]string{"category": "AROMA", "desconocida": "x"}}

	p := newTable().Apply(rows(), q)

	assert.Equal(t, []string{"Lavanda", "Sándalo"}, names(p.Items))
	assert.True(t, q.Filtered())
	assert.False(t, table.Query{Filters: map[string]string{"name": " "}}.Filtered())
}

func TestApply_Paginacion(t *testing.T) {
	tb := newTable()

	p := tb.Apply(rows(), table.Query{SortKey: "name", Page: 2, PageSize: 2})
	require.Len(t, p.Items, 2)
	assert.Equal(t, []string{"Manzanilla", "Miel"}, names(p.Items))
	assert.Equal(t, 3, p.TotalPages)

	p = tb.Apply(rows(), table.Query{Page: 9, PageSize: 2})
	assert.Empty(t, p.Items)
	assert.Equal(t, 5, p.Total)

	p = tb.Apply(rows(), table.Query{Page: math.MaxInt, PageSize: 10})
	assert.Empty(t, p.Items)
	assert.Equal(t, math.MaxInt, p.Page)

	p = tb.Apply(rows(), table.Query{Page: math.MaxInt, PageSize: math.MaxInt})
	assert.Empty(t, p.Items)

	p = tb.Apply(rows(), table.Query{PageSize: math.MaxInt})
	assert.Len(t, p.Items, 5)
	assert.Equal(t, 1, p.TotalPages)

	p = tb.Apply(rows(), table.Query{})
	assert.Equal(t, table.DefaultPageSize, p.PageSize)
	assert.Equal(t, 1, p.Page)
}
