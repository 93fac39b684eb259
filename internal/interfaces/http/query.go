package http

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mistica-api/internal/application/table"
	"github.com/jhoicas/mistica-api/internal/domain"
)

// tableQuery lee sort, dir, page, pageSize y filter[columna] de la query string.
func tableQuery(c *fiber.Ctx) table.Query {
	q := table.Query{
		SortKey:   c.Query("sort"),
		Direction: table.Asc,
		Page:      c.QueryInt("page", 1),
		PageSize:  c.QueryInt("pageSize", table.DefaultPageSize),
		Filters:   map[string]string{},
	}
	if strings.EqualFold(c.Query("dir"), string(table.Desc)) {
		q.Direction = table.Desc
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		key := string(k)
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			q.Filters[key[len("filter["):len(key)-1]] = string(v)
		}
	})
	return q
}

// dateRange lee from/to en cualquier formato reconocible por dateparse.
func dateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	parse := func(name string) (*time.Time, error) {
		s := strings.TrimSpace(c.Query(name))
		if s == "" {
			return nil, nil
		}
		t, err := dateparse.ParseLocal(s)
		if err != nil {
			return nil, domain.Invalid("fecha inválida en '" + name + "': " + s)
		}
		return &t, nil
	}
	if from, err = parse("from"); err != nil {
		return nil, nil, err
	}
	if to, err = parse("to"); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
