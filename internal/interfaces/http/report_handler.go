package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mistica-api/internal/application/catalog"
	"github.com/jhoicas/mistica-api/internal/application/report"
)

// ReportHandler reportes y exportaciones.
type ReportHandler struct {
	uc      *report.ReportUseCase
	catalog *catalog.CatalogUseCase
	now     func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase, cat *catalog.CatalogUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, catalog: cat, now: time.Now}
}

func sendFile(c *fiber.Ctx, name, contentType string, data []byte) error {
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

// ExportProducts godoc
// @Summary      Exportar productos a Excel
// @Description  Acepta los mismos filtros y orden del listado; sin paginar.
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/export [get]
func (h *ReportHandler) ExportProducts(c *fiber.Ctx) error {
	q := tableQuery(c)
	products := productTable.Filter(h.catalog.Products(), q)
	name, data, err := h.uc.ExportProducts(c.Context(), products, q.Filtered(), h.now())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, name, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportSummary godoc
// @Summary      Resumen previo a la exportación
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  report.ExportSummary
// @Router       /api/products/export/summary [get]
func (h *ReportHandler) ExportSummary(c *fiber.Ctx) error {
	return c.JSON(report.Summary(productTable.Filter(h.catalog.Products(), tableQuery(c))))
}

// ProductLabel godoc
// @Summary      Etiqueta con código de barras
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id      path   string  true   "ID del producto"
// @Param        copies  query  int     false  "Copias"  default(1)
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/label [get]
func (h *ReportHandler) ProductLabel(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.uc.ProductLabel(c.Context(), id, c.QueryInt("copies", 1))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "etiqueta-"+id+".pdf", "application/pdf", data)
}

// ExportMovements godoc
// @Summary      Exportar movimientos a CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        productId  query  string  false  "Filtrar por producto"
// @Param        from       query  string  false  "Desde"
// @Param        to         query  string  false  "Hasta"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements/export [get]
func (h *ReportHandler) ExportMovements(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return writeError(c, err)
	}
	name, data, err := h.uc.ExportMovements(c.Context(), c.Query("productId"), from, to, h.now())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, name, "text/csv; charset=utf-8", data)
}

// MovementStats godoc
// @Summary      Estadísticas de movimientos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde"
// @Param        to    query  string  false  "Hasta"
// @Success      200  {object}  inventory.MovementStats
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements/stats [get]
func (h *ReportHandler) MovementStats(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.MovementStats(from, to))
}

// StockReport godoc
// @Summary      Reporte de stock
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  inventory.StockReport
// @Router       /api/stock/report [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	return c.JSON(h.uc.StockReport(h.now()))
}

// StockReportPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/stock/report.pdf [get]
func (h *ReportHandler) StockReportPDF(c *fiber.Ctx) error {
	now := h.now()
	data, err := h.uc.StockReportPDF(c.Context(), now)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "reporte-stock-mistica-"+now.Format(time.DateOnly)+".pdf", "application/pdf", data)
}
