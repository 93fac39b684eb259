package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mistica-api/internal/application/dto"
	"github.com/jhoicas/mistica-api/internal/application/ledger"
	"github.com/jhoicas/mistica-api/internal/application/replenishment"
	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
)

// StockHandler consultas y mutaciones directas del ledger de stock.
type StockHandler struct {
	ledger  *ledger.StockLedger
	restock *replenishment.ReplenishmentUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(l *ledger.StockLedger, restock *replenishment.ReplenishmentUseCase) *StockHandler {
	return &StockHandler{ledger: l, restock: restock}
}

// Movements godoc
// @Summary      Movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto"
// @Success      200  {array}  entity.StockMovement
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	if id := c.Query("productId"); id != "" {
		return c.JSON(h.ledger.MovementsByProduct(id))
	}
	return c.JSON(inventory.SortMovementsByDate(h.ledger.Movements()))
}

// RecentMovements godoc
// @Summary      Movimientos recientes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad"  default(10)
// @Success      200  {array}  entity.StockMovement
// @Router       /api/stock/movements/recent [get]
func (h *StockHandler) RecentMovements(c *fiber.Ctx) error {
	return c.JSON(h.ledger.RecentMovements(c.QueryInt("limit", 10)))
}

// Alerts godoc
// @Summary      Alertas de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        active     query  bool    false  "Solo activas"
// @Param        productId  query  string  false  "Filtrar por producto"
// @Success      200  {array}  entity.StockAlert
// @Router       /api/stock/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	switch {
	case c.Query("productId") != "":
		return c.JSON(h.ledger.AlertsByProduct(c.Query("productId")))
	case c.QueryBool("active"):
		return c.JSON(h.ledger.ActiveAlerts())
	default:
		return c.JSON(h.ledger.Alerts())
	}
}

// ResolveAlert godoc
// @Summary      Resolver alerta
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta"
// @Success      200  {object}  entity.StockAlert
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/alerts/{id}/resolve [post]
func (h *StockHandler) ResolveAlert(c *fiber.Ctx) error {
	out, err := h.ledger.ResolveAlert(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Adjustments godoc
// @Summary      Ajustes de inventario
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto"
// @Success      200  {array}  entity.StockAdjustment
// @Router       /api/stock/adjustments [get]
func (h *StockHandler) Adjustments(c *fiber.Ctx) error {
	if id := c.Query("productId"); id != "" {
		return c.JSON(h.ledger.AdjustmentsByProduct(id))
	}
	return c.JSON(h.ledger.Adjustments())
}

// GetSettings godoc
// @Summary      Configuración de stock de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  entity.StockSettings
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/settings/{productId} [get]
func (h *StockHandler) GetSettings(c *fiber.Ctx) error {
	s, ok := h.ledger.StockSettings(c.Params("productId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el producto no tiene configuración de stock"})
	}
	return c.JSON(s)
}

// PutSettings godoc
// @Summary      Guardar configuración de stock
// @Description  Reemplaza la configuración completa del producto.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.SettingsRequest  true  "Configuración"
// @Success      200  {object}  entity.StockSettings
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/settings/{productId} [put]
func (h *StockHandler) PutSettings(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.MinStock < 0 || in.ReorderPoint < 0 || (in.MaxStock != nil && *in.MaxStock < in.MinStock) {
		return writeError(c, domain.Invalid("valores de stock inválidos"))
	}
	out := h.ledger.UpdateStockSettings(c.Context(), c.Params("productId"), in.ToSettings(c.Params("productId")))
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  ledger.StockSummary
// @Router       /api/stock/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.ledger.GetStockSummary())
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Productos en o bajo su punto de reorden, ordenados por prioridad.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  replenishment.Suggestion
// @Router       /api/stock/replenishment [get]
func (h *StockHandler) Replenishment(c *fiber.Ctx) error {
	return c.JSON(h.restock.GenerateList(time.Now()))
}
