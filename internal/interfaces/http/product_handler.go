package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mistica-api/internal/application/catalog"
	"github.com/jhoicas/mistica-api/internal/application/dto"
	"github.com/jhoicas/mistica-api/internal/application/table"
	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// productTable columnas ordenables y filtrables del listado de productos.
var productTable = table.New(
	table.Column[entity.Product]{Key: "id", Value: func(p entity.Product) string { return p.ID },
		Less: func(a, b entity.Product) bool { return numericID(a.ID) < numericID(b.ID) }},
	table.Column[entity.Product]{Key: "name", Value: func(p entity.Product) string { return p.Name }},
	table.Column[entity.Product]{Key: "barcode", Value: func(p entity.Product) string { return p.Barcode }},
	table.Column[entity.Product]{Key: "category", Value: func(p entity.Product) string { return string(p.Category) }},
	table.Column[entity.Product]{Key: "status", Value: func(p entity.Product) string { return string(p.Status) }},
	table.Column[entity.Product]{Key: "unitOfMeasure", Value: func(p entity.Product) string { return string(p.UnitOfMeasure) }},
	table.Column[entity.Product]{Key: "price", Value: func(p entity.Product) string { return p.Price.String() },
		Less: func(a, b entity.Product) bool { return a.Price.LessThan(b.Price) }},
	table.Column[entity.Product]{Key: "costPrice", Value: func(p entity.Product) string { return p.CostPrice.String() },
		Less: func(a, b entity.Product) bool { return a.CostPrice.LessThan(b.CostPrice) }},
	table.Column[entity.Product]{Key: "stock", Value: func(p entity.Product) string { return strconv.Itoa(p.Stock) },
		Less: func(a, b entity.Product) bool { return a.Stock < b.Stock }},
	table.Column[entity.Product]{Key: "createdAt", Value: func(p entity.Product) string { return p.CreatedAt.Format("2006-01-02") },
		Less: func(a, b entity.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }},
)

func numericID(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return -1
	}
	return n
}

// ProductHandler maneja las peticiones HTTP del catálogo (protegido).
type ProductHandler struct {
	uc *catalog.CatalogUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// scoped productos de la categoría pedida (?category=) o todo el catálogo.
func (h *ProductHandler) scoped(c *fiber.Ctx) []entity.Product {
	if cat := entity.Category(c.Query("category")); cat != "" {
		return h.uc.GetProductsByCategory(cat)
	}
	return h.uc.Products()
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category   query  string  false  "organicos | aromaticos | wellness"
// @Param        sort       query  string  false  "Columna de orden"
// @Param        dir        query  string  false  "asc | desc"
// @Param        page       query  int     false  "Página"     default(1)
// @Param        pageSize   query  int     false  "Tamaño"     default(10)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	p := productTable.Apply(h.scoped(c), tableQuery(c))
	return c.JSON(dto.ProductListResponse{
		Items:      p.Items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	})
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	input := in.ToInput()
	if err := catalog.ValidateProductInput(input); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AddProduct(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetProductByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Reemplaza los campos editables. Un stock distinto del actual se rechaza con VALIDATION.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	input := in.ToInput()
	if err := catalog.ValidateProductInput(input); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateProduct(c.Context(), c.Params("id"), in.ToUpdate())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Load godoc
// @Summary      Recargar catálogo inicial
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/products/load [post]
func (h *ProductHandler) Load(c *fiber.Ctx) error {
	if err := h.uc.LoadProducts(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.Products())
}

// Stats godoc
// @Summary      Estadísticas del catálogo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  catalog.ProductStats
// @Router       /api/products/stats [get]
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetProductStats())
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral"  default(10)
// @Success      200  {array}  entity.Product
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetLowStockProducts(c.QueryInt("threshold", catalog.DefaultLowStockThreshold)))
}

// Search godoc
// @Summary      Buscar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Texto a buscar"
// @Success      200  {array}  entity.Product
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return writeError(c, domain.Invalid("el parámetro q es requerido"))
	}
	return c.JSON(h.uc.SearchProducts(q))
}

// AddStock godoc
// @Summary      Entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockQuantityRequest  true  "Cantidad y motivo"
// @Success      200   {object}  entity.StockMovement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock/add [post]
func (h *ProductHandler) AddStock(c *fiber.Ctx) error {
	var in dto.StockQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddStock(c.Context(), c.Params("id"), in.Quantity, in.Change(GetUserID(c)))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReduceStock godoc
// @Summary      Salida de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockQuantityRequest  true  "Cantidad y motivo"
// @Success      200   {object}  entity.StockMovement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock/reduce [post]
func (h *ProductHandler) ReduceStock(c *fiber.Ctx) error {
	var in dto.StockQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ReduceStock(c.Context(), c.Params("id"), in.Quantity, in.Change(GetUserID(c)))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetStock godoc
// @Summary      Fijar stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SetStockRequest  true  "Nuevo stock y motivo"
// @Success      200   {object}  entity.StockMovement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock/set [post]
func (h *ProductHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStock(c.Context(), c.Params("id"), in.NewStock,
		catalog.StockChange{Reason: in.Reason, UserID: GetUserID(c)})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste manual de inventario
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustmentRequest  true  "Cantidad nueva, motivo y notas"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/adjustments [post]
func (h *ProductHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	adj, mov, err := h.uc.ApplyAdjustment(c.Context(), catalog.AdjustmentInput{
		ProductID:   c.Params("id"),
		NewQuantity: in.NewQuantity,
		Reason:      in.Reason,
		Notes:       in.Notes,
		UserID:      GetUserID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AdjustmentResponse{Adjustment: adj, Movement: mov})
}
