package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mistica-api/internal/application/activity"
	"github.com/jhoicas/mistica-api/internal/application/dto"
	"github.com/jhoicas/mistica-api/internal/domain"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// ActivityHandler registro de actividades del panel.
type ActivityHandler struct {
	store *activity.Store
}

// NewActivityHandler construye el handler.
func NewActivityHandler(store *activity.Store) *ActivityHandler {
	return &ActivityHandler{store: store}
}

// List godoc
// @Summary      Actividades
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "ingreso | egreso | cambio_producto | cambio_precio | otro"
// @Success      200  {array}  entity.Activity
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	if t := c.Query("type"); t != "" {
		return c.JSON(h.store.ListByType(entity.ActivityType(t)))
	}
	return c.JSON(h.store.List())
}

// Recent godoc
// @Summary      Actividades recientes
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad"  default(10)
// @Success      200  {array}  entity.Activity
// @Router       /api/activities/recent [get]
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	return c.JSON(h.store.Recent(c.QueryInt("limit", activity.DefaultRecentLimit)))
}

// Create godoc
// @Summary      Registrar actividad
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActivityRequest  true  "Actividad"
// @Success      201  {object}  entity.Activity
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.ActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	a := in.ToActivity(GetUserID(c))
	if !a.Type.Valid() {
		return writeError(c, domain.Invalid("tipo de actividad inválido"))
	}
	if strings.TrimSpace(a.Description) == "" {
		return writeError(c, domain.Invalid("la descripción es requerida"))
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.AddActivity(a))
}

// Clear godoc
// @Summary      Borrar actividades
// @Tags         activities
// @Security     Bearer
// @Success      204
// @Router       /api/activities [delete]
func (h *ActivityHandler) Clear(c *fiber.Ctx) error {
	h.store.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
