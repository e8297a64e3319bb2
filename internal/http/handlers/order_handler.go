package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
	applog "github.com/yaaasyaaa/platina-granat/internal/log"
	"github.com/yaaasyaaa/platina-granat/internal/services"
)

type OrderHandler struct {
	Order *services.OrderService
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Order.List()
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in domain.OrderCreate
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid json body")
	}

	o, err := h.Order.Place(in)
	if errors.Is(err, services.ErrInvalidDate) {
		applog.Security(c, "validation.fail", map[string]any{"field": "delivery_date"})
		return jsonError(c, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": o.ID, "total_price": o.TotalPrice, "items": len(o.Items)})
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "Order not found")
	}

	// Unknown keys are an error, not ignored.
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	var u domain.OrderUpdate
	if err := dec.Decode(&u); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "unrecognized or malformed update payload")
	}

	o, err := h.Order.Update(int64(id), u)
	if errors.Is(err, services.ErrInvalidDate) {
		return jsonError(c, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}
	if errors.Is(err, sql.ErrNoRows) {
		return jsonError(c, fiber.StatusNotFound, "Order not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(o)
}

func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "Order not found")
	}
	if err := h.Order.Cancel(int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "Order not found")
		}
		return err
	}
	applog.Audit(c, "order.cancel", map[string]any{"order_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
