package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
	applog "github.com/yaaasyaaa/platina-granat/internal/log"
	"github.com/yaaasyaaa/platina-granat/internal/services"
)

type DeliveryHandler struct {
	Delivery *services.DeliveryService
}

func (h *DeliveryHandler) Get(c *fiber.Ctx) error {
	date, err := h.Delivery.Current()
	if errors.Is(err, sql.ErrNoRows) {
		return jsonError(c, fiber.StatusNotFound, "Delivery date not set")
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"delivery_date": date})
}

func (h *DeliveryHandler) Set(c *fiber.Ctx) error {
	var in domain.DeliveryDateUpdate
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid json body")
	}
	date, err := h.Delivery.Set(in.DeliveryDate)
	if errors.Is(err, services.ErrInvalidDate) {
		return jsonError(c, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "delivery.set", map[string]any{"delivery_date": date})
	return c.JSON(fiber.Map{"delivery_date": date})
}
