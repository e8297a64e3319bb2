package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
	"github.com/yaaasyaaa/platina-granat/internal/services"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) List(c *fiber.Ctx) error {
	items, err := h.Cart.List()
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in domain.CartItemCreate
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid json body")
	}
	if in.ProductID <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "product_id is required")
	}

	item, err := h.Cart.Add(in.ProductID, in.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return jsonError(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "Cart item not found")
	}
	if err := h.Cart.Remove(int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "Cart item not found")
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
