package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "github.com/yaaasyaaa/platina-granat/internal/log"
	"github.com/yaaasyaaa/platina-granat/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Catalog.ListProducts()
	if err != nil {
		return err
	}
	return c.JSON(ps)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return jsonError(c, fiber.StatusBadRequest, "name is required")
	}
	price, err := strconv.ParseInt(strings.TrimSpace(c.FormValue("price")), 10, 64)
	if err != nil || price < 0 {
		return jsonError(c, fiber.StatusBadRequest, "price must be a non-negative integer")
	}
	image, err := c.FormFile("image")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "image file is required")
	}

	p, err := h.Catalog.CreateProduct(name, price, c.FormValue("description"), image)
	if errors.Is(err, services.ErrImageType) || errors.Is(err, services.ErrImageExt) {
		applog.Security(c, "validation.fail", map[string]any{"field": "image", "name": image.Filename})
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}
