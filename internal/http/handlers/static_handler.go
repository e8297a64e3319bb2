package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	applog "github.com/yaaasyaaa/platina-granat/internal/log"
	"github.com/yaaasyaaa/platina-granat/internal/validate"
)

type StaticHandler struct {
	ImgDir     string
	IndexPaths []string
}

// Index serves the storefront page from the first candidate path that
// exists; a missing page is a friendly message, not an error.
func (h *StaticHandler) Index(c *fiber.Ctx) error {
	for _, p := range h.IndexPaths {
		if _, err := os.Stat(p); err == nil {
			return c.SendFile(p)
		}
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<h1>index.html not found</h1>")
}

// Image serves an uploaded image by filename, falling back to the
// default placeholder.
func (h *StaticHandler) Image(c *fiber.Ctx) error {
	name := c.Params("filename")
	if !validate.Filename(name) {
		applog.Security(c, "imgs.traversal.block", map[string]any{"path": name})
		return c.SendStatus(fiber.StatusNotFound)
	}

	full := filepath.Join(h.ImgDir, name)
	if _, err := os.Stat(full); err == nil {
		return c.SendFile(full)
	}
	placeholder := filepath.Join(h.ImgDir, "default.png")
	if _, err := os.Stat(placeholder); err == nil {
		return c.SendFile(placeholder)
	}
	return jsonError(c, fiber.StatusNotFound, "Image not found")
}
