package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"github.com/yaaasyaaa/platina-granat/internal/config"
	"github.com/yaaasyaaa/platina-granat/internal/http/handlers"
	applog "github.com/yaaasyaaa/platina-granat/internal/log"
	"github.com/yaaasyaaa/platina-granat/internal/repos"
)

// newTestApp wires the real routes over a throwaway seeded DB.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB, config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{
		DBDSN:      filepath.Join(dir, "app.db"),
		ImgDir:     filepath.Join(dir, "imgs"),
		StaticDir:  filepath.Join(dir, "static"),
		IndexPaths: []string{filepath.Join(dir, "index.html")},
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := os.MkdirAll(cfg.ImgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		t.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		},
	})
	app.Server().MaxRequestBodySize = 8 << 20
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, cfg)

	app.Get("/", deps.StaticHandler.Index)
	app.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	app.Get("/static/imgs/:filename", deps.StaticHandler.Image)
	app.Static("/static", cfg.StaticDir)

	api := app.Group("/api")
	api.Get("/products", deps.ProductHandler.List)
	api.Post("/products", deps.ProductHandler.Create)
	api.Get("/cart", deps.CartHandler.List)
	api.Post("/cart", deps.CartHandler.Add)
	api.Delete("/cart/:id", deps.CartHandler.Remove)
	api.Get("/delivery", deps.DeliveryHandler.Get)
	api.Put("/delivery", deps.DeliveryHandler.Set)
	api.Get("/orders", deps.OrderHandler.List)
	api.Post("/orders", deps.OrderHandler.Create)
	api.Patch("/orders/:id", deps.OrderHandler.Update)
	api.Delete("/orders/:id", deps.OrderHandler.Cancel)

	return app, db, cfg
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func readJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
