package main

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/yaaasyaaa/platina-granat/internal/config"
	"github.com/yaaasyaaa/platina-granat/internal/http/handlers"
	applog "github.com/yaaasyaaa/platina-granat/internal/log"
	"github.com/yaaasyaaa/platina-granat/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(cfg.ImgDir, 0o755); err != nil {
		log.Fatal(err)
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
	// Room for image uploads
	app.Server().MaxRequestBodySize = 8 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	// The storefront page may be served from any origin
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))

	deps := handlers.NewDeps(db, cfg)

	// ---------- Pages & static assets ----------
	app.Get("/", deps.StaticHandler.Index)
	app.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	// Image route first: it owns the placeholder fallback
	app.Get("/static/imgs/:filename", deps.StaticHandler.Image)
	app.Static("/static", cfg.StaticDir)

	// ---------- API ----------
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

	log.Fatal(app.Listen(":" + cfg.Port))
}
