package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	ImgDir    string
	StaticDir string
	LogFile   string
	// IndexPaths is searched in order for the storefront page.
	IndexPaths []string
}

func Load() Config {
	// .env is optional; real environment always wins.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "platinum.db" // sqlite file in project root
	}
	imgDir := os.Getenv("IMG_DIR")
	if imgDir == "" {
		imgDir = "./static/imgs"
	}
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./static"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{
		Port:      port,
		DBDSN:     dsn,
		ImgDir:    imgDir,
		StaticDir: staticDir,
		LogFile:   logFile,
		IndexPaths: []string{
			"./web/index.html",
			"./index.html",
			"./frontend/index.html",
		},
	}
	log.Printf("[config] PORT=%s DB_DSN=%s IMG_DIR=%s STATIC_DIR=%s", cfg.Port, cfg.DBDSN, cfg.ImgDir, cfg.StaticDir)
	return cfg
}
