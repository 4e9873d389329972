package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"prodtrack/internal/config"
	"prodtrack/internal/database"
	"prodtrack/internal/httpserver"
	"prodtrack/internal/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	if cfg.DatabaseURL == "" {
		lg.Fatalw("DATABASE_URL is empty")
	}
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	database.SeedAdmin(db, lg)

	router := httpserver.NewRouter(db, lg)
	lg.Infow("listening", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatal(err)
	}
}
