package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/stylecart/backend/internal/catalog/httpserver"
	"github.com/stylecart/backend/internal/catalog/models"
	"github.com/stylecart/backend/internal/catalog/repo"
	"github.com/stylecart/backend/internal/catalog/service"
	"github.com/stylecart/backend/pkg/config"
	"github.com/stylecart/backend/pkg/db"
	"github.com/stylecart/backend/pkg/logging"
	loggingmw "github.com/stylecart/backend/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With("service", "catalog")

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DatabaseURL, config.EnvDefault("SQLITE_PATH", "data/products.db"))
	if err != nil {
		cancel()
		log.Fatalf("db init error: %v", err)
	}

	if err := database.AutoMigrate(&models.Product{}); err != nil {
		cancel()
		log.Fatalf("db migrate error: %v", err)
	}

	catalogRepo := &repo.GormRepo{DB: database}
	if err := catalogRepo.SeedSampleData(initCtx); err != nil {
		cancel()
		log.Fatalf("seed error: %v", err)
	}
	cancel()

	catalogService := &service.CatalogService{Repo: catalogRepo}
	catalogHandler := &httpserver.CatalogHTTP{Svc: catalogService}

	httpserver.Register(e, &httpserver.Deps{CatalogHandler: catalogHandler})

	port := strconv.Itoa(cfg.ServerPort)

	go func() {
		log.Printf("Starting catalog service on port %s...", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	sqlDB, err := database.DB()
	if err == nil {
		sqlDB.Close()
	}

	log.Println("Server stopped")
}
