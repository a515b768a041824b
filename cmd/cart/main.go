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

	"github.com/stylecart/backend/internal/cart/httpserver"
	"github.com/stylecart/backend/internal/cart/models"
	"github.com/stylecart/backend/internal/cart/repo"
	"github.com/stylecart/backend/internal/cart/service"
	"github.com/stylecart/backend/pkg/catalogclient"
	"github.com/stylecart/backend/pkg/config"
	"github.com/stylecart/backend/pkg/db"
	"github.com/stylecart/backend/pkg/logging"
	loggingmw "github.com/stylecart/backend/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.CatalogURL, "CATALOG_URL")

	logger := logging.New(cfg.LogLevel).With("service", "cart")

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DatabaseURL, config.EnvDefault("SQLITE_PATH", "data/cart.db"))
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if err := database.AutoMigrate(&models.CartItem{}); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	cartService := &service.CartService{
		Repo:    &repo.GormRepo{DB: database},
		Catalog: catalogclient.NewClient(cfg.CatalogURL),
	}

	cartHandler := &httpserver.CartHTTP{Svc: cartService}

	httpserver.Register(e, &httpserver.Deps{CartHandler: cartHandler})

	port := strconv.Itoa(cfg.ServerPort)

	go func() {
		log.Printf("Starting cart service on port %s...", port)
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
