package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valueguard/cmd"
	httpadapter "valueguard/internal/adapters/in/http"
	"valueguard/internal/adapters/out/postgres/holderrepo"
	"valueguard/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	if err = configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db := openDatabase(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPAddress())

	registry := app.CleanupRegistry()
	log.Infof("Shutdown complete: %d holders registered, %d released", registry.Registered(), registry.Released())
}

func openDatabase(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err = db.AutoMigrate(&holderrepo.HolderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app cmd.CompositionRoot, address string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if err := httpadapter.RegisterDocs(e); err != nil {
		log.Fatalf("Failed to load API document: %v", err)
	}
	servers.RegisterHandlers(e, app.CreateServer())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
