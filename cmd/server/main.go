package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/application/services"
	"github.com/ldanie38/geniuscrm/internal/config"
	"github.com/ldanie38/geniuscrm/internal/infrastructure/database"
	"github.com/ldanie38/geniuscrm/internal/interfaces/middleware"
	"github.com/ldanie38/geniuscrm/internal/interfaces/rest"
	"github.com/ldanie38/geniuscrm/pkg/logging"
	"github.com/ldanie38/geniuscrm/pkg/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Dir:   cfg.LogDir,
		Env:   cfg.Env,
		Level: cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = closeLog() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		cancel()
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Database connection established", zap.String("host", cfg.DBHost), zap.String("database", cfg.DBName))

	// Schema statements are idempotent and run on every start
	if err := database.Migrate(ctx, db.DB()); err != nil {
		cancel()
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}
	cancel()

	if err := validator.RegisterWithGin(); err != nil {
		logger.Fatal("Failed to register validators", zap.Error(err))
	}

	svcMgr := services.NewServiceManager(db, cfg, logger)

	router := rest.NewRouter(rest.ServicesFrom(svcMgr), rest.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Links:          rest.LinkBase{PublicURL: cfg.PublicBaseURL, AllowedHosts: cfg.AllowedHosts},
		Metrics:        middleware.NewMetrics(prometheus.DefaultRegisterer),
		MetricsHandler: promhttp.Handler(),
		DB:             db,
		EnablePprof:    cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           rest.StripTrailingSlash(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Genius CRM backend started",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
