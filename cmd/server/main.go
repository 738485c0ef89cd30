package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcosting "github.com/RizalSwikey/web-akuntansi/internal/application/costing"
	appreport "github.com/RizalSwikey/web-akuntansi/internal/application/report"
	"github.com/RizalSwikey/web-akuntansi/internal/infrastructure/config"
	"github.com/RizalSwikey/web-akuntansi/internal/infrastructure/logger"
	"github.com/RizalSwikey/web-akuntansi/internal/infrastructure/persistence"
	"github.com/RizalSwikey/web-akuntansi/internal/interfaces/http/handler"
	"github.com/RizalSwikey/web-akuntansi/internal/interfaces/http/middleware"
	"github.com/RizalSwikey/web-akuntansi/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting web-akuntansi",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	reportRepo := persistence.NewGormFinancialReportRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	revenueRepo := persistence.NewGormRevenueItemRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseItemRepository(db.DB)
	entryRepo := persistence.NewGormHppEntryRepository(db.DB)
	manufactureRepo := persistence.NewGormManufactureEntryRepository(db.DB)
	productionRepo := persistence.NewGormProductionRecordRepository(db.DB)

	// Application services
	reportService := appreport.NewReportService(reportRepo, productRepo, log)
	tradingService := appcosting.NewTradingCostService(reportRepo, productRepo, entryRepo, log)
	manufacturingService := appcosting.NewManufacturingCostService(reportRepo, productRepo, manufactureRepo, productionRepo, log)
	statementService := appreport.NewStatementService(reportRepo, revenueRepo, expenseRepo, tradingService, manufacturingService, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	handler.NewHealthHandler(db).Register(engine)

	router.NewRouter(engine).
		Register(handler.NewReportHandler(reportService)).
		Register(handler.NewCostingHandler(tradingService, manufacturingService)).
		Register(handler.NewStatementHandler(statementService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
