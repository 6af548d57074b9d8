package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	orderingapp "github.com/pos/backend/internal/application/ordering"
	printingapp "github.com/pos/backend/internal/application/printing"
	"github.com/pos/backend/internal/domain/printing"
	"github.com/pos/backend/internal/domain/shared/valueobject"
	"github.com/pos/backend/internal/infrastructure/cache"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/persistence"
	infraprinting "github.com/pos/backend/internal/infrastructure/printing"
	"github.com/pos/backend/internal/interfaces/http/handler"
	"github.com/pos/backend/internal/interfaces/http/middleware"
	"github.com/pos/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting POS backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	menuRepo := persistence.NewGormMenuItemRepository(db.DB)
	recordRepo := persistence.NewGormDeliveryRecordRepository(db.DB)

	// Print guard serializes print runs per billing location. Redis-backed
	// when reachable so every terminal shares one lock; a terminal running
	// standalone falls back to the in-process guard.
	var guard printing.PrintGuard
	redisGuard, err := cache.NewRedisPrintGuard(cache.RedisGuardConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory print guard", zap.Error(err))
		memGuard := cache.NewInMemoryPrintGuard()
		defer memGuard.Close()
		guard = memGuard
	} else {
		log.Info("Redis print guard connected", zap.String("addr", cfg.Redis.Addr()))
		defer func() {
			if err := redisGuard.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		guard = redisGuard
	}

	// Document renderer with the operator's abbreviation dictionary
	abbreviator := printing.NewAbbreviator(cfg.Printing.Abbreviations)
	renderer, err := printing.NewRenderer(printing.WidthProfile(cfg.Printing.WidthProfile), abbreviator)
	if err != nil {
		log.Fatal("Failed to create renderer", zap.Error(err))
	}

	// Delivery escalation chain: silent spooler, visible browser, embedded
	// ESC/POS. Order matters; the pipeline walks it front to back.
	spooler := infraprinting.NewSpoolerChannel(infraprinting.SpoolerConfig{
		TicketPrinter: cfg.Printing.TicketPrinter,
		BillPrinter:   cfg.Printing.BillPrinter,
		Command:       cfg.Printing.SpoolCommand,
		Timeout:       cfg.Printing.SilentTimeout,
		Logger:        log,
	}, nil)
	browser := infraprinting.NewChromedpChannel(infraprinting.ChromedpConfig{
		RemoteURL:   cfg.Printing.ChromeRemoteURL,
		Headless:    cfg.Printing.ChromeHeadless,
		NoSandbox:   cfg.Printing.ChromeNoSandbox,
		SettleDelay: cfg.Printing.VisibleSettle,
		Timeout:     cfg.Printing.VisibleTimeout,
		Logger:      log,
	}, spooler)
	defer func() {
		if err := browser.Close(); err != nil {
			log.Error("Error closing browser channel", zap.Error(err))
		}
	}()
	embedded := infraprinting.NewEmbeddedChannel(infraprinting.EmbeddedConfig{
		TicketDevice: cfg.Printing.TicketDevice,
		BillDevice:   cfg.Printing.BillDevice,
		SpoolDir:     cfg.Printing.SpoolDir,
		Timeout:      cfg.Printing.EmbeddedTimeout,
		Logger:       log,
	}, nil)

	pipeline, err := infraprinting.NewPipeline([]infraprinting.Channel{spooler, browser, embedded}, log)
	if err != nil {
		log.Fatal("Failed to create delivery pipeline", zap.Error(err))
	}

	// Application services
	feePercent := decimal.NewFromFloat(cfg.Ordering.ServiceFeePercent)
	parcelTiers := make(map[string]valueobject.Money, len(cfg.Ordering.ParcelTiers))
	for label, charge := range cfg.Ordering.ParcelTiers {
		parcelTiers[label] = valueobject.NewMoneyFromFloat(charge)
	}
	orderService := orderingapp.NewOrderService(orderRepo, menuRepo, feePercent, parcelTiers, log)

	orchestrator := printingapp.NewPrintOrchestrator(
		orderRepo, menuRepo, recordRepo, pipeline, renderer, guard,
		printingapp.PrintOrchestratorConfig{
			Profile: printing.RestaurantProfile{
				Name:         cfg.Restaurant.Name,
				AddressLines: cfg.Restaurant.AddressLines,
				Phone:        cfg.Restaurant.Phone,
				GSTIN:        cfg.Restaurant.GSTIN,
				FSSAI:        cfg.Restaurant.FSSAI,
				Closing:      cfg.Restaurant.Closing,
			},
			ServiceFeePercent: feePercent,
			BillPrefix:        cfg.Printing.BillPrefix,
		},
		log,
	)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewPrintHandler(orchestrator)).
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

	// Graceful shutdown
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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		payload := gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}
		if stats, err := db.Stats(); err == nil {
			payload["pool"] = stats
		}
		c.JSON(http.StatusOK, payload)
	}
}
