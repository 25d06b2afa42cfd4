package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcharging "github.com/chargehub/backend/internal/application/charging"
	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/chargehub/backend/internal/infrastructure/cache"
	"github.com/chargehub/backend/internal/infrastructure/config"
	"github.com/chargehub/backend/internal/infrastructure/logger"
	"github.com/chargehub/backend/internal/infrastructure/persistence"
	"github.com/chargehub/backend/internal/interfaces/http/handler"
	"github.com/chargehub/backend/internal/interfaces/http/middleware"
	"github.com/chargehub/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

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

	log.Info("Starting ChargeHub Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
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
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	chargePointRepo := persistence.NewGormChargePointRepository(db.DB)
	sessionRepo := persistence.NewGormChargeSessionRepository(db.DB)
	txManager := persistence.NewGormTransactionManager(db)

	// Build the billing engine from the configured tariff
	costPerKwh, err := cfg.Billing.CostPerKwhDecimal()
	if err != nil {
		log.Fatal("Invalid billing configuration", zap.Error(err))
	}
	connectionFee, err := cfg.Billing.ConnectionFeeDecimal()
	if err != nil {
		log.Fatal("Invalid billing configuration", zap.Error(err))
	}
	tariff, err := charging.NewTariff(costPerKwh, connectionFee)
	if err != nil {
		log.Fatal("Invalid tariff", zap.Error(err))
	}
	billingEngine := charging.NewBillingEngine(tariff)
	log.Info("Billing engine initialized",
		zap.String("cost_per_kwh", costPerKwh.String()),
		zap.String("connection_fee", connectionFee.String()),
	)

	// Optional Redis-backed active session index
	var sessionIndex appcharging.ActiveSessionIndex
	if cfg.Redis.Enabled {
		index, err := cache.NewRedisActiveSessionIndex(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := index.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		sessionIndex = index
		log.Info("Active session index enabled", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize application services
	sessionService := appcharging.NewChargeSessionService(
		sessionRepo, vehicleRepo, chargePointRepo, billingEngine, txManager, sessionIndex, log,
	)
	vehicleService := appcharging.NewVehicleService(vehicleRepo)
	chargePointService := appcharging.NewChargePointService(chargePointRepo)

	// Initialize HTTP handlers
	sessionHandler := handler.NewChargeSessionHandler(sessionService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	chargePointHandler := handler.NewChargePointHandler(chargePointService)
	systemHandler := handler.NewSystemHandler(version, db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.ChargeSessionRoutes(sessionHandler)).
		Register(handler.VehicleRoutes(vehicleHandler)).
		Register(handler.ChargePointRoutes(chargePointHandler)).
		Register(handler.SystemRoutes(systemHandler))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
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
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
