package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/rubybellylechon/admin-api/src/config"
	"github.com/rubybellylechon/admin-api/src/database"
	"github.com/rubybellylechon/admin-api/src/handlers"
	"github.com/rubybellylechon/admin-api/src/logging"
	"github.com/rubybellylechon/admin-api/src/middleware"
	"github.com/rubybellylechon/admin-api/src/router"
	"github.com/rubybellylechon/admin-api/src/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	opts := database.DefaultOptions()
	opts.MaxConns = int32(cfg.DBMaxConns)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL, opts)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Int("max_conns", cfg.DBMaxConns).Msg("database connected")

	// Initialize services
	adminService := services.NewAdminService(db.SQL())
	repos := handlers.Repositories{
		Admins:        adminService,
		Products:      services.NewProductService(db.SQL()),
		ProductPrices: services.NewProductPriceService(db.SQL()),
		Staff:         services.NewStaffService(db.SQL()),
		Customers:     services.NewCustomerService(db.SQL()),
		Orders:        services.NewOrderService(db.SQL()),
		Inventory:     services.NewInventoryService(db.SQL()),
	}

	// Auto-seed admin user on first run (if ADMIN_USERNAME, ADMIN_PASSWORD and ADMIN_PIN are set)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" && cfg.AdminPin != "" {
		seedAdmin(adminService, cfg)
	}

	sessions, err := middleware.NewSessionManager(cfg.JWTSecret, cfg.SessionTTL(), cfg.CookieSecure)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize sessions")
	}

	throttle := middleware.NewThrottle(cfg.AuthRateLimitPerMinute, 5)
	defer throttle.Stop()
	if throttle == nil {
		log.Warn().Msg("sign-in and PIN throttling disabled (AUTH_RATE_LIMIT_PER_MINUTE=0)")
	}

	// Create Gin router
	engine := gin.New()

	// Add middleware
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(gin.Recovery())
	engine.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	// Health check endpoints
	healthHandler := handlers.NewHealthHandler(db)
	engine.GET("/health", healthHandler.HandleHealth)
	engine.GET("/ready", healthHandler.HandleReady)

	// Every API request goes through the route table
	dispatcher := router.NewDispatcher(handlers.Routes(repos, sessions, throttle), sessions)
	engine.Any("/api/*path", dispatcher.Handle)
	engine.NoRoute(dispatcher.Handle)

	// Create HTTP server with timeouts (G112: protect from Slowloris attack)
	srv := &http.Server{
		Addr:              ":" + formatPort(cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func seedAdmin(admins *services.AdminService, cfg *config.Config) {
	logger := logging.NewLogger("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hasAdmins, err := admins.HasAdmins(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to check for existing admin users")
		return
	}
	if hasAdmins {
		return
	}

	if _, err := admins.CreateAdminUser(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPin); err != nil {
		logger.Error().Err(err).Msg("failed to create initial admin user")
		return
	}
	logger.Info().Str("username", cfg.AdminUsername).Msg("initial admin user created")
}

// corsConfig allows the browser admin UI to send the session cookie
func corsConfig(origins []string) cors.Config {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowed[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func formatPort(port int) string {
	return fmt.Sprintf("%d", port)
}
