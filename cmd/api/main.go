package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/pharmacy_api/internal/cache"
	"github.com/GTDGit/pharmacy_api/internal/config"
	"github.com/GTDGit/pharmacy_api/internal/database"
	"github.com/GTDGit/pharmacy_api/internal/handler"
	"github.com/GTDGit/pharmacy_api/internal/metrics"
	"github.com/GTDGit/pharmacy_api/internal/middleware"
	"github.com/GTDGit/pharmacy_api/internal/repository"
	"github.com/GTDGit/pharmacy_api/internal/service"
)

// main is the application entrypoint for the pharmacy API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting pharmacy api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4. Entity cache: Redis when configured, in-process otherwise
	entityCache, err := newEntityCache(cfg)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer entityCache.Close()

	// 5. Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)

	// 6. Initialize services
	clientSvc := service.NewClientService(clientRepo, entityCache, cfg.Cache.TTL)
	medicationSvc := service.NewMedicationService(medicationRepo, entityCache, cfg.Cache.TTL)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:     handler.NewHealthHandler(db, handler.PingerFunc(entityCache.Ping)),
		Client:     handler.NewClientHandler(clientSvc),
		Medication: handler.NewMedicationHandler(medicationSvc),
	}

	// 8. Context for graceful shutdown of background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	m := metrics.New()
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	router.Use(middleware.LoggingMiddleware())
	router.Use(m.Middleware())
	if cfg.RateLimit.RPS > 0 {
		router.Use(middleware.NewIPRateLimiter(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst).Handle())
	}
	setupRoutes(router, handlers, m)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	cancel()

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health     *handler.HealthHandler
	Client     *handler.ClientHandler
	Medication *handler.MedicationHandler
}

// setupRoutes registers all routes. Each resource answers on its plural
// path and on the singular aliases older clients use.
func setupRoutes(router *gin.Engine, handlers *Handlers, m *metrics.Metrics) {
	router.GET("/health", handlers.Health.GetHealth)
	router.GET("/metrics", m.Handler())

	for _, base := range []string{"/clients", "/client", "/cliente"} {
		router.GET(base, handlers.Client.ListClients)
		router.GET(base+"/:id", handlers.Client.GetClient)
		router.POST(base, handlers.Client.CreateClient)
	}

	for _, base := range []string{"/medications", "/medication", "/medicamento"} {
		router.GET(base, handlers.Medication.ListMedications)
		router.GET(base+"/:id", handlers.Medication.GetMedication)
		router.POST(base, handlers.Medication.CreateMedication)
	}
}

// newEntityCache picks the fetch-by-id cache backend.
func newEntityCache(cfg *config.Config) (cache.EntityCache, error) {
	if !cfg.Redis.Enabled() {
		log.Info().Msg("REDIS_HOST not set, using in-process cache")
		return cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL), nil
	}

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("redis connected successfully")
	return redisClient, nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
