package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medicare-app/backend/internal/adapters/cache"
	"github.com/medicare-app/backend/internal/adapters/database"
	"github.com/medicare-app/backend/internal/adapters/enrichment"
	"github.com/medicare-app/backend/internal/adapters/mail"
	"github.com/medicare-app/backend/internal/adapters/model"
	"github.com/medicare-app/backend/internal/adapters/search"
	"github.com/medicare-app/backend/internal/api/handlers"
	"github.com/medicare-app/backend/internal/api/middleware"
	"github.com/medicare-app/backend/internal/api/routes"
	"github.com/medicare-app/backend/internal/application/services"
	"github.com/medicare-app/backend/internal/catalog"
	"github.com/medicare-app/backend/internal/domain/providers"
	"github.com/medicare-app/backend/internal/infrastructure/clients/postgres"
	"github.com/medicare-app/backend/internal/infrastructure/clients/redis"
	"github.com/medicare-app/backend/internal/infrastructure/clients/typesense"
	"github.com/medicare-app/backend/internal/infrastructure/observability"
	"github.com/medicare-app/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// The model artifact and the catalog built on its schema are hard
	// prerequisites: without them every prediction would fail.
	classifier, err := model.LoadBundle(cfg.Model.ArtifactPath)
	if err != nil {
		log.Fatalf("Failed to load model artifact from %s: %v", cfg.Model.ArtifactPath, err)
	}
	log.Printf("Model artifact loaded: %d features, %d classes", len(classifier.Schema()), len(classifier.Classes()))

	symptomCatalog, err := catalog.New(classifier.Schema(), catalog.DefaultGroups(), catalog.DefaultOverrides())
	if err != nil {
		log.Fatalf("Failed to build symptom catalog: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - sessions fall back to process memory
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
	} else {
		log.Println("Typesense client initialized successfully")
	}

	// Initialize adapters
	historyAdapter := database.NewHistoryAdapter(pgClient)
	userAdapter := database.NewUserAdapter(pgClient)
	feedbackAdapter := database.NewFeedbackAdapter(pgClient)

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	} else {
		cacheProvider = cache.NewMemoryAdapter()
		log.Println("Warning: using in-memory cache; sessions will not survive restarts")
	}

	var searchProvider providers.SymptomSearchProvider
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		if err := adapter.InitSchema(ctx); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		} else if err := adapter.IndexCatalog(ctx, symptomCatalog.Symptoms()); err != nil {
			log.Printf("Warning: Failed to index symptom catalog: %v", err)
		} else {
			searchProvider = adapter
			log.Println("Symptom search index ready")
		}
	}

	var summaryProvider providers.SummaryProvider
	if cfg.Enrichment.Enabled {
		summaryProvider = enrichment.NewWikipediaAdapter(&cfg.Enrichment, cacheProvider)
	} else {
		log.Println("Encyclopedia enrichment disabled")
	}

	mailSender := mail.NewLogSender()

	// Initialize services
	enrichTimeout := time.Duration(cfg.Enrichment.TimeoutMS) * time.Millisecond
	predictionService := services.NewPredictionService(
		symptomCatalog,
		classifier,
		summaryProvider,
		historyAdapter,
		metrics,
		enrichTimeout,
	)

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	authService := services.NewAuthService(userAdapter, cacheProvider, mailSender, sessionTTL)

	feedbackService := services.NewFeedbackService(feedbackAdapter)
	symptomService := services.NewSymptomService(symptomCatalog, searchProvider)

	// Initialize handlers
	symptomHandler := handlers.NewSymptomHandler(symptomService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	authHandler := handlers.NewAuthHandler(authService, &cfg.Session, cfg.Server.Env == "production")
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, cacheProvider)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if redisClient != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		log.Println("Cache middleware initialized successfully")
	}

	sessionMiddleware := middleware.SessionMiddleware(authService, cfg.Session.CookieName)

	// Set up router
	router := routes.NewRouter(
		symptomHandler,
		predictionHandler,
		authHandler,
		feedbackHandler,
		cacheMiddleware,
		sessionMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
