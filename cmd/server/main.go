package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/realmkeep/internal/config"
	"github.com/forgo/realmkeep/internal/database"
	"github.com/forgo/realmkeep/internal/handler"
	"github.com/forgo/realmkeep/internal/middleware"
	"github.com/forgo/realmkeep/internal/model"
	"github.com/forgo/realmkeep/internal/repository"
	"github.com/forgo/realmkeep/internal/service"
	"github.com/forgo/realmkeep/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize token verifier for the external identity provider
	verifier, err := jwt.NewVerifier(jwt.Config{
		Secret:   cfg.Auth.Secret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
	})
	if err != nil {
		slog.Error("failed to initialize token verifier", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize collections
	worldCollection := repository.NewCollection[model.World](db, "worlds")
	characterCollection := repository.NewCollection[model.Character](db, "characters")
	itemCollection := repository.NewCollection[model.Item](db, "items")
	locationCollection := repository.NewCollection[model.Location](db, "locations")
	campaignCollection := repository.NewCollection[model.Campaign](db, "campaigns")

	// Initialize services
	worlds := service.NewResource[model.World](worldCollection)
	characters := service.NewResource[model.Character](characterCollection)
	items := service.NewResource[model.Item](itemCollection)
	locations := service.NewResource[model.Location](locationCollection)
	campaigns := service.NewResource[model.Campaign](campaignCollection)

	worldService := service.NewWorldService(service.WorldServiceConfig{
		Worlds: worlds,
		Items:  items,
	})

	campaignService := service.NewCampaignService(service.CampaignServiceConfig{
		Campaigns: campaigns,
	})

	generationService := service.NewGenerationService(service.GenerationConfig{
		APIKey:  cfg.Generation.APIKey,
		BaseURL: cfg.Generation.BaseURL,
		Model:   cfg.Generation.Model,
	})

	// Initialize handlers
	worldResource := handler.NewResourceHandler[model.World, model.WorldPatch]("world", "/v1/worlds", worlds)
	characterResource := handler.NewResourceHandler[model.Character, model.CharacterPatch]("character", "/v1/characters", characters)
	itemResource := handler.NewResourceHandler[model.Item, model.ItemPatch]("item", "/v1/items", items)
	locationResource := handler.NewResourceHandler[model.Location, model.LocationPatch]("location", "/v1/locations", locations)
	campaignResource := handler.NewResourceHandler[model.Campaign, model.CampaignPatch]("campaign", "/v1/campaigns", campaigns)

	worldHandler := handler.NewWorldHandler(worldService)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	generationHandler := handler.NewGenerationHandler(generationService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint (public)
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Entity CRUD endpoints
	authn := middleware.Auth(verifier)
	worldResource.Register(mux, authn)
	characterResource.Register(mux, authn)
	itemResource.Register(mux, authn)
	locationResource.Register(mux, authn)
	campaignResource.Register(mux, authn)

	// World item attachment
	mux.Handle("PUT /v1/worlds/{worldId}/items/{itemId}", authn(http.HandlerFunc(worldHandler.AttachItem)))

	// Campaign event log
	mux.Handle("POST /v1/campaigns/{campaignId}/events", authn(http.HandlerFunc(campaignHandler.AppendEvent)))

	// Text generation
	mux.Handle("POST /v1/generate", authn(http.HandlerFunc(generationHandler.Generate)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Timeout(cfg.Server.RequestTimeout),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
