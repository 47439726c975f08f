package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"latitude/internal/assets"
	"latitude/internal/auth"
	"latitude/internal/config"
	"latitude/internal/handler"
	"latitude/internal/middleware"
	"latitude/internal/repository/postgres"
	"latitude/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create token service
	tokenService, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	albumRepo := postgres.NewAlbumRepository(repoConfig)
	photoRepo := postgres.NewPhotoRepository(repoConfig)

	// Create asset store
	formats, err := assets.NewFormatRegistry()
	if err != nil {
		log.Fatalf("Failed to load asset format registry: %v", err)
	}
	assetStore, err := assets.NewFilesystemStore(cfg.AssetDir, cfg.AssetBaseURL, formats, logger)
	if err != nil {
		log.Fatalf("Failed to create asset store: %v", err)
	}

	// Create services
	authService := service.NewAuthService(userRepo, tokenService, logger)
	albumService := service.NewAlbumService(albumRepo, photoRepo, assetStore, logger)
	photoService := service.NewPhotoService(photoRepo, albumRepo, assetStore, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	albumHandler := handler.NewAlbumHandler(albumService, logger)
	photoHandler := handler.NewPhotoHandler(photoService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Album routes
	mux.HandleFunc("GET /api/albums", albumHandler.ListAlbums)
	mux.HandleFunc("POST /api/albums", albumHandler.CreateAlbum)
	mux.HandleFunc("GET /api/albums/{id}", albumHandler.GetAlbum)
	mux.HandleFunc("PATCH /api/albums/{id}", albumHandler.UpdateAlbum)
	mux.HandleFunc("DELETE /api/albums/{id}", albumHandler.DeleteAlbum)

	// Photo routes
	mux.HandleFunc("GET /api/photos", photoHandler.ListPhotos)
	mux.HandleFunc("POST /api/photos", photoHandler.CreatePhoto)
	mux.HandleFunc("DELETE /api/photos/{id}", photoHandler.DeletePhoto)

	// Stored photo assets
	assetPrefix := strings.TrimRight(cfg.AssetBaseURL, "/") + "/"
	mux.Handle("GET "+assetPrefix, http.StripPrefix(assetPrefix, assetStore.Handler()))

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS -> Recovery -> Identity -> Routes
	root = middleware.Identity(tokenService, userRepo, logger)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
