package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"latitude/internal/assets"
	"latitude/internal/auth"
	"latitude/internal/config"
	"latitude/internal/domain"
	"latitude/internal/domain/models"
	"latitude/internal/domain/repositories"
	"latitude/internal/domain/services"
	"latitude/internal/repository/postgres"
	"latitude/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// tinyGIF is a valid 1x1 transparent GIF used as the asset payload for
// seeded photos. It sniffs as image/gif, so it flows through the same
// format validation real uploads do.
var tinyGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: Cannot run --drop-tables in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	// Run schema to ensure tables exist
	log.Println("Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	// Build the real service stack so seeded data flows through the same
	// validation and ownership rules as live requests.
	tokenService, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	formats, err := assets.NewFormatRegistry()
	if err != nil {
		log.Fatalf("Failed to load asset format registry: %v", err)
	}
	assetStore, err := assets.NewFilesystemStore(cfg.AssetDir, cfg.AssetBaseURL, formats, logger)
	if err != nil {
		log.Fatalf("Failed to create asset store: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	albumRepo := postgres.NewAlbumRepository(repoConfig)
	photoRepo := postgres.NewPhotoRepository(repoConfig)

	authService := service.NewAuthService(userRepo, tokenService, logger)
	albumService := service.NewAlbumService(albumRepo, photoRepo, assetStore, logger)
	photoService := service.NewPhotoService(photoRepo, albumRepo, assetStore, logger)

	log.Println("Seeding demo users, albums and photos...")

	amelia := ensureUser(ctx, authService, userRepo, "amelia@example.com", "wanderlust")
	theo := ensureUser(ctx, authService, userRepo, "theo@example.com", "overlander")

	seedAlbums := []struct {
		owner    *models.User
		name     string
		isPublic bool
		photos   []struct {
			name     string
			isPublic bool
		}
	}{
		{amelia, "South America", true, []struct {
			name     string
			isPublic bool
		}{{"Machu Picchu at dawn", true}, {"Atacama salt flats", false}}},
		{amelia, "Antarctica drafts", false, []struct {
			name     string
			isPublic bool
		}{{"Iceberg alley", true}}},
		{theo, "Southeast Asia", true, []struct {
			name     string
			isPublic bool
		}{{"Ha Long Bay", true}}},
	}

	for _, seed := range seedAlbums {
		album, err := albumService.Create(ctx, seed.owner, &services.CreateAlbumRequest{
			Name:     seed.name,
			IsPublic: seed.isPublic,
		})
		if err != nil {
			log.Printf("Failed to create album %q: %v", seed.name, err)
			continue
		}

		for _, p := range seed.photos {
			_, err := photoService.Create(ctx, seed.owner, &services.CreatePhotoRequest{
				Name:     p.name,
				AlbumID:  album.ID,
				IsPublic: p.isPublic,
				Photo:    tinyGIF,
			})
			if err != nil {
				log.Printf("Failed to create photo %q: %v", p.name, err)
			}
		}

		log.Printf("Created album %q (public=%t, photos=%d)", seed.name, seed.isPublic, len(seed.photos))
	}

	log.Println("Seeding complete")
}

// ensureUser registers a demo account, reusing it when it already exists.
func ensureUser(ctx context.Context, authService services.AuthService, users repositories.UserRepository, email, password string) *models.User {
	resp, err := authService.Register(ctx, &services.RegisterRequest{Email: email, Password: password})
	if err == nil {
		return resp.User
	}
	if errors.Is(err, domain.ErrConflict) {
		existing, getErr := users.GetByEmail(ctx, email)
		if getErr == nil {
			return existing
		}
	}
	log.Fatalf("Failed to ensure user %s: %v", email, err)
	return nil
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Enable UUID extension
	_, err := pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")
	if err != nil {
		return err
	}

	// Create users table
	createUsers := `
		CREATE TABLE IF NOT EXISTS ` + tables.Users + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createUsers); err != nil {
		return err
	}

	// Create albums table
	createAlbums := `
		CREATE TABLE IF NOT EXISTS ` + tables.Albums + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES ` + tables.Users + `(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			is_public BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createAlbums); err != nil {
		return err
	}

	// Create photos table
	createPhotos := `
		CREATE TABLE IF NOT EXISTS ` + tables.Photos + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			album_id UUID NOT NULL REFERENCES ` + tables.Albums + `(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			is_public BOOLEAN NOT NULL DEFAULT FALSE,
			asset_key TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createPhotos); err != nil {
		return err
	}

	// Create indexes
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `albums_user_id ON ` + tables.Albums + `(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `photos_album_id ON ` + tables.Photos + `(album_id)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops the three tables in dependency order
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	drops := []string{
		`DROP TABLE IF EXISTS ` + tables.Photos + ` CASCADE`,
		`DROP TABLE IF EXISTS ` + tables.Albums + ` CASCADE`,
		`DROP TABLE IF EXISTS ` + tables.Users + ` CASCADE`,
	}

	for _, dropSQL := range drops {
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
	}

	return nil
}
