package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"latitude/internal/domain"
	"latitude/internal/domain/access"
	"latitude/internal/domain/models"
	"latitude/internal/domain/repositories"
)

// PostgresPhotoRepository implements the PhotoRepository interface
type PostgresPhotoRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(config *RepositoryConfig) repositories.PhotoRepository {
	return &PostgresPhotoRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create persists a new photo
func (r *PostgresPhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (album_id, name, is_public, asset_key)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, r.tables.Photos)

	err := r.pool.QueryRow(ctx, query,
		photo.AlbumID,
		photo.Name,
		photo.IsPublic,
		photo.AssetKey,
	).Scan(&photo.ID, &photo.CreatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("album %s: %w", photo.AlbumID, domain.ErrNotFound)
		}
		return fmt.Errorf("create photo: %w", err)
	}

	return nil
}

// GetByID retrieves a photo by ID regardless of visibility
func (r *PostgresPhotoRepository) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	if !validID(id) {
		r.logger.Debug("malformed photo id treated as missing", "id", id)
		return nil, fmt.Errorf("photo %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		SELECT id, album_id, name, is_public, asset_key, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Photos)

	var photo models.Photo
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&photo.ID,
		&photo.AlbumID,
		&photo.Name,
		&photo.IsPublic,
		&photo.AssetKey,
		&photo.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("photo %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get photo: %w", err)
	}

	return &photo, nil
}

// List retrieves photos inside the visibility scope, newest first. The
// public side of the predicate is the two-level AND: the photo and its album
// must both be public. Owner visibility rides on the album's owner; photos
// have no owner column of their own.
func (r *PostgresPhotoRepository) List(ctx context.Context, scope access.Scope) ([]models.Photo, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.album_id, p.name, p.is_public, p.asset_key, p.created_at
		FROM %s p
		JOIN %s a ON a.id = p.album_id
		WHERE (p.is_public AND a.is_public) OR a.user_id = $1
		ORDER BY p.created_at DESC
	`, r.tables.Photos, r.tables.Albums)

	rows, err := r.pool.Query(ctx, query, scope.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

// ListByAlbum retrieves every photo of one album, newest first
func (r *PostgresPhotoRepository) ListByAlbum(ctx context.Context, albumID string) ([]models.Photo, error) {
	if !validID(albumID) {
		r.logger.Debug("malformed album id treated as missing", "id", albumID)
		return nil, fmt.Errorf("album %s: %w", albumID, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		SELECT id, album_id, name, is_public, asset_key, created_at
		FROM %s
		WHERE album_id = $1
		ORDER BY created_at DESC
	`, r.tables.Photos)

	rows, err := r.pool.Query(ctx, query, albumID)
	if err != nil {
		return nil, fmt.Errorf("list album photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

// Delete removes a photo
func (r *PostgresPhotoRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		r.logger.Debug("malformed photo id treated as missing", "id", id)
		return fmt.Errorf("photo %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Photos)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Concurrent deletes race benignly; the loser lands here.
		return fmt.Errorf("photo %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanPhotos(rows pgx.Rows) ([]models.Photo, error) {
	var photos []models.Photo
	for rows.Next() {
		var photo models.Photo
		err := rows.Scan(
			&photo.ID,
			&photo.AlbumID,
			&photo.Name,
			&photo.IsPublic,
			&photo.AssetKey,
			&photo.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}

	return photos, nil
}
