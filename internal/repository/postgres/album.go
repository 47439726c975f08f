package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"latitude/internal/domain"
	"latitude/internal/domain/access"
	"latitude/internal/domain/models"
	"latitude/internal/domain/repositories"
)

// PostgresAlbumRepository implements the AlbumRepository interface
type PostgresAlbumRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewAlbumRepository creates a new album repository
func NewAlbumRepository(config *RepositoryConfig) repositories.AlbumRepository {
	return &PostgresAlbumRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create persists a new album
func (r *PostgresAlbumRepository) Create(ctx context.Context, album *models.Album) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, is_public)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.Albums)

	err := r.pool.QueryRow(ctx, query,
		album.UserID,
		album.Name,
		album.IsPublic,
	).Scan(&album.ID, &album.CreatedAt, &album.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create album: %w", err)
	}

	return nil
}

// GetByID retrieves an album by ID regardless of visibility
func (r *PostgresAlbumRepository) GetByID(ctx context.Context, id string) (*models.Album, error) {
	if !validID(id) {
		r.logger.Debug("malformed album id treated as missing", "id", id)
		return nil, fmt.Errorf("album %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, name, is_public, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Albums)

	var album models.Album
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&album.ID,
		&album.UserID,
		&album.Name,
		&album.IsPublic,
		&album.CreatedAt,
		&album.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("album %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get album: %w", err)
	}

	return &album, nil
}

// List retrieves albums inside the visibility scope, newest first.
// The scope translates to: public albums, plus the scope owner's own.
func (r *PostgresAlbumRepository) List(ctx context.Context, scope access.Scope) ([]models.Album, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, is_public, created_at, updated_at
		FROM %s
		WHERE is_public OR user_id = $1
		ORDER BY created_at DESC
	`, r.tables.Albums)

	// A nil owner binds to NULL; "user_id = NULL" is never true, leaving
	// only the public side of the predicate.
	rows, err := r.pool.Query(ctx, query, scope.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		var album models.Album
		err := rows.Scan(
			&album.ID,
			&album.UserID,
			&album.Name,
			&album.IsPublic,
			&album.CreatedAt,
			&album.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, album)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}

	return albums, nil
}

// Update persists name/visibility changes
func (r *PostgresAlbumRepository) Update(ctx context.Context, album *models.Album) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $2, is_public = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, r.tables.Albums)

	err := r.pool.QueryRow(ctx, query,
		album.ID,
		album.Name,
		album.IsPublic,
	).Scan(&album.UpdatedAt)

	if err != nil {
		if isPgNoRowsError(err) {
			return fmt.Errorf("album %s: %w", album.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update album: %w", err)
	}

	return nil
}

// Delete removes an album; photos go with it via ON DELETE CASCADE
func (r *PostgresAlbumRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		r.logger.Debug("malformed album id treated as missing", "id", id)
		return fmt.Errorf("album %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Albums)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("album %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
