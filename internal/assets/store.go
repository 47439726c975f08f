// Package assets stores photo binary content outside the database and hands
// back opaque keys. The rest of the system only ever sees the key and the
// URL it resolves to.
package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"latitude/internal/domain"
)

// ErrUnsupportedFormat is returned when the payload does not sniff as an
// accepted upload format. It maps to a validation failure at the boundary.
var ErrUnsupportedFormat = fmt.Errorf("unsupported asset format: %w", domain.ErrValidation)

// Store accepts binary content and returns a resolvable URL for an opaque key.
type Store interface {
	// Save writes the content and returns its key. Fails with
	// ErrUnsupportedFormat when the content does not sniff as an accepted
	// format.
	Save(ctx context.Context, data []byte) (string, error)

	// URL resolves a key to the public URL the key is served under.
	URL(key string) string

	// Delete releases the content behind a key. Deleting a key that is
	// already gone is not an error.
	Delete(ctx context.Context, key string) error
}

// FilesystemStore implements Store on a local directory. Keys are
// UUID-plus-extension filenames; the extension comes from the format
// registry so the static file server sends a sensible content type.
type FilesystemStore struct {
	dir     string
	baseURL string
	formats *FormatRegistry
	logger  *slog.Logger
}

// NewFilesystemStore creates the asset directory if needed and returns a
// store serving keys under baseURL.
func NewFilesystemStore(dir, baseURL string, formats *FormatRegistry, logger *slog.Logger) (*FilesystemStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset directory: %w", err)
	}

	return &FilesystemStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		formats: formats,
		logger:  logger,
	}, nil
}

// Save sniffs the content type, checks it against the registry and writes
// the payload under a fresh UUID key.
func (s *FilesystemStore) Save(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnsupportedFormat
	}

	format, ok := s.formats.Lookup(http.DetectContentType(data))
	if !ok {
		return "", ErrUnsupportedFormat
	}

	key := uuid.NewString() + format.Extension
	path := filepath.Join(s.dir, key)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write asset %s: %w", key, err)
	}

	s.logger.Debug("asset stored", "key", key, "bytes", len(data))
	return key, nil
}

// URL resolves a key to its public URL.
func (s *FilesystemStore) URL(key string) string {
	return s.baseURL + "/" + key
}

// Delete removes the file behind a key.
func (s *FilesystemStore) Delete(ctx context.Context, key string) error {
	// Keys are generated by Save; refuse anything that could escape the dir.
	if key == "" || key != filepath.Base(key) {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete asset %s: %w", key, err)
	}

	return nil
}

// Handler serves stored assets for mounting at the base URL path. Only a
// single exact key is ever served: directory listings would enumerate the
// keys of private photos, so anything that is not a bare key is a miss.
func (s *FilesystemStore) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.Trim(r.URL.Path, "/")
		if key == "" || key != filepath.Base(key) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
