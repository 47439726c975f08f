package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"latitude/internal/auth"
	"latitude/internal/domain/models"
	"latitude/internal/domain/repositories"
	"latitude/internal/httputil"
)

// Identity resolves the optional bearer credential on every request and
// stores the result in the request context. Resolution never fails the
// request: a missing header, an undecodable token and an unknown user all
// collapse to anonymous, so callers cannot probe why a token was rejected.
// The context value is the per-request memoization - the lookup runs once
// here and nowhere else.
func Identity(tokens auth.TokenService, users repositories.UserRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if viewer := resolve(r, tokens, users, logger); viewer != nil {
				r = httputil.WithViewer(r, viewer)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// resolve walks the fallthrough chain from the Authorization header shape
// ("Bearer <token>") to a loaded user. Every step returns nil on failure;
// nil means anonymous, never an error.
func resolve(r *http.Request, tokens auth.TokenService, users repositories.UserRepository, logger *slog.Logger) *models.User {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil
	}

	userID, err := tokens.Decode(parts[1])
	if err != nil {
		// Reason stays in the logs only; the response never distinguishes
		// expired from forged from garbage.
		logger.Debug("bearer token rejected", "reason", err)
		return nil
	}

	viewer, err := users.GetByID(r.Context(), userID)
	if err != nil {
		logger.Debug("token subject not found", "user_id", userID)
		return nil
	}

	return viewer
}
