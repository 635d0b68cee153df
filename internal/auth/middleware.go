package auth

import (
	"context"
	"net/http"
	"strings"

	"netbackup/internal/models"
)

type ctxKey string

const identityKey ctxKey = "identity"

// AdminLookup resolves a token subject to a stored Admin record.
type AdminLookup interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// Middleware extracts the bearer token, verifies it and resolves the
// subject against the admins table. Requests without a resolvable
// identity get 401 with the bearer challenge.
func (s *Service) Middleware(admins AdminLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				models.WriteUnauthorized(w, "Not authenticated")
				return
			}
			claims, err := s.VerifyToken(raw)
			if err != nil {
				models.WriteUnauthorized(w, "Could not validate credentials")
				return
			}
			admin, err := admins.GetByUsername(r.Context(), claims.Subject)
			if err != nil || admin == nil {
				models.WriteUnauthorized(w, "Could not validate credentials")
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the authenticated Admin, nil outside the
// middleware.
func IdentityFrom(r *http.Request) *models.Admin {
	if a, ok := r.Context().Value(identityKey).(*models.Admin); ok {
		return a
	}
	return nil
}

// RequireRole wraps a handler with a minimum-role gate.
func RequireRole(min models.AdminRole, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch Authorize(IdentityFrom(r), min) {
		case nil:
			next(w, r)
		case ErrForbidden:
			models.WriteError(w, http.StatusForbidden, "Not enough permissions")
		default:
			models.WriteUnauthorized(w, "Could not validate credentials")
		}
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
