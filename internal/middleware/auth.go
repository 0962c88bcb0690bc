package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	model "github.com/sigfig/step-challenge/internal/models"
	"github.com/sigfig/step-challenge/internal/store"
	"github.com/sigfig/step-challenge/internal/utils"
)

// Context keys
type contextKey string

const (
	userContextKey    = contextKey("user")
	apiTokenIDContext = contextKey("apiTokenID")
)

// AuthMiddleware validates the session token and injects the user into the
// request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			utils.ErrorSimple(w, http.StatusUnauthorized, "missing session token")
			return
		}

		user, err := store.UserForSession(r.Context(), token)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not validate session", err)
			return
		}
		if user == nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, *user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injects the user when a valid session is presented but never
// rejects the request.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := sessionToken(r); token != "" {
			if user, err := store.UserForSession(r.Context(), token); err == nil && user != nil {
				r = r.WithContext(context.WithValue(r.Context(), userContextKey, *user))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates a subrouter to admin users. Must run behind
// AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r)
		if err != nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !user.IsAdmin {
			utils.ErrorSimple(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TokenAuthMiddleware authenticates the programmatic API with a Bearer API
// token and records the token id for audit logging.
func TokenAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if !strings.HasPrefix(raw, "Bearer ") {
			utils.ErrorSimple(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		token := strings.TrimPrefix(raw, "Bearer ")

		user, tokenID, err := store.UserForToken(r.Context(), token)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not validate token", err)
			return
		}
		if user == nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, "invalid or revoked token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, *user)
		ctx = context.WithValue(ctx, apiTokenIDContext, tokenID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext returns the authenticated user for the request.
func GetUserFromContext(r *http.Request) (model.UserProfile, error) {
	user, ok := r.Context().Value(userContextKey).(model.UserProfile)
	if !ok {
		return model.UserProfile{}, fmt.Errorf("user not found in context")
	}
	return user, nil
}

// GetApiTokenIDFromContext returns the API token id that authenticated the
// request, for audit rows.
func GetApiTokenIDFromContext(r *http.Request) (int64, error) {
	id, ok := r.Context().Value(apiTokenIDContext).(int64)
	if !ok {
		return 0, fmt.Errorf("api token not found in context")
	}
	return id, nil
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie("session"); err == nil && c.Value != "" {
		return c.Value
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
