package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
)

type contextKey string

const (
	ctxKeyUserID   contextKey = "user_id"
	ctxKeyUserName contextKey = "user_name"
	ctxKeyUserRole contextKey = "user_role"
)

// IdentityMiddleware reads the identity headers injected by the upstream
// auth gateway. Authentication itself happens outside this service; the
// headers are trusted.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if raw := r.Header.Get("X-User-ID"); raw != "" {
			if id, err := strconv.Atoi(raw); err == nil {
				ctx = context.WithValue(ctx, ctxKeyUserID, id)
			}
		}
		if name := r.Header.Get("X-User-Name"); name != "" {
			ctx = context.WithValue(ctx, ctxKeyUserName, name)
		}
		if role := r.Header.Get("X-User-Role"); role != "" {
			ctx = context.WithValue(ctx, ctxKeyUserRole, role)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value(ctxKeyUserID).(int)
	return id, ok
}

func userName(r *http.Request) string {
	name, _ := r.Context().Value(ctxKeyUserName).(string)
	return name
}

func isAdmin(r *http.Request) bool {
	role, _ := r.Context().Value(ctxKeyUserRole).(string)
	return role == "admin"
}

// RequireUser rejects requests without an authenticated identity.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userID(r); !ok {
			respondError(w, "Not authorized", http.StatusUnauthorized, nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects non-admin identities.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userID(r); !ok {
			respondError(w, "Not authorized", http.StatusUnauthorized, nil)
			return
		}
		if !isAdmin(r) {
			respondError(w, "Admin access required", http.StatusForbidden, nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(lgr logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := fmt.Sprintf("req-%d", time.Now().UnixNano())

			lgr.Debug("http_request", fmt.Sprintf("%s %s", r.Method, r.URL.Path), requestID, map[string]interface{}{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			next.ServeHTTP(w, r)

			lgr.Debug("http_response", "Request completed", requestID, map[string]interface{}{
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}

func RecoveryMiddleware(lgr logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					lgr.Error("panic_recovered", "Panic recovered", "", nil, fmt.Errorf("%v", err))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
