package middleware

import (
	"context"
	"net/http"

	"shopkart/internal/model"
	"shopkart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFrom returns the authenticated user attached to the request
// context, or nil when the request carried no identity.
func UserFrom(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// WithUser returns a context carrying the given user identity.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// Identity resolves the X-User-ID header to a user account and attaches
// it to the request context. Requests without the header pass through
// anonymously; route handlers decide whether identity is required.
func Identity(users service.UserService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("X-User-ID")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := uuid.Parse(header)
			if err != nil {
				logger.Warn().Str("path", r.URL.Path).Msg("malformed user ID header")
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil || user == nil {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("user_id", header).
					Msg("unknown user ID header")
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that carry no resolved identity.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if UserFrom(r.Context()) == nil {
			writeAuthError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "Authentication required")
			return
		}
		next(w, r)
	}
}

// RequireAdmin rejects requests whose identity is not an admin account.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := UserFrom(r.Context())
		if user == nil {
			writeAuthError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "Authentication required")
			return
		}
		if user.Role != model.RoleAdmin {
			writeAuthError(w, http.StatusForbidden, model.ErrCodeForbidden, "Admin access required")
			return
		}
		next(w, r)
	}
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error": "` + code + `", "message": "` + message + `"}`))
}
