// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/repository"
)

type userContextKey string

var userKey userContextKey = "flow3_user"

// Authenticate validates the bearer token and loads the authenticated
// user into the request context. Deleted users hold expired tokens in
// effect: the lookup fails and the request is rejected.
func Authenticate(tokens *auth.TokenManager, users *repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}

			user, err := users.Get(r.Context(), claims.UserID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose authenticated user sits below the
// minimum role. It must run after Authenticate.
func RequireRole(min model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFrom(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authorized to access this route")
				return
			}
			if !user.Role.AtLeast(min) {
				respondWithError(w, http.StatusForbidden, "User role "+string(user.Role)+" is not authorized to access this route")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFrom returns the authenticated user stored by Authenticate.
func UserFrom(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
