// internal/auth/middleware.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"property-management/internal/logger"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// FailureFunc writes the response for a rejected request.
type FailureFunc func(w http.ResponseWriter, r *http.Request, err error)

// JWTAuthMiddleware rejects requests without a valid bearer token. The token
// subject is added to the request logger.
func JWTAuthMiddleware(fail FailureFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				fail(w, r, ErrMissingToken)
				return
			}

			claims, err := ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				fail(w, r, err)
				return
			}

			ctx, _ := logger.ContextWithLoggerIdentity(r.Context(), claims.Subject)
			ctx = context.WithValue(ctx, ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims extracts the verified claims from the request context.
func GetClaims(r *http.Request) *Claims {
	claims, _ := r.Context().Value(ClaimsKey).(*Claims)
	return claims
}

// RequireRole rejects requests whose verified claims do not carry role. It must
// run after JWTAuthMiddleware.
func RequireRole(role string, fail FailureFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r)
			if claims == nil || claims.Role != role {
				fail(w, r, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
