package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dumar-app/dumar-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Rutas accesibles sin token: alta, login, verificación de PIN y el
// healthcheck. El endpoint de mensajería también es público porque lo
// consume el propio flujo de alta antes de existir sesión.
var publicPaths = map[string]bool{
	"/healthcheck":      true,
	"/v1/signup":        true,
	"/v1/login":         true,
	"/v1/pin/verify":    true,
	"/v1/pin/resend":    true,
	"/v1/send-whatsapp": true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
