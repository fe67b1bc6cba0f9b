// FilePath: api/middleware/api.middleware.auth.go
package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/smarthive/hub/internal/config"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/hubservice"
)

// JWTMiddleware validates bearer tokens issued by the login endpoint and
// attaches the authenticated principal to the request context.
type JWTMiddleware struct {
	secret []byte
}

func NewJWTMiddleware(cfg config.AuthConfig) *JWTMiddleware {
	return &JWTMiddleware{secret: []byte(cfg.JWTSecret)}
}

// Authenticate validates the token and adds user info to context
func (m *JWTMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractToken(r)
		if tokenStr == "" {
			handleError(w, errors.NewAuthError("no token provided", nil))
			return
		}

		user, err := m.parseToken(tokenStr)
		if err != nil {
			handleError(w, errors.NewAuthError("invalid token", err))
			return
		}

		next.ServeHTTP(w, r.WithContext(hubservice.WithUser(r.Context(), user)))
	})
}

// RequireRole ensures the authenticated user carries the given role.
func (m *JWTMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := hubservice.UserFromContext(r.Context())
			if user == nil {
				handleError(w, errors.NewAuthError("no user context found", nil))
				return
			}
			if user.Role != role {
				handleError(w, errors.NewAuthorizationError("insufficient permissions", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *JWTMiddleware) parseToken(tokenStr string) (*hubservice.Principal, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	user := &hubservice.Principal{
		ID:    claimString(claims, "id"),
		Name:  claimString(claims, "name"),
		Email: claimString(claims, "email"),
		Role:  claimString(claims, "role"),
	}
	if user.ID == "" {
		return nil, fmt.Errorf("token has no subject id")
	}
	return user, nil
}

// Helper functions

func extractToken(r *http.Request) string {
	bearerToken := r.Header.Get("Authorization")
	parts := strings.SplitN(bearerToken, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func handleError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
}
