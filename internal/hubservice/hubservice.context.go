// FilePath: internal/hubservice/hubservice.context.go
package hubservice

import "context"

type contextKey string

const userContextKey contextKey = "user"

// Principal is the authenticated caller attached to the request context by
// the auth middleware.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// WithUser returns a context carrying the authenticated principal.
func WithUser(ctx context.Context, user *Principal) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated principal, or nil.
func UserFromContext(ctx context.Context) *Principal {
	user, _ := ctx.Value(userContextKey).(*Principal)
	return user
}

// GetUserRoles returns the role set used for field-level write filtering.
func GetUserRoles(ctx context.Context) []string {
	user := UserFromContext(ctx)
	if user == nil || user.Role == "" {
		return nil
	}
	return []string{user.Role}
}
