package context

import (
	"context"

	"offerfeed/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the resolved caller identity.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal stores the principal on both the echo context and the request context.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
	req := c.Request()
	c.SetRequest(req.WithContext(WithPrincipal(req.Context(), principal)))
}

// GetPrincipal returns the principal resolved for the request, or an anonymous one.
func GetPrincipal(c echo.Context) *entity.Principal {
	if p, ok := c.Get(string(KeyPrincipal)).(*entity.Principal); ok && p != nil {
		return p
	}

	return entity.AnonymousPrincipal()
}

// WithPrincipal returns a new context carrying the principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// PrincipalFromContext extracts the principal from a standard context.
// If not found, returns an anonymous principal.
func PrincipalFromContext(ctx context.Context) *entity.Principal {
	if p, ok := ctx.Value(KeyPrincipal).(*entity.Principal); ok && p != nil {
		return p
	}

	return entity.AnonymousPrincipal()
}
