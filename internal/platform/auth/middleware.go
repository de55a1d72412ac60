package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// Skipper reports whether a request bypasses authentication.
type Skipper func(c echo.Context) bool

// DefaultSkipper leaves login, published posts, and health checks public.
func DefaultSkipper(c echo.Context) bool {
	path := c.Path()
	if path == "/api/v1/auth/login" || strings.HasPrefix(path, "/health") {
		return true
	}
	if c.Request().Method == http.MethodGet && strings.HasPrefix(path, "/api/v1/posts") {
		return true
	}
	return false
}

// Middleware authenticates requests from the session cookie, falling back to
// an Authorization bearer header. Verified claims are stored on the request
// context for ClaimsFromContext and RequireRole.
func Middleware(cfg Config, skip Skipper) echo.MiddlewareFunc {
	if skip == nil {
		skip = DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip(c) {
				return next(c)
			}

			raw := ""
			if cookie, err := c.Cookie(CookieName); err == nil {
				raw = cookie.Value
			}
			if raw == "" {
				header := c.Request().Header.Get("Authorization")
				if strings.HasPrefix(header, "Bearer ") {
					raw = strings.TrimPrefix(header, "Bearer ")
				}
			}
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := ParseToken(cfg, raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			ctx := context.WithValue(c.Request().Context(), claimsKey, claims)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// ClaimsFromContext returns the verified claims, or nil outside an
// authenticated request.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// WithClaims returns a context carrying the given claims. Test helper.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
