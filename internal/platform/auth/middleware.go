package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const identityKey contextKey = "nurse_identity"

// ErrNurseNotFound is returned by a Resolver when a token verifies but the
// nurse it references no longer exists. Treated as unauthenticated, not a 500.
var ErrNurseNotFound = errors.New("nurse not found")

// Identity is the authenticated nurse as seen by the authorization layer.
type Identity struct {
	ID                    string
	Email                 string
	FullName              string
	Admin                 bool
	AssignedPatients      []string
	AssignedOrganizations []string
	AllowedForms          []string
}

// Resolver turns a bearer token into a nurse identity. The identity domain
// implements this against the nurses collection; every request re-reads
// current state so revoked accounts and stale roles are never honored.
type Resolver interface {
	ResolveToken(ctx context.Context, token string) (*Identity, error)
}

// Middleware authenticates every request with a bearer token and stores the
// resolved identity on the request context.
func Middleware(resolver Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			identity, err := resolver.ResolveToken(c.Request().Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, ErrTokenExpired):
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				case errors.Is(err, ErrTokenInvalid):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				case errors.Is(err, ErrNurseNotFound):
					return echo.NewHTTPError(http.StatusUnauthorized, "nurse not found")
				default:
					return echo.NewHTTPError(http.StatusInternalServerError, "authentication failed")
				}
			}

			ctx := context.WithValue(c.Request().Context(), identityKey, identity)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// IdentityFromContext returns the authenticated nurse, or nil outside an
// authenticated request.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey).(*Identity)
	return id
}

// WithIdentity returns a context carrying the given identity. Used by tests
// and the seed command.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
