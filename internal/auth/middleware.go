package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"orchestrix/bff/pkg/models"
)

const (
	tokenContextKey    = "auth.token"
	identityContextKey = "auth.identity"

	bearerPrefix = "Bearer "
)

// ExtractToken is registered globally. It pulls the bearer token from the
// Authorization header, decodes claims best-effort and stores both in the
// request context. Requests without a usable token proceed as anonymous;
// routes decide whether that is acceptable.
func ExtractToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}

			token := header[len(bearerPrefix):]
			c.Set(tokenContextKey, token)

			if identity := DecodeIdentity(token); identity != nil {
				c.Set(identityContextKey, identity)
			}
			return next(c)
		}
	}
}

// Token returns the raw bearer token extracted from the request, or "" for
// anonymous requests. The token is forwarded verbatim to upstream.
func Token(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}

// IdentityFrom returns the decoded identity, or nil for anonymous requests
// and undecodable tokens.
func IdentityFrom(c echo.Context) *Identity {
	identity, _ := c.Get(identityContextKey).(*Identity)
	return identity
}

// RequireAuthenticated rejects requests that carry no bearer token with 401.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Token(c) == "" {
				return unauthorized(c)
			}
			return next(c)
		}
	}
}

// RequireAnyRole rejects requests without a token or identity with 401, and
// requests whose role set has no overlap with roles with 403.
func RequireAnyRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Token(c) == "" {
				return unauthorized(c)
			}
			identity := IdentityFrom(c)
			if identity == nil {
				return unauthorized(c)
			}
			if !identity.HasAnyRole(roles...) {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "Forbidden",
					Message: "Requires one of roles: " + strings.Join(roles, ", "),
				})
			}
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "Unauthorized",
		Message: "Token required",
	})
}
