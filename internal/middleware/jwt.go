package middleware // package middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and stores the identity it carries in the request context.  The secret
// must match the one used when issuing tokens.  Handlers read the identity
// back with CurrentIdentity.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}

			id, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer" header.
func bearerToken(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return raw, raw != ""
}
