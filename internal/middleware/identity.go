package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/utils"
)

const identityKey = "identity"

// CurrentIdentity returns the identity JWTAuth stored in c.  ok is false
// for anonymous requests.
func CurrentIdentity(c echo.Context) (model.Identity, bool) {
	id, ok := c.Get(identityKey).(model.Identity)
	if !ok || id.ID == "" {
		return model.Identity{}, false
	}
	return id, true
}

// SetIdentity stores id in c the way JWTAuth does.
func SetIdentity(c echo.Context, id model.Identity) {
	c.Set(identityKey, id)
}

// userID returns the identity id for rate limit keys, or "anon".  When
// JWTAuth has not run yet, a valid bearer token still identifies the user.
func userID(c echo.Context, secret string) string {
	if id, ok := CurrentIdentity(c); ok {
		return id.ID
	}
	if raw, ok := bearerToken(c); ok && secret != "" {
		if id, err := utils.ParseAccessToken(secret, raw); err == nil && id.ID != "" {
			return id.ID
		}
	}
	return "anon"
}
