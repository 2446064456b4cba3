package utils // package utils provides helpers for tokens, hashing and display formatting

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or
// claim checks.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT access token along with its expiry.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// identityClaims carries the identity snapshot inside the token so the
// listings domain never has to look the user up again.
type identityClaims struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewAccessToken builds and signs an HS256 JWT for id.  The subject is the
// identity id; name, phone and email travel as private claims.
func NewAccessToken(secret string, id model.Identity, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := identityClaims{
		Name:  id.Name,
		Phone: id.Phone,
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies raw with secret and returns the identity it
// carries.  Only HMAC signing methods are accepted.
func ParseAccessToken(secret, raw string) (model.Identity, error) {
	var claims identityClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return model.Identity{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return model.Identity{}, ErrInvalidToken
	}
	return model.Identity{
		ID:    claims.Subject,
		Name:  claims.Name,
		Phone: claims.Phone,
		Email: claims.Email,
	}, nil
}
