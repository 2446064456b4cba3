package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/iliyamo/land-marketplace/internal/config"
	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/repository"
	"github.com/iliyamo/land-marketplace/internal/utils"
)

const testSecret = "test-secret"

type MiddlewareTestSuite struct {
	suite.Suite

	e *echo.Echo
}

func (s *MiddlewareTestSuite) SetupTest() {
	s.e = echo.New()
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) newContext(method, target, auth string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *MiddlewareTestSuite) TestJWTAuthStoresIdentity() {
	id := model.Identity{ID: "u1", Name: "Asha", Phone: "1", Email: "a@example.com"}
	tok, err := utils.NewAccessToken(testSecret, id, 5)
	s.Require().NoError(err)

	c, rec := s.newContext(http.MethodGet, "/", "Bearer "+tok.Token)
	var seen model.Identity
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		got, ok := CurrentIdentity(c)
		s.True(ok)
		seen = got
		return okHandler(c)
	})
	s.Require().NoError(h(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(id, seen)
}

func (s *MiddlewareTestSuite) TestJWTAuthRejects() {
	tests := []struct {
		desc string
		auth string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"bad token", "Bearer nope"},
	}
	for _, tt := range tests {
		c, rec := s.newContext(http.MethodGet, "/", tt.auth)
		s.Require().NoError(JWTAuth(testSecret)(okHandler)(c))
		s.Equal(http.StatusUnauthorized, rec.Code, tt.desc)
	}
}

type stubGetter map[string]model.Listing

func (g stubGetter) GetByID(ctx context.Context, id string) (model.Listing, error) {
	l, ok := g[id]
	if !ok {
		return model.Listing{}, repository.ErrListingNotFound
	}
	return l, nil
}

func (s *MiddlewareTestSuite) TestRequireListingOwner() {
	store := stubGetter{"1": {ID: "1", OwnerID: "owner"}}
	mw := RequireListingOwner(store)

	tests := []struct {
		desc    string
		caller  string
		id      string
		expCode int
	}{
		{"owner", "owner", "1", http.StatusOK},
		{"someone else", "intruder", "1", http.StatusForbidden},
		{"unknown listing", "owner", "2", http.StatusNotFound},
		{"anonymous", "", "1", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		c, rec := s.newContext(http.MethodPut, "/v1/listings/"+tt.id, "")
		c.SetParamNames("id")
		c.SetParamValues(tt.id)
		if tt.caller != "" {
			SetIdentity(c, model.Identity{ID: tt.caller})
		}
		s.Require().NoError(mw(okHandler)(c))
		s.Equal(tt.expCode, rec.Code, tt.desc)
	}
}

func (s *MiddlewareTestSuite) TestRateKeyUsesIdentity() {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}
	c, _ := s.newContext(http.MethodGet, "/", "")
	s.Equal("rl:user:anon", buildRateKey(cfg, c, testSecret))

	SetIdentity(c, model.Identity{ID: "u9"})
	s.Equal("rl:user:u9", buildRateKey(cfg, c, testSecret))
}

func (s *MiddlewareTestSuite) TestRateKeyReadsBearerBeforeJWTAuth() {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_user"}
	tok, err := utils.NewAccessToken(testSecret, model.Identity{ID: "u7", Name: "Ravi"}, 5)
	s.Require().NoError(err)

	c, _ := s.newContext(http.MethodGet, "/v1/my-listings", "Bearer "+tok.Token)
	s.Contains(buildRateKey(cfg, c, testSecret), ":user:u7")

	c, _ = s.newContext(http.MethodGet, "/v1/my-listings", "Bearer "+tok.Token)
	s.Contains(buildRateKey(cfg, c, "other-secret"), ":user:anon")

	c, _ = s.newContext(http.MethodGet, "/v1/my-listings", "Bearer garbage")
	s.Contains(buildRateKey(cfg, c, testSecret), ":user:anon")
}

func (s *MiddlewareTestSuite) TestDisabledMiddlewaresPassThrough() {
	c, rec := s.newContext(http.MethodGet, "/", "")
	s.Require().NoError(NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil, testSecret)(okHandler)(c))
	s.Equal(http.StatusOK, rec.Code)

	c, rec = s.newContext(http.MethodGet, "/", "")
	cacheCfg := config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}}
	s.Require().NoError(NewRedisCache(cacheCfg, nil, func() uint64 { return 0 })(okHandler)(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Header().Get("X-Cache"))
}

func (s *MiddlewareTestSuite) TestCacheKeyIncludesRevisionAndPath() {
	cfg := config.CacheConfig{Prefix: "lc", KeyStrategy: "route_query"}
	c1, _ := s.newContext(http.MethodGet, "/v1/listings/1", "")
	c1.SetPath("/v1/listings/:id")
	c2, _ := s.newContext(http.MethodGet, "/v1/listings/2", "")
	c2.SetPath("/v1/listings/:id")

	s.Equal(cacheKeyFrom(cfg, c1, 1), cacheKeyFrom(cfg, c1, 1))
	s.NotEqual(cacheKeyFrom(cfg, c1, 1), cacheKeyFrom(cfg, c1, 2))
	s.NotEqual(cacheKeyFrom(cfg, c1, 1), cacheKeyFrom(cfg, c2, 1))
	s.Contains(cacheKeyFrom(cfg, c1, 1), "lc:")
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"a":1}`))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, `{"a":1}`, string(body))

	_, _, _, ok = decodePayload([]byte{0, 1})
	assert.False(t, ok)
	_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 1, 0})
	assert.False(t, ok, "header length beyond payload")
}

func TestShouldLogRequest(t *testing.T) {
	assert.False(t, shouldLogRequest(http.StatusOK, 10*time.Millisecond))
	assert.True(t, shouldLogRequest(http.StatusOK, 500*time.Millisecond))
	assert.True(t, shouldLogRequest(http.StatusNotFound, time.Millisecond))
	assert.True(t, shouldLogRequest(http.StatusInternalServerError, time.Millisecond))
}

func TestRequestLoggerKeepsResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

	err := RequestLogger()(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "brew")
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
