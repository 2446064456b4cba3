package config

import "time"

// CacheConfig defines settings for the redis response cache in front of
// the public listing endpoints.  When Enabled is false or no redis client
// is available, caching is skipped.  Keys always include the listing
// store revision, so TTL only bounds memory use, never staleness.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string // route | route_query | method_route | method_route_query
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads CACHE_* variables.  All methods are upper-cased.
func LoadCacheConfig() CacheConfig {
	cfg := CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      parseList(envStr("CACHE_METHODS", "GET")),
		TTL:          envDur("CACHE_TTL", 5*time.Minute),
		KeyStrategy:  envStr("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       envStr("CACHE_PREFIX", "listings-cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	return cfg
}
