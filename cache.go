package yelphelp

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheConfig contains some configuration variables for LookupCache.
type CacheConfig struct {
	ExpiresIn       time.Duration `json:"expires_in" yaml:"expires_in"`
	CleanupInterval time.Duration `json:"cleanup_interval" yaml:"cleanup_interval"`
}

// NewCacheConfig creates and returns new CacheConfig instance with default settings.
// Use json.Unmarshal, yaml.Unmarshal, or manual manipulation to override those default values.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{
		ExpiresIn:       10 * time.Minute,
		CleanupInterval: 30 * time.Minute,
	}
}

// LookupCache stores results of chat platform lookups such as users and channel identifiers,
// so an Adapter does not repeat the same API call for every message.
type LookupCache struct {
	cache *cache.Cache
}

// NewLookupCache creates and returns a new LookupCache with the given setting.
func NewLookupCache(config *CacheConfig) *LookupCache {
	return &LookupCache{
		cache: cache.New(config.ExpiresIn, config.CleanupInterval),
	}
}

// User returns the stored User with the given identifier.
func (c *LookupCache) User(id string) (*User, bool) {
	val, ok := c.cache.Get("user:" + id)
	if !ok {
		return nil, false
	}

	user, ok := val.(*User)
	return user, ok
}

// SetUser stores the given User.
func (c *LookupCache) SetUser(user *User) {
	c.cache.Set("user:"+user.ID, user, cache.DefaultExpiration)
}

// ID returns the stored identifier for the given kind of name.
// e.g. c.ID("channel", "general")
func (c *LookupCache) ID(kind string, name string) (string, bool) {
	val, ok := c.cache.Get(kind + ":" + name)
	if !ok {
		return "", false
	}

	id, ok := val.(string)
	return id, ok
}

// SetID stores the identifier for the given kind of name.
func (c *LookupCache) SetID(kind string, name string, id string) {
	c.cache.Set(kind+":"+name, id, cache.DefaultExpiration)
}
