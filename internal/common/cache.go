package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	*cache.Cache
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{cache.New(expirationTime, cleanupTime)}
}

// GetOrAdd returns the value stored under key, storing the result of create first if
// the key is missing. Reading refreshes the default expiration of the entry.
func (c *Cache) GetOrAdd(key string, create func() interface{}) interface{} {
	if v, ok := c.Cache.Get(key); ok {
		c.Cache.Set(key, v, cache.DefaultExpiration)
		return v
	}

	v := create()
	if err := c.Cache.Add(key, v, cache.DefaultExpiration); err != nil {
		// lost the race against another request for the same key
		if existing, ok := c.Cache.Get(key); ok {
			return existing
		}
	}

	return v
}

func CacheKeyClientIP(ip string) string {
	return "limiter:" + ip
}
