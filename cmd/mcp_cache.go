package cmd

import (
	"sync"
	"time"

	"github.com/mj1618/winlayout/internal/model"
)

// mcpWindowCache provides a TTL-based cache for the live window listing.
type mcpWindowCache struct {
	mu        sync.Mutex
	windows   []model.WindowInfo
	timestamp time.Time
	valid     bool
	ttl       time.Duration
	now       func() time.Time
}

// newMCPWindowCache creates a new cache. A ttl of 0 disables caching.
func newMCPWindowCache(ttl time.Duration) *mcpWindowCache {
	return &mcpWindowCache{ttl: ttl, now: time.Now}
}

// listWindows returns the cached listing if within TTL, otherwise calls read.
func (c *mcpWindowCache) listWindows(read func() ([]model.WindowInfo, error)) ([]model.WindowInfo, error) {
	if c.ttl == 0 {
		return read()
	}

	c.mu.Lock()
	if c.valid && c.now().Sub(c.timestamp) < c.ttl {
		windows := c.windows
		c.mu.Unlock()
		return windows, nil
	}
	c.mu.Unlock()

	windows, err := read()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.windows, c.timestamp, c.valid = windows, c.now(), true
	c.mu.Unlock()

	return windows, nil
}

// invalidate drops the cached listing.
func (c *mcpWindowCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.windows, c.valid = nil, false
}
