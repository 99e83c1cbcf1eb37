package visionkit

import (
	"database/sql"
	"sync"
	"time"

	"github.com/eringen/visionkit/content"
)

// ErrNotFound is returned when a requested gallery idea does not exist.
var ErrNotFound = sql.ErrNoRows

// IdeaCache is an in-memory cache of synced gallery ideas with TTL.
type IdeaCache struct {
	mu      sync.RWMutex
	ideas   []content.GalleryIdea
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewIdeaCache creates an IdeaCache backed by the given Store.
func NewIdeaCache(s *Store, ttl time.Duration) *IdeaCache {
	return &IdeaCache{store: s, ttl: ttl}
}

func (c *IdeaCache) valid() bool {
	return c.ideas != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *IdeaCache) Invalidate() {
	c.mu.Lock()
	c.ideas = nil
	c.mu.Unlock()
}

// ensureLoaded returns the cached ideas, reloading under the write lock
// only when the read-locked check finds them stale.
func (c *IdeaCache) ensureLoaded() ([]content.GalleryIdea, error) {
	c.mu.RLock()
	if c.valid() {
		ideas := c.ideas
		c.mu.RUnlock()
		return ideas, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.ideas, nil
	}
	ideas, err := c.store.ListGalleryIdeas("")
	if err != nil {
		return nil, err
	}
	if ideas == nil {
		ideas = []content.GalleryIdea{}
	}
	c.ideas = ideas
	c.fetched = time.Now()
	return c.ideas, nil
}

// ListIdeas returns synced ideas, optionally restricted to one category.
func (c *IdeaCache) ListIdeas(category string) ([]content.GalleryIdea, error) {
	ideas, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return content.FilterGallery(ideas, category), nil
}

// GetIdea returns a single idea by id from the cache.
func (c *IdeaCache) GetIdea(id int64) (content.GalleryIdea, error) {
	ideas, err := c.ensureLoaded()
	if err != nil {
		return content.GalleryIdea{}, err
	}
	for _, idea := range ideas {
		if idea.ID == id {
			return idea, nil
		}
	}
	return content.GalleryIdea{}, ErrNotFound
}
