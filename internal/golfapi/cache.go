package golfapi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// DefaultCacheTTL is how long an API answer is reused.
const DefaultCacheTTL = 30 * 24 * time.Hour

// Cache stores API lookups on disk between passes
type Cache struct {
	Courses  map[string]*CourseInfo `json:"courses"`   // normalized name|location → info (nil = no match)
	CachedAt map[string]time.Time   `json:"cached_at"` // key → cache time
	TTL      time.Duration          `json:"-"`

	now func() time.Time
}

// NewCache creates an empty cache with the default TTL
func NewCache() *Cache {
	return &Cache{
		Courses:  make(map[string]*CourseInfo),
		CachedAt: make(map[string]time.Time),
		TTL:      DefaultCacheTTL,
		now:      time.Now,
	}
}

// LoadCache reads a cache file. A missing file yields an empty cache.
func LoadCache(path string) (*Cache, error) {
	cache := NewCache()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("parsing cache: %w", err)
	}
	if cache.Courses == nil {
		cache.Courses = make(map[string]*CourseInfo)
	}
	if cache.CachedAt == nil {
		cache.CachedAt = make(map[string]time.Time)
	}
	return cache, nil
}

// Save writes the cache file, creating its directory.
func (c *Cache) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

// Get returns a cached lookup. The second result is false when the entry is
// missing or expired; a cached "no match" returns nil, true.
func (c *Cache) Get(name, location string) (*CourseInfo, bool) {
	key := cacheKey(name, location)

	info, exists := c.Courses[key]
	if !exists {
		return nil, false
	}

	cachedTime, hasTime := c.CachedAt[key]
	if !hasTime || c.clock().Sub(cachedTime) > c.TTL {
		delete(c.Courses, key)
		delete(c.CachedAt, key)
		return nil, false
	}

	return info, true
}

// Set stores a lookup result, including a nil "no match".
func (c *Cache) Set(name, location string, info *CourseInfo) {
	key := cacheKey(name, location)
	c.Courses[key] = info
	c.CachedAt[key] = c.clock()
}

// CleanExpired removes expired entries and returns how many were removed
func (c *Cache) CleanExpired() int {
	removed := 0
	now := c.clock()

	for key, cachedTime := range c.CachedAt {
		if now.Sub(cachedTime) > c.TTL {
			delete(c.Courses, key)
			delete(c.CachedAt, key)
			removed++
		}
	}

	return removed
}

// Size returns the number of cached entries
func (c *Cache) Size() int {
	return len(c.Courses)
}

func (c *Cache) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

func cacheKey(name, location string) string {
	return course.Normalize(name) + "|" + strings.ToLower(strings.TrimSpace(location))
}
