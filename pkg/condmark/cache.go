package condmark

import (
	"container/list"
	"sync"
	"time"
)

// CacheConfig contains configuration options for the template cache
type CacheConfig struct {
	// MaxSize is the maximum number of templates to cache. 0 disables caching.
	MaxSize int
	// TTL is the time-to-live for cached templates. 0 means no expiration.
	TTL time.Duration
}

// TemplateCache caches prepared templates keyed by their source text, so
// repeated processing of the same template skips the marker scan and parse.
// Entries are evicted least-recently-used once MaxSize is reached.
type TemplateCache struct {
	mu     sync.RWMutex
	cache  map[string]*cacheEntry
	lru    *list.List
	config CacheConfig
}

type cacheEntry struct {
	key      string
	template *PreparedTemplate
	expiry   time.Time
	element  *list.Element
}

var defaultCache = NewTemplateCache()

// NewTemplateCache creates a new template cache configured from the global
// configuration
func NewTemplateCache() *TemplateCache {
	config := GetGlobalConfig()
	return NewTemplateCacheWithConfig(CacheConfig{
		MaxSize: config.CacheMaxSize,
		TTL:     config.CacheTTL,
	})
}

// NewTemplateCacheWithConfig creates a new template cache with the given
// configuration
func NewTemplateCacheWithConfig(config CacheConfig) *TemplateCache {
	return &TemplateCache{
		cache:  make(map[string]*cacheEntry),
		lru:    list.New(),
		config: config,
	}
}

// Prepare returns the cached parse of a template, parsing and caching it on
// a miss
func (tc *TemplateCache) Prepare(template string) *PreparedTemplate {
	if tc.config.MaxSize == 0 {
		return Prepare(template)
	}

	tc.mu.RLock()
	entry, exists := tc.cache[template]
	tc.mu.RUnlock()

	if exists {
		if tc.config.TTL > 0 && time.Now().After(entry.expiry) {
			tc.Remove(template)
		} else {
			tc.mu.Lock()
			tc.lru.MoveToFront(entry.element)
			tc.mu.Unlock()
			return entry.template
		}
	}

	prepared := Prepare(template)
	tc.Set(template, prepared)
	return prepared
}

// Get retrieves a prepared template from the cache
func (tc *TemplateCache) Get(key string) (*PreparedTemplate, bool) {
	tc.mu.RLock()
	entry, exists := tc.cache[key]
	tc.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if tc.config.TTL > 0 && time.Now().After(entry.expiry) {
		tc.Remove(key)
		return nil, false
	}

	tc.mu.Lock()
	tc.lru.MoveToFront(entry.element)
	tc.mu.Unlock()

	return entry.template, true
}

// Set stores a prepared template, evicting the least recently used entry
// when the cache is full
func (tc *TemplateCache) Set(key string, template *PreparedTemplate) {
	if tc.config.MaxSize == 0 {
		return
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	if entry, exists := tc.cache[key]; exists {
		entry.template = template
		entry.expiry = tc.entryExpiry()
		tc.lru.MoveToFront(entry.element)
		return
	}

	entry := &cacheEntry{
		key:      key,
		template: template,
		expiry:   tc.entryExpiry(),
	}
	entry.element = tc.lru.PushFront(entry)
	tc.cache[key] = entry

	for tc.lru.Len() > tc.config.MaxSize {
		oldest := tc.lru.Back()
		if oldest == nil {
			break
		}
		old := oldest.Value.(*cacheEntry)
		tc.lru.Remove(oldest)
		delete(tc.cache, old.key)
	}
}

// Remove deletes a single entry from the cache
func (tc *TemplateCache) Remove(key string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if entry, exists := tc.cache[key]; exists {
		tc.lru.Remove(entry.element)
		delete(tc.cache, key)
	}
}

// Clear removes all entries from the cache
func (tc *TemplateCache) Clear() {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.cache = make(map[string]*cacheEntry)
	tc.lru.Init()
}

// Len returns the number of cached templates
func (tc *TemplateCache) Len() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return len(tc.cache)
}

func (tc *TemplateCache) entryExpiry() time.Time {
	if tc.config.TTL > 0 {
		return time.Now().Add(tc.config.TTL)
	}
	return time.Time{}
}
