package condmark

// Engine provides the main API for processing templates with a shared
// configuration and prepared-template cache. Use New() to create an engine
// instance; the package-level Process function is equivalent to an engine
// with the global configuration and no cache reuse guarantees.
type Engine struct {
	config *Config
	cache  *TemplateCache
}

// New creates a new engine with the global configuration and the shared
// default cache.
func New() *Engine {
	return &Engine{
		config: GetGlobalConfig(),
		cache:  defaultCache,
	}
}

// NewWithConfig creates a new engine with a custom configuration and its
// own cache.
func NewWithConfig(config *Config) *Engine {
	return &Engine{
		config: config,
		cache: NewTemplateCacheWithConfig(CacheConfig{
			MaxSize: config.CacheMaxSize,
			TTL:     config.CacheTTL,
		}),
	}
}

// Prepare parses a template, consulting the engine's cache when caching is
// enabled. Parsing uses the global nesting ceiling; per-engine ceilings
// would need the cache to key on depth as well.
func (e *Engine) Prepare(template string) *PreparedTemplate {
	if e.config.CacheMaxSize > 0 && e.cache != nil {
		return e.cache.Prepare(template)
	}
	return Prepare(template)
}

// Process rewrites a template against the given data mapping, reusing the
// cached parse when the same template text has been processed before.
func (e *Engine) Process(template string, data TemplateData) string {
	return e.Prepare(template).Render(data)
}

// Config returns the engine's configuration
func (e *Engine) Config() *Config {
	return e.config
}

// SetConfig updates the engine's configuration.
// Note that the cache keeps the size it was created with.
func (e *Engine) SetConfig(config *Config) {
	e.config = config
}

// ClearCache removes all templates from the engine's cache
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
	}
}
