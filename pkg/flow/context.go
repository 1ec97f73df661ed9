package flow

import "sync"

// Context is the shared in-memory state of one flow execution. Steps read
// the keys they need and the engine writes step outputs back under declared
// keys. Safe for concurrent use: fan-out steps and the heartbeat goroutine
// may touch it while a step runs.
type Context struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewContext creates a Context seeded with the given values.
func NewContext(seed map[string]any) *Context {
	values := make(map[string]any, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &Context{values: values}
}

// Get returns the value stored under key.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// GetString returns the string stored under key. False when the key is
// missing or holds a non-string.
func (c *Context) GetString(key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// RequireString returns the string stored under key, or a *ValidationError
// naming the key. The common shape of BindInputs implementations.
func (c *Context) RequireString(key string) (string, error) {
	s, ok := c.GetString(key)
	if !ok || s == "" {
		return "", NewValidationError(key, "required string missing from flow context")
	}
	return s, nil
}

// Set stores value under key, replacing any previous value.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// SetAll stores every entry of values.
func (c *Context) SetAll(values map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range values {
		c.values[k] = v
	}
}

// Snapshot returns a shallow copy of the current values.
func (c *Context) Snapshot() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
