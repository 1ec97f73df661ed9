package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// CachedResponse is the replayable part of a completed call.
type CachedResponse struct {
	Content            string
	Model              string
	Usage              models.TokenUsage
	ProviderResponseID string
	SystemFingerprint  string
}

// Cache is the in-process response cache. Only non-media calls at or below
// the configured temperature threshold are cached.
type Cache interface {
	Get(key string) (*CachedResponse, bool)
	Put(key string, resp *CachedResponse)
}

// memoryCache is a bounded map with insertion-order eviction. Good enough
// for a single process; the audit trail stays authoritative either way.
type memoryCache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]*CachedResponse
	order      []string
}

// NewMemoryCache creates a bounded in-memory cache.
func NewMemoryCache(maxEntries int) Cache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &memoryCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*CachedResponse),
	}
}

func (c *memoryCache) Get(key string) (*CachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	resp, ok := c.entries[key]
	return resp, ok
}

func (c *memoryCache) Put(key string, resp *CachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = resp
	for len(c.entries) > c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// cacheKeyPayload fixes the field order so the canonical JSON is stable.
type cacheKeyPayload struct {
	Provider        string               `json:"provider"`
	Model           string               `json:"model"`
	Variant         string               `json:"variant"`
	Messages        []models.ChatMessage `json:"messages"`
	Temperature     *float64             `json:"temperature"`
	MaxOutputTokens int                  `json:"max_output_tokens"`
	SchemaName      string               `json:"schema_name,omitempty"`
	SchemaDoc       string               `json:"schema_doc,omitempty"`
}

// cacheKey derives the cache key from everything that shapes the response,
// schema document included, so schema evolution busts stale entries.
func cacheKey(provider, variant string, req CompletionRequest) string {
	payload := cacheKeyPayload{
		Provider:        provider,
		Model:           req.Model,
		Variant:         variant,
		Messages:        req.Messages,
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.Schema != nil {
		payload.SchemaName = req.Schema.Name()
		sum := sha256.Sum256(req.Schema.Raw())
		payload.SchemaDoc = hex.EncodeToString(sum[:])
	}
	data, err := json.Marshal(payload)
	if err != nil {
		// Marshal of plain structs cannot fail; treat as uncacheable.
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
