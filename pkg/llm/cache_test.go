package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

func TestMemoryCache_EvictsOldestWhenFull(t *testing.T) {
	c := NewMemoryCache(2)

	c.Put("a", &CachedResponse{Content: "1"})
	c.Put("b", &CachedResponse{Content: "2"})
	c.Put("c", &CachedResponse{Content: "3"})

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should be evicted")
	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", got.Content)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestMemoryCache_OverwriteDoesNotGrow(t *testing.T) {
	c := NewMemoryCache(2)

	c.Put("a", &CachedResponse{Content: "1"})
	c.Put("a", &CachedResponse{Content: "updated"})
	c.Put("b", &CachedResponse{Content: "2"})

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "updated", got.Content)
	_, ok = c.Get("b")
	assert.True(t, ok)
}

func TestCacheKey_SensitiveToRequestShape(t *testing.T) {
	temp := 0.0
	base := CompletionRequest{
		Model:       "gpt-4o-mini",
		Messages:    []models.ChatMessage{{Role: models.RoleUser, Content: "hello"}},
		Temperature: &temp,
	}

	key := cacheKey("openai", VariantChat, base)
	require.NotEmpty(t, key)
	assert.Equal(t, key, cacheKey("openai", VariantChat, base), "same request hashes the same")

	variants := map[string]CompletionRequest{}
	other := base
	other.Model = "gpt-4o"
	variants["model"] = other

	other = base
	other.Messages = []models.ChatMessage{{Role: models.RoleUser, Content: "goodbye"}}
	variants["messages"] = other

	other = base
	hotter := 0.2
	other.Temperature = &hotter
	variants["temperature"] = other

	other = base
	other.MaxOutputTokens = 100
	variants["max tokens"] = other

	for name, req := range variants {
		assert.NotEqual(t, key, cacheKey("openai", VariantChat, req), "changing %s should change the key", name)
	}

	assert.NotEqual(t, key, cacheKey("other", VariantChat, base), "provider is part of the key")
	assert.NotEqual(t, key, cacheKey("openai", VariantStructured, base), "variant is part of the key")
}

func TestCacheKey_IncludesSchemaDocument(t *testing.T) {
	temp := 0.0
	req := CompletionRequest{
		Model:       "gpt-4o-mini",
		Messages:    []models.ChatMessage{{Role: models.RoleUser, Content: "extract"}},
		Temperature: &temp,
	}

	withSchema := req
	withSchema.Schema = titleSchema
	keyA := cacheKey("openai", VariantStructured, req)
	keyB := cacheKey("openai", VariantStructured, withSchema)
	assert.NotEqual(t, keyA, keyB)

	// A schema with the same name but a different document busts the key.
	evolved := MustResponseSchema("title_doc", []byte(`{
		"type": "object",
		"properties": {"title": {"type": "string"}, "subtitle": {"type": "string"}},
		"required": ["title"],
		"additionalProperties": false
	}`))
	withEvolved := req
	withEvolved.Schema = evolved
	assert.NotEqual(t, keyB, cacheKey("openai", VariantStructured, withEvolved))
}

func TestMemoryCache_ManyEntriesStayBounded(t *testing.T) {
	c := NewMemoryCache(8).(*memoryCache)
	for i := 0; i < 100; i++ {
		c.Put(fmt.Sprintf("key-%d", i), &CachedResponse{Content: "x"})
	}
	assert.LessOrEqual(t, len(c.entries), 8)
	assert.LessOrEqual(t, len(c.order), 8)
}
