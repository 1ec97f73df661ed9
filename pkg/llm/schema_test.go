package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseSchema(t *testing.T) {
	s, err := NewResponseSchema("thing", []byte(`{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`))
	require.NoError(t, err)
	assert.Equal(t, "thing", s.Name())
	assert.JSONEq(t, `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`, string(s.Raw()))
}

func TestNewResponseSchema_Errors(t *testing.T) {
	_, err := NewResponseSchema("", []byte(`{}`))
	require.Error(t, err)

	_, err = NewResponseSchema("bad", []byte(`{not json`))
	require.Error(t, err)

	_, err = NewResponseSchema("bad-type", []byte(`{"type": 42}`))
	require.Error(t, err)
}

func TestResponseSchema_ValidateJSON(t *testing.T) {
	s := MustResponseSchema("person", []byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer", "minimum": 0}
		},
		"required": ["name"],
		"additionalProperties": false
	}`))

	value, err := s.ValidateJSON([]byte(`{"name": "Ada", "age": 36}`))
	require.NoError(t, err)
	doc, ok := value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", doc["name"])

	_, err = s.ValidateJSON([]byte(`{"age": 36}`))
	assert.Error(t, err, "missing required property")

	_, err = s.ValidateJSON([]byte(`{"name": "Ada", "age": -1}`))
	assert.Error(t, err, "minimum violated")

	_, err = s.ValidateJSON([]byte(`{"name": "Ada", "extra": true}`))
	assert.Error(t, err, "additional properties rejected")

	_, err = s.ValidateJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestMustResponseSchema_PanicsOnBadDocument(t *testing.T) {
	assert.Panics(t, func() {
		MustResponseSchema("broken", []byte(`{`))
	})
}
