package llm

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ResponseSchema is a named JSON schema constraining structured output. The
// raw document is sent to the provider as the response_format contract and
// compiled once for local validation of what comes back.
type ResponseSchema struct {
	name     string
	raw      json.RawMessage
	compiled *jsonschema.Schema
}

// NewResponseSchema compiles a named JSON schema document.
func NewResponseSchema(name string, raw []byte) (*ResponseSchema, error) {
	if name == "" {
		return nil, fmt.Errorf("schema name is required")
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schema %s is not valid JSON: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	resource := name + ".json"
	if err := compiler.AddResource(resource, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema %s: %w", name, err)
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	return &ResponseSchema{
		name:     name,
		raw:      json.RawMessage(raw),
		compiled: compiled,
	}, nil
}

// MustResponseSchema compiles a named JSON schema document and panics on
// error. For package-level schema declarations.
func MustResponseSchema(name string, raw []byte) *ResponseSchema {
	s, err := NewResponseSchema(name, raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name sent to the provider.
func (s *ResponseSchema) Name() string { return s.name }

// Raw returns the raw schema document.
func (s *ResponseSchema) Raw() json.RawMessage { return s.raw }

// ValidateJSON parses data and validates it against the schema, returning
// the decoded value.
func (s *ResponseSchema) ValidateJSON(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if err := s.compiled.Validate(value); err != nil {
		return nil, fmt.Errorf("response does not match schema %s: %w", s.name, err)
	}
	return value, nil
}
