package content

import (
	"encoding/json"
	"fmt"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
)

// contextValue reads key from the flow context as a T. Values arrive typed
// when an earlier step in this process wrote them, or as generic JSON
// documents when the context was seeded from persisted inputs; the JSON
// round-trip handles both.
func contextValue[T any](fc *flow.Context, key string) (T, error) {
	var zero T
	v, ok := fc.Get(key)
	if !ok {
		return zero, flow.NewValidationError(key, "missing from flow context")
	}
	return convertValue[T](key, v)
}

// optionalValue is contextValue for keys that may legitimately be absent.
func optionalValue[T any](fc *flow.Context, key string) (T, bool, error) {
	var zero T
	v, ok := fc.Get(key)
	if !ok {
		return zero, false, nil
	}
	out, err := convertValue[T](key, v)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

func convertValue[T any](key string, v any) (T, error) {
	var zero T
	if typed, ok := v.(T); ok {
		return typed, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return zero, flow.NewValidationError(key, fmt.Sprintf("not convertible: %v", err))
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return zero, flow.NewValidationError(key, fmt.Sprintf("unexpected shape: %v", err))
	}
	return *out, nil
}

func temperature(v float64) *float64 {
	return &v
}

// Sampling temperatures. Structured extraction runs cold so results are
// cacheable and stable; learner-facing prose runs warmer.
const (
	tempStructured = 0.2
	tempCreative   = 0.7
)
