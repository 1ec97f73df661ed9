package llm

import (
	"context"
	"time"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// Recorder persists the llm_requests audit trail. The gateway calls
// BeginRequest before contacting the provider and exactly one of
// CompleteRequest/FailRequest afterwards. Implementations must tolerate
// being called with a short-deadline background context.
type Recorder interface {
	// BeginRequest creates a pending audit row and returns its id.
	BeginRequest(ctx context.Context, rec RequestRecord) (string, error)

	// CompleteRequest marks the row completed with the final response.
	CompleteRequest(ctx context.Context, id string, rec CompletionRecord) error

	// FailRequest marks the row failed with the final error.
	FailRequest(ctx context.Context, id string, rec FailureRecord) error
}

// RequestRecord is the request side of an audit row, captured before the
// provider is contacted.
type RequestRecord struct {
	Variant         string
	Provider        string
	Model           string
	Messages        []models.ChatMessage
	RequestPayload  map[string]any
	Temperature     *float64
	MaxOutputTokens *int
	Scope           Scope
}

// CompletionRecord is the success side of an audit row.
type CompletionRecord struct {
	Content            string
	ResponseRaw        map[string]any
	ProviderResponseID string
	SystemFingerprint  string
	Usage              models.TokenUsage
	CostEstimate       float64
	RetryAttempt       int
	Cached             bool
	ExecutionTimeMS    int
	ResponseCreatedAt  time.Time
}

// FailureRecord is the failure side of an audit row. Content carries the
// provider output when the failure happened after a response arrived
// (schema validation), so the invalid document stays inspectable.
type FailureRecord struct {
	ErrorType       ErrorType
	ErrorMessage    string
	RetryAttempt    int
	ExecutionTimeMS int
	Content         string
	ResponseRaw     map[string]any
}
