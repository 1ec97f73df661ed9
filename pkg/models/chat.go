// Package models holds the domain value types shared across the service:
// chat messages sent to the LLM provider, learning objectives, unit plans,
// and the versioned lesson package. These types are stored as JSON columns
// by the persistence layer and must stay free of persistence imports.
package models

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn of a provider conversation. Content carries plain
// text; Parts is set instead when the message mixes text and image inputs.
type ChatMessage struct {
	Role    Role          `json:"role"`
	Content string        `json:"content,omitempty"`
	Parts   []ContentPart `json:"parts,omitempty"`
}

// ContentPart is a single fragment of a multimodal message.
type ContentPart struct {
	Type     string `json:"type"` // "text" or "image_url"
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// TokenUsage reports provider token accounting for one request.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}
