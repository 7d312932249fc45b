package models

// DefaultSystemPrompt is sent to the model when the caller does not supply one
const DefaultSystemPrompt = "You are a helpful medical expert. Provide accurate, " +
	"evidence-based medical information while emphasizing the importance of consulting " +
	"healthcare professionals for diagnosis and treatment."

const (
	// DefaultMaxTokens is the token budget applied when the caller omits max_tokens
	DefaultMaxTokens = 2048
	// MaxTokensLimit caps the token budget; larger requests are clamped, not rejected
	MaxTokensLimit = 4096
)

// Source tags identifying where a response came from
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// MessageInput carries the medical query text and optional attached file references
type MessageInput struct {
	Text  string   `json:"text" validate:"required"`
	Files []string `json:"files"`
}

// QueryRequest represents a request structure for the query endpoint
type QueryRequest struct {
	Message      MessageInput `json:"message" validate:"required"`
	SystemPrompt string       `json:"system_prompt,omitempty"`
	// MaxTokens must be positive when present; values above MaxTokensLimit are clamped
	MaxTokens int    `json:"max_tokens,omitempty" validate:"omitempty,min=1"`
	UserID    string `json:"user_id,omitempty"`
}

// ApplyDefaults fills in the system prompt and token budget and clamps the budget
func (r *QueryRequest) ApplyDefaults() {
	if r.SystemPrompt == "" {
		r.SystemPrompt = DefaultSystemPrompt
	}
	if r.MaxTokens == 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	if r.MaxTokens > MaxTokensLimit {
		r.MaxTokens = MaxTokensLimit
	}
}

// QueryResponse represents the answer returned to the caller
type QueryResponse struct {
	Response       string  `json:"response"`
	Confidence     float64 `json:"confidence"`
	Source         string  `json:"source"`
	ProcessingTime float64 `json:"processing_time"`
	UserID         string  `json:"user_id,omitempty"`
}
