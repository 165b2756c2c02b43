package ai

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TextGenerator is the only capability the gateway needs from a model
// provider. Implementations return *domain.UpstreamError for transport and
// non-success failures.
type TextGenerator interface {
	GenerateText(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

// GeneratorFunc adapts a function to TextGenerator.
type GeneratorFunc func(ctx context.Context, messages []Message, maxTokens int) (string, error)

func (f GeneratorFunc) GenerateText(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	return f(ctx, messages, maxTokens)
}
