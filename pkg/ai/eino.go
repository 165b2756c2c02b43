package ai

import (
	"context"
	"errors"

	"resume-builder/internal/domain"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// EinoGenerator adapts any eino chat model to TextGenerator.
type EinoGenerator struct {
	model       model.ChatModel
	temperature float32
}

func NewEinoGenerator(m model.ChatModel, temperature float64) *EinoGenerator {
	return &EinoGenerator{model: m, temperature: float32(temperature)}
}

func (g *EinoGenerator) GenerateText(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	msgs := make([]*schema.Message, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, schema.SystemMessage(m.Content))
		case RoleAssistant:
			msgs = append(msgs, schema.AssistantMessage(m.Content, nil))
		default:
			msgs = append(msgs, schema.UserMessage(m.Content))
		}
	}

	out, err := g.model.Generate(ctx, msgs,
		model.WithMaxTokens(maxTokens),
		model.WithTemperature(g.temperature),
	)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", &domain.UpstreamError{Op: "eino generate", Err: err}
	}
	if out == nil {
		return "", nil
	}
	return out.Content, nil
}
