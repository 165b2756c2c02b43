package ai

import (
	"context"
	"errors"

	"resume-builder/internal/domain"

	"google.golang.org/genai"
)

// GeminiGenerator serves TextGenerator from the Gemini API.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, temperature float64) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client, model: model, temperature: float32(temperature)}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	cfg, contents := geminiRequest(messages, maxTokens, g.temperature)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", &domain.UpstreamError{Op: "gemini generate", Err: err}
	}
	return resp.Text(), nil
}

// geminiRequest maps chat turns onto Gemini contents; system turns become
// the system instruction.
func geminiRequest(messages []Message, maxTokens int, temperature float32) (*genai.GenerateContentConfig, []*genai.Content) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: int32(maxTokens),
	}
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			cfg.SystemInstruction = genai.NewContentFromText(m.Content, genai.RoleUser)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return cfg, contents
}
