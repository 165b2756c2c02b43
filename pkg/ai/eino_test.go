package ai

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/domain"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockChatModel struct {
	reply    string
	err      error
	received []*schema.Message
	options  *model.Options
}

func (m *mockChatModel) Generate(_ context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.received = messages
	m.options = model.GetCommonOptions(nil, opts...)
	if m.err != nil {
		return nil, m.err
	}
	return &schema.Message{Role: schema.Assistant, Content: m.reply}, nil
}

func (m *mockChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

func (m *mockChatModel) BindTools([]*schema.ToolInfo) error { return nil }

func TestEinoGeneratorMapsRolesAndBudget(t *testing.T) {
	cm := &mockChatModel{reply: `["Go"]`}
	g := NewEinoGenerator(cm, 0.7)

	text, err := g.GenerateText(context.Background(), []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "usr"},
	}, 400)
	require.NoError(t, err)

	assert.Equal(t, `["Go"]`, text)
	require.Len(t, cm.received, 2)
	assert.Equal(t, schema.System, cm.received[0].Role)
	assert.Equal(t, schema.User, cm.received[1].Role)
	require.NotNil(t, cm.options.MaxTokens)
	assert.Equal(t, 400, *cm.options.MaxTokens)
}

func TestEinoGeneratorWrapsErrors(t *testing.T) {
	g := NewEinoGenerator(&mockChatModel{err: errors.New("quota")}, 0.7)

	_, err := g.GenerateText(context.Background(), nil, 10)
	var up *domain.UpstreamError
	require.ErrorAs(t, err, &up)
}
