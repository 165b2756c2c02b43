package ai

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
}

func (m *mapCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (m *mapCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mapCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type countingGenerator struct {
	calls int
	reply string
}

func (c *countingGenerator) GenerateText(context.Context, []Message, int) (string, error) {
	c.calls++
	return c.reply, nil
}

func TestCachedServesRepeatsFromBackend(t *testing.T) {
	gen := &countingGenerator{reply: "cached text"}
	backend := &mapCache{data: map[string]string{}}
	c := NewCached(gen, backend, "groq", time.Hour)

	msgs := []Message{{Role: RoleUser, Content: "summarize"}}
	for i := 0; i < 3; i++ {
		text, err := c.GenerateText(context.Background(), msgs, 500)
		require.NoError(t, err)
		assert.Equal(t, "cached text", text)
	}
	assert.Equal(t, 1, gen.calls)

	// a different budget is a different key
	_, err := c.GenerateText(context.Background(), msgs, 400)
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls)
}

func TestCachedIgnoresBackendFailure(t *testing.T) {
	gen := &countingGenerator{reply: "fresh"}
	c := NewCached(gen, &mapCache{data: map[string]string{}, getErr: errors.New("redis down")}, "groq", time.Minute)

	text, err := c.GenerateText(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.Equal(t, "fresh", text)
}

func TestCachedSkipsEmptyReplies(t *testing.T) {
	gen := &countingGenerator{}
	backend := &mapCache{data: map[string]string{}}
	c := NewCached(gen, backend, "groq", time.Minute)

	_, _ = c.GenerateText(context.Background(), nil, 10)
	_, _ = c.GenerateText(context.Background(), nil, 10)
	assert.Equal(t, 2, gen.calls)
	assert.Empty(t, backend.data)
}

func TestGatewayDropsRepliesThatOnlyYieldFallbacks(t *testing.T) {
	gen := &countingGenerator{reply: "I cannot analyze this"}
	backend := &mapCache{data: map[string]string{}}
	g := NewGateway(NewCached(gen, backend, "groq", time.Hour))

	m, err := g.AnalyzeJobMatch(context.Background(), nil, "Go developer")
	require.NoError(t, err)
	assert.True(t, m.Degraded)
	assert.Empty(t, backend.data)

	s, err := g.SuggestSkills(context.Background(), nil, "Go developer")
	require.NoError(t, err)
	assert.True(t, s.Degraded)
	assert.Empty(t, backend.data)

	// the next identical request reaches the model again
	gen.reply = `{"matchScore": 64}`
	m, err = g.AnalyzeJobMatch(context.Background(), nil, "Go developer")
	require.NoError(t, err)
	assert.False(t, m.Degraded)
	assert.Equal(t, 64, m.MatchScore)
	assert.Equal(t, 3, gen.calls)
	assert.Len(t, backend.data, 1)
}
