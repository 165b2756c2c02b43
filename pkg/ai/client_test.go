package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resume-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGenerateText(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"first"}},{"message":{"content":"second"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "test-key", "mixtral-8x7b-32768", 0.7, 5*time.Second, 1)
	text, err := c.GenerateText(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 500)
	require.NoError(t, err)

	assert.Equal(t, "first", text)
	assert.Equal(t, "mixtral-8x7b-32768", got.Model)
	assert.Equal(t, 500, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "hi"}}, got.Messages)
}

func TestClientNonSuccessStatus(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m", 0.7, 5*time.Second, 3)
	_, err := c.GenerateText(context.Background(), nil, 10)

	var up *domain.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, http.StatusTooManyRequests, up.Status)
	assert.Equal(t, 1, calls, "status errors are not retried")
}

func TestClientEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	text, err := NewClient(srv.URL, "", "m", 0.7, time.Second, 1).GenerateText(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "", "m", 0.7, time.Second, 1).GenerateText(context.Background(), nil, 10)
	var up *domain.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Zero(t, up.Status)
}
