package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ptable_errors "github.com/Darshan-Yash/Periodic-table/pkg/errors"
)

func TestChatCompletion(t *testing.T) {
	var gotAuth, gotReferer string
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotReferer = r.Header.Get("HTTP-Referer")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Hydrogen is the lightest element."}}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Model:   "openai/gpt-3.5-turbo",
		Referer: "https://example.com",
	})

	answer, err := client.ChatCompletion(context.Background(), "system prompt", "what is hydrogen?")
	require.NoError(t, err)

	assert.Equal(t, "Hydrogen is the lightest element.", answer)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "https://example.com", gotReferer)
	assert.Equal(t, "openai/gpt-3.5-turbo", gotBody.Model)
	assert.Equal(t, 500, gotBody.MaxTokens)
	assert.InDelta(t, 0.7, gotBody.Temperature, 1e-9)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, "what is hydrogen?", gotBody.Messages[1].Content)
}

func TestChatCompletionMissingAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	_, err := client.ChatCompletion(context.Background(), "system", "question")
	assert.ErrorIs(t, err, ptable_errors.ErrMisconfigured)
	assert.False(t, called, "no outbound call should be attempted without a key")
}

func TestChatCompletionUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.ChatCompletion(context.Background(), "system", "question")
	assert.ErrorIs(t, err, ptable_errors.ErrUpstream)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestChatCompletionTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
	})

	_, err := client.ChatCompletion(context.Background(), "system", "question")
	assert.ErrorIs(t, err, ptable_errors.ErrUpstreamTimeout)
}

func TestChatCompletionUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(ClientConfig{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.ChatCompletion(context.Background(), "system", "question")
	assert.ErrorIs(t, err, ptable_errors.ErrUpstream)
}

func TestChatCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.ChatCompletion(context.Background(), "system", "question")
	assert.ErrorIs(t, err, ptable_errors.ErrUpstream)
}
