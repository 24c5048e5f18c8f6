package perplexity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chem-synthesis-be/pkg/llm"
)

func TestChatSuccess(t *testing.T) {
	var gotRequest chatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "resp-1",
			"model": "sonar",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "**Article 1: Citation**"}}]
		}`))
	}))
	defer server.Close()

	provider := NewPerplexityProvider("test-key", server.URL, "sonar")

	history := []llm.Message{
		{Role: "system", Content: "You are an organic chemist."},
		{Role: "user", Content: "Find syntheses for CAS 64-17-5"},
	}
	content, err := provider.Chat(context.Background(), history, llm.WithSearchFilter("academic"))

	require.NoError(t, err)
	assert.Equal(t, "**Article 1: Citation**", content)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "sonar", gotRequest.Model)
	assert.Equal(t, "academic", gotRequest.SearchFilter)
	require.Len(t, gotRequest.Messages, 2)
	assert.Equal(t, "system", gotRequest.Messages[0].Role)
	assert.Equal(t, "user", gotRequest.Messages[1].Role)
}

func TestChatMissingCredentialSkipsNetwork(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	provider := NewPerplexityProvider("", server.URL, "sonar")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	var credErr *llm.ErrMissingCredential
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, 0, calls, "no outbound call may happen without a credential")
}

func TestChatUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "overloaded"}`))
	}))
	defer server.Close()

	provider := NewPerplexityProvider("test-key", server.URL, "sonar")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	var upstreamErr *llm.ErrUpstream
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 503, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Body, "overloaded")
	assert.Contains(t, upstreamErr.Error(), "503")
}

func TestChatTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	provider := NewPerplexityProvider("test-key", server.URL, "sonar")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	var transportErr *llm.ErrTransport
	require.ErrorAs(t, err, &transportErr)
}

func TestChatMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>gateway</html>"},
		{name: "no choices", body: `{"id": "resp-1", "model": "sonar", "choices": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			provider := NewPerplexityProvider("test-key", server.URL, "sonar")

			_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

			var payloadErr *llm.ErrMalformedPayload
			require.ErrorAs(t, err, &payloadErr)
		})
	}
}

func TestChatMapsModelRoleToAssistant(t *testing.T) {
	var gotRequest chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`))
	}))
	defer server.Close()

	provider := NewPerplexityProvider("test-key", server.URL, "sonar")

	_, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "question"},
		{Role: "model", Content: "previous reply"},
	})

	require.NoError(t, err)
	require.Len(t, gotRequest.Messages, 2)
	assert.Equal(t, "assistant", gotRequest.Messages[1].Role)
}

func TestGenerateWrapsChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "reply"}}]}`))
	}))
	defer server.Close()

	provider := NewPerplexityProvider("test-key", server.URL, "sonar")

	content, err := provider.Generate(context.Background(), "single prompt")
	require.NoError(t, err)
	assert.Equal(t, "reply", content)
}

func TestDefaultBaseURLAndTimeout(t *testing.T) {
	provider := NewPerplexityProvider("key", "", "sonar")
	assert.Equal(t, DefaultBaseURL, provider.BaseURL)
	assert.Equal(t, 60.0, provider.Client.Timeout.Seconds())
}
