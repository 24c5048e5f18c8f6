package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"chem-synthesis-be/pkg/llm"
)

const DefaultBaseURL = "https://api.perplexity.ai"

type PerplexityProvider struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
}

// Ensure PerplexityProvider implements Provider
var _ llm.Provider = &PerplexityProvider{}

func NewPerplexityProvider(apiKey, baseURL, modelName string) *PerplexityProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &PerplexityProvider{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type chatRequest struct {
	Model        string        `json:"model"`
	Messages     []chatMessage `json:"messages"`
	SearchFilter string        `json:"search_filter,omitempty"`
	Temperature  float64       `json:"temperature,omitempty"`
	MaxTokens    int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int         `json:"index"`
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// --- Interface Implementation ---

// Chat sends the full message history to the chat-completions endpoint and
// returns the first choice's content. One attempt only, no streaming; the
// whole body is buffered before decoding.
func (p *PerplexityProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if p.APIKey == "" {
		return "", &llm.ErrMissingCredential{Provider: "perplexity"}
	}

	// 1. Process Options
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	// 2. Map generic messages to the vendor format
	messages := make([]chatMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = chatMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	// 3. Prepare Payload
	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := chatRequest{
		Model:        model,
		Messages:     messages,
		SearchFilter: options.SearchFilter,
		Temperature:  options.Temperature,
	}
	if options.MaxTokens > 0 {
		reqPayload.MaxTokens = options.MaxTokens
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	// 4. Send Request
	url := p.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", &llm.ErrTransport{Provider: "perplexity", Cause: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.ErrTransport{Provider: "perplexity", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &llm.ErrUpstream{
			Provider:   "perplexity",
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
		}
	}

	// 5. Parse Response
	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", &llm.ErrMalformedPayload{Provider: "perplexity", Cause: err}
	}
	if len(chatResp.Choices) == 0 {
		return "", &llm.ErrMalformedPayload{Provider: "perplexity", Cause: errors.New("response contained no choices")}
	}

	return chatResp.Choices[0].Message.Content, nil
}

func (p *PerplexityProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	// Reuse Chat for simplicity as most new LLMs are chat-optimized
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
