package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/metrics"
)

const defaultTimeout = 120 * time.Second

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string
	Content string
}

// Chat message roles understood by the provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request describes a single completion call.
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature float32
	// JSONMode asks the provider to constrain output to a JSON object where
	// supported. Callers must still validate the payload; not every model
	// honors the constraint.
	JSONMode bool
}

// Client is the outbound interface to the chat-completion provider.
// Exactly one call is made per request; retries are left to the caller.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// OpenAIClient calls an OpenAI-compatible chat-completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a client for an OpenAI-compatible endpoint.
// baseURL selects the provider (e.g. OpenRouter); model is the provider's
// model identifier.
func NewOpenAIClient(apiKey, model, baseURL string, timeout time.Duration) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete sends one chat-completion request and returns the raw completion text.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("%w: no messages to send", domain.ErrInvalidInput)
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(req.Messages),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	metrics.ObserveLLMRequest(c.model, time.Since(start), err)
	if err != nil {
		return "", classifyProviderError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: provider returned no choices", domain.ErrUpstreamUnavailable)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: provider returned an empty completion", domain.ErrUpstreamUnavailable)
	}

	return content, nil
}

// toOpenAIMessages converts provider-neutral messages to the wire type.
func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

// classifyProviderError maps transport/provider failures onto domain error
// kinds using the structured status code, never the error message text.
func classifyProviderError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrCancelled, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%w: %s", domain.ErrRateLimited, apiErr.Message)
		}
		return fmt.Errorf("%w: provider returned status %d: %s",
			domain.ErrUpstreamUnavailable, apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%w: %v", domain.ErrRateLimited, reqErr.Err)
		}
		return fmt.Errorf("%w: provider returned status %d: %v",
			domain.ErrUpstreamUnavailable, reqErr.HTTPStatusCode, reqErr.Err)
	}

	return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
}
