// Package llm provides the chat-completion client with per-component
// provider routing and JSON-schema enforcement of structured responses.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/metrics"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Role constants for chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client routes completion calls to the provider configured for each
// component. Stateless and safe for concurrent use.
type Client struct {
	registry   *config.LLMProviderRegistry
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the routing LLM client.
func NewClient(registry *config.LLMProviderRegistry, logger *slog.Logger) *Client {
	return &Client{
		registry:   registry,
		httpClient: &http.Client{},
		logger:     logger.With("component", "llm"),
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"`
	MaxTokens      *int            `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete runs one chat completion against the provider routed for the
// component. Transient failures are retried with capped exponential
// backoff.
func (c *Client) Complete(ctx context.Context, component string, messages []Message) (string, error) {
	return c.complete(ctx, component, messages, false)
}

// CompleteJSON runs a completion with JSON response format requested.
func (c *Client) CompleteJSON(ctx context.Context, component string, messages []Message) (string, error) {
	return c.complete(ctx, component, messages, true)
}

func (c *Client) complete(ctx context.Context, component string, messages []Message, jsonMode bool) (string, error) {
	provider, err := c.registry.Route(component)
	if err != nil {
		return "", err
	}

	var result string
	operation := func() error {
		content, err := c.completeOnce(ctx, provider, messages, jsonMode)
		if err != nil {
			return err
		}
		result = content
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 60 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		metrics.LLMRequests.WithLabelValues(component, "error").Inc()
		return "", fmt.Errorf("%w: llm provider for %s: %v", services.ErrExternalUnavailable, component, err)
	}
	metrics.LLMRequests.WithLabelValues(component, "success").Inc()
	return result, nil
}

func (c *Client) completeOnce(ctx context.Context, provider *config.LLMProviderConfig, messages []Message, jsonMode bool) (string, error) {
	reqBody := chatRequest{
		Model:       provider.Model,
		Messages:    messages,
		Temperature: provider.Temperature,
		MaxTokens:   provider.MaxTokens,
	}
	if jsonMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("failed to marshal chat request: %w", err))
	}

	callCtx := ctx
	if provider.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, provider.Timeout)
		defer cancel()
	}

	url := strings.TrimSuffix(provider.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("failed to build chat request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if provider.APIKeyEnv != "" {
		if key := os.Getenv(provider.APIKeyEnv); key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr chatErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			err = fmt.Errorf("chat API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		} else {
			err = fmt.Errorf("chat API error: status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return "", backoff.Permanent(err)
		}
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
