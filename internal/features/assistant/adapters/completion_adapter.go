package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shipment-risk-assistant/internal/core/httpclient"
)

// CompletionAdapter implements the TextCompletion interface against an
// OpenAI-compatible chat-completions endpoint.
type CompletionAdapter struct {
	client   *http.Client
	endpoint string
	apiKey   string
	model    string
}

// NewCompletionAdapter creates a new CompletionAdapter.
func NewCompletionAdapter(endpoint, apiKey, model string, timeout time.Duration) *CompletionAdapter {
	return &CompletionAdapter{
		client:   httpclient.NewClient(timeout),
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete substitutes {{$name}} variables into the prompt, sends it as a
// single user message, and returns the model's text.
func (a *CompletionAdapter) Complete(ctx context.Context, prompt string, variables map[string]string) (string, error) {
	for name, value := range variables {
		prompt = strings.ReplaceAll(prompt, "{{$"+name+"}}", value)
	}

	body, err := json.Marshal(chatRequest{
		Model:    a.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		if httpclient.IsTimeout(err) {
			return "", fmt.Errorf("completion service: %w", httpclient.ErrTimeout)
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned status: %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return chat.Choices[0].Message.Content, nil
}
