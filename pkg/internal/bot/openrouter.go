package bot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatUsage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *ChatUsage `json:"usage"`
}

// Provider is a thin client for an OpenAI-compatible chat completions
// endpoint (OpenRouter by default).
type Provider struct {
	Endpoint string
	Key      string
	Model    string

	client *http.Client
}

func NewProvider(endpoint, key, model string) *Provider {
	if len(endpoint) == 0 {
		endpoint = DefaultEndpoint
	}

	return &Provider{
		Endpoint: endpoint,
		Key:      key,
		Model:    model,
		client:   &http.Client{Timeout: 2 * time.Minute},
	}
}

// Decide sends the rendered prompt and returns the model's raw decision text
// together with the reported token usage (nil when the provider omits it).
func (v *Provider) Decide(ctx context.Context, prompt string) (string, *ChatUsage, error) {
	if len(v.Key) == 0 {
		return "", nil, fmt.Errorf("no api key configured")
	}

	raw, err := jsoniter.Marshal(map[string]any{
		"model": v.Model,
		"messages": []ChatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+v.Key)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := v.client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("failed to request completion: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		return "", nil, fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, body)
	}

	var data chatResponse
	if err := jsoniter.Unmarshal(body, &data); err != nil {
		return "", nil, fmt.Errorf("failed to parse completion JSON: %v", err)
	}
	if len(data.Choices) == 0 {
		return "", nil, fmt.Errorf("completion response contains no choices")
	}

	return data.Choices[0].Message.Content, data.Usage, nil
}
