package bot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/lan-twttr/lantwttr/pkg/internal/models"
)

// Client talks to the feed server over its public HTTP surface; the bot has
// no privileged path into the store.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (v *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		return fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, body)
	}

	return jsoniter.Unmarshal(body, out)
}

func (v *Client) post(ctx context.Context, path string, payload any, expected int) error {
	raw, err := jsoniter.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != expected {
		return fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, body)
	}

	return nil
}

func (v *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := v.get(ctx, "/api/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (v *Client) CreatePost(ctx context.Context, author, text string, replyTo, quoteOf *uint) error {
	payload := map[string]any{
		"author": author,
		"text":   text,
	}
	if replyTo != nil {
		payload["replyTo"] = *replyTo
	}
	if quoteOf != nil {
		payload["quoteOf"] = *quoteOf
	}

	return v.post(ctx, "/api/posts", payload, fiber.StatusCreated)
}

func (v *Client) ListPersonas(ctx context.Context) ([]models.Persona, error) {
	var personas []models.Persona
	if err := v.get(ctx, "/api/personas", &personas); err != nil {
		return nil, err
	}
	return personas, nil
}

func (v *Client) GetSystemPrompt(ctx context.Context) (string, error) {
	var data struct {
		SystemPrompt string `json:"system_prompt"`
	}
	if err := v.get(ctx, "/api/system_prompt", &data); err != nil {
		return "", err
	}
	return data.SystemPrompt, nil
}

func (v *Client) RecordUsage(ctx context.Context, record models.TokenUsageRecord) error {
	return v.post(ctx, "/api/token_usage", record, fiber.StatusCreated)
}
