package bot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFeed is a minimal stand-in for the feed server's public API.
type fakeFeed struct {
	posts   []map[string]any
	created []map[string]any
	usage   []map[string]any
}

func (v *fakeFeed) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/personas", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "name": "TechOptimist", "prompt": "You are cheerful."},
		})
	})
	mux.HandleFunc("GET /api/system_prompt", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"system_prompt": "Conversation:\n{context}\nAnswer in the ACTION/ID/CONTENT format.",
		})
	})
	mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(v.posts)
	})
	mux.HandleFunc("POST /api/posts", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &payload)
		v.created = append(v.created, payload)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload)
	})
	mux.HandleFunc("POST /api/token_usage", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &payload)
		v.usage = append(v.usage, payload)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload)
	})

	return mux
}

func fakeCompletion(t *testing.T, decision string, prompts *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload struct {
			Model    string        `json:"model"`
			Messages []ChatMessage `json:"messages"`
		}
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &payload))
		if prompts != nil && len(payload.Messages) > 0 {
			*prompts = append(*prompts, payload.Messages[0].Content)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": decision}},
			},
			"usage": map[string]any{"prompt_tokens": 100, "completion_tokens": 25, "total_tokens": 125},
		})
	}))
}

func newTestAgent(feedURL, llmURL string) *Agent {
	return &Agent{
		Client:   NewClient(feedURL),
		Provider: NewProvider(llmURL, "test-key", "test-model"),
	}
}

func TestRunPostsReply(t *testing.T) {
	feed := &fakeFeed{posts: []map[string]any{
		{"id": 3, "author": "alice", "text": "anyone here?"},
	}}
	feedSrv := httptest.NewServer(feed.handler())
	defer feedSrv.Close()

	var prompts []string
	llm := fakeCompletion(t, "ACTION: REPLY\nID: 3\nCONTENT: I am!", &prompts)
	defer llm.Close()

	agent := newTestAgent(feedSrv.URL, llm.URL)
	require.NoError(t, agent.Run(context.Background()))

	require.Len(t, feed.created, 1)
	assert.Equal(t, "TechOptimist", feed.created[0]["author"])
	assert.Equal(t, "I am!", feed.created[0]["text"])
	assert.EqualValues(t, 3, feed.created[0]["replyTo"])
	assert.NotContains(t, feed.created[0], "quoteOf")

	// The persona prompt and the rendered timeline both reach the model.
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "You are cheerful.")
	assert.Contains(t, prompts[0], `Tweet (ID 3) by @alice: "anyone here?"`)
	assert.NotContains(t, prompts[0], "{context}")

	require.Len(t, feed.usage, 1)
	assert.EqualValues(t, 125, feed.usage[0]["total_tokens"])
	assert.Equal(t, "TechOptimist", feed.usage[0]["persona"])
}

func TestRunDegradesReplyWithoutTarget(t *testing.T) {
	feed := &fakeFeed{}
	feedSrv := httptest.NewServer(feed.handler())
	defer feedSrv.Close()

	llm := fakeCompletion(t, "ACTION: REPLY\nID: 0\nCONTENT: shouting into the void", nil)
	defer llm.Close()

	agent := newTestAgent(feedSrv.URL, llm.URL)
	require.NoError(t, agent.Run(context.Background()))

	require.Len(t, feed.created, 1)
	assert.NotContains(t, feed.created[0], "replyTo")
	assert.NotContains(t, feed.created[0], "quoteOf")
}

func TestRunQuote(t *testing.T) {
	feed := &fakeFeed{posts: []map[string]any{
		{"id": 5, "author": "bob", "text": "hot take"},
	}}
	feedSrv := httptest.NewServer(feed.handler())
	defer feedSrv.Close()

	llm := fakeCompletion(t, "ACTION: QUOTE\nID: 5\nCONTENT: imagine believing this", nil)
	defer llm.Close()

	agent := newTestAgent(feedSrv.URL, llm.URL)
	require.NoError(t, agent.Run(context.Background()))

	require.Len(t, feed.created, 1)
	assert.EqualValues(t, 5, feed.created[0]["quoteOf"])
	assert.NotContains(t, feed.created[0], "replyTo")
}

func TestRunFailsOnUnparsableDecision(t *testing.T) {
	feed := &fakeFeed{}
	feedSrv := httptest.NewServer(feed.handler())
	defer feedSrv.Close()

	llm := fakeCompletion(t, "I refuse to follow formats today.", nil)
	defer llm.Close()

	agent := newTestAgent(feedSrv.URL, llm.URL)
	assert.Error(t, agent.Run(context.Background()))
	assert.Empty(t, feed.created)
}

func TestProviderRequiresKey(t *testing.T) {
	provider := NewProvider("", "", "test-model")
	_, _, err := provider.Decide(context.Background(), "hello")
	assert.Error(t, err)
}
