package enrich_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/starlens/internal/enrich"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/stars"
)

func testRecords() []stars.Record {
	return []stars.Record{
		{FullName: "spf13/cobra", Language: "Go", StarredAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{FullName: "psf/requests", Language: "Python", StarredAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{FullName: "cli/cli", Language: "Go", Topics: []string{"cli"}, Stars: 37000, StarredAt: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}
}

// userContent pulls the user message out of a chat completion request body.
func userContent(t *testing.T, r *http.Request) string {
	t.Helper()
	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	return req.Messages[1].Content
}

// fullName extracts the tagged repository name from a user message.
func fullName(content string) string {
	const openTag, closeTag = "<full_name> ", " </full_name>"
	start := strings.Index(content, openTag)
	end := strings.Index(content, closeTag)
	if start < 0 || end < 0 {
		return ""
	}
	return content[start+len(openTag) : end]
}

// completion builds a chat completion response whose assistant message is
// the given raw content.
func completion(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			},
		},
	})
	return string(body)
}

func newEnricher(t *testing.T, baseURL string, opts ...enrich.Option) *enrich.Enricher {
	t.Helper()
	opts = append([]enrich.Option{
		enrich.WithAPIKey("test-key"),
		enrich.WithBaseURL(baseURL),
		enrich.WithModel("test-model"),
	}, opts...)
	e, err := enrich.New(opts...)
	require.NoError(t, err)
	return e
}

func TestHighlights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		name := fullName(userContent(t, r))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completion(fmt.Sprintf(`{"summary":"About %s"}`, name)))
	}))
	defer srv.Close()

	e := newEnricher(t, srv.URL, enrich.WithCount(2))

	highlights, err := e.Highlights(context.Background(), testRecords())
	require.NoError(t, err)
	require.Len(t, highlights, 2)

	// Newest stars first, capped at the configured count.
	assert.Equal(t, "cli/cli", highlights[0].Name)
	assert.Equal(t, "https://github.com/cli/cli", highlights[0].URL)
	assert.Equal(t, "About cli/cli", highlights[0].Summary)
	assert.Equal(t, "spf13/cobra", highlights[1].Name)
}

func TestHighlightsSkipsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := fullName(userContent(t, r))
		w.Header().Set("Content-Type", "application/json")
		if name == "spf13/cobra" {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":{"message":"boom"}}`)
			return
		}
		fmt.Fprint(w, completion(fmt.Sprintf(`{"summary":"About %s"}`, name)))
	}))
	defer srv.Close()

	e := newEnricher(t, srv.URL, enrich.WithCount(3))

	highlights, err := e.Highlights(context.Background(), testRecords())
	require.NoError(t, err)
	require.Len(t, highlights, 2)

	assert.Equal(t, "cli/cli", highlights[0].Name)
	assert.Equal(t, "psf/requests", highlights[1].Name)
}

func TestHighlightsStripsCodeFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completion("```json\n{\"summary\":\"Fenced but fine\"}\n```"))
	}))
	defer srv.Close()

	e := newEnricher(t, srv.URL, enrich.WithCount(1))

	highlights, err := e.Highlights(context.Background(), testRecords())
	require.NoError(t, err)
	require.Len(t, highlights, 1)
	assert.Equal(t, "Fenced but fine", highlights[0].Summary)
}

func TestHighlightsDropsUnparseable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completion("this is not json"))
	}))
	defer srv.Close()

	e := newEnricher(t, srv.URL)

	highlights, err := e.Highlights(context.Background(), testRecords())
	require.NoError(t, err)
	assert.Empty(t, highlights)
}

func TestHighlightsEmptyInput(t *testing.T) {
	e := newEnricher(t, "http://localhost:0")

	highlights, err := e.Highlights(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, highlights)
}

func TestNewRequiresKey(t *testing.T) {
	_, err := enrich.New()
	require.Error(t, err)
	assert.True(t, errors.IsAPIKeyError(err))
	assert.ErrorIs(t, err, errors.ErrAPIKeyRequired)
}
