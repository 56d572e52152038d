// Package enrich writes short highlight blurbs for recently starred
// repositories through any OpenAI-compatible chat-completion API. The
// highlights feed an optional report section; a failed completion drops one
// blurb, never the run.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"

	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/logging"
	"github.com/agentstation/starlens/pkg/stars"
)

// Highlight is one generated blurb about a recently starred repository.
type Highlight struct {
	Name    string
	URL     string
	Summary string
}

// systemPrompt instructs the model to answer with bare JSON so the response
// can be unmarshaled directly. Not every model supports a JSON response
// format parameter, so the contract lives in the prompt.
const systemPrompt = `You are a concise technical analyst. Given a GitHub repository's metadata, produce a JSON object with:

1. "summary": One or two sentences on what the repository does and why it is worth revisiting.

Return ONLY valid JSON. No markdown, no code fences.`

// Enricher generates highlights for the most recent stars.
type Enricher struct {
	client      *openai.Client
	apiKey      string
	baseURL     string
	model       string
	count       int
	concurrency int
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithAPIKey sets the completion API key. Construction fails without one.
func WithAPIKey(key string) Option {
	return func(e *Enricher) {
		e.apiKey = strings.TrimSpace(key)
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(base string) Option {
	return func(e *Enricher) {
		if base != "" {
			e.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithModel overrides the completion model.
func WithModel(model string) Option {
	return func(e *Enricher) {
		if model != "" {
			e.model = model
		}
	}
}

// WithCount sets how many of the most recent stars get a highlight.
func WithCount(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.count = n
		}
	}
}

// WithConcurrency bounds the number of in-flight completions.
func WithConcurrency(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// New creates an Enricher. ErrAPIKeyRequired is returned when no key was
// configured, letting callers decide whether that skips the section or
// fails the run.
func New(opts ...Option) (*Enricher, error) {
	e := &Enricher{
		model:       constants.DefaultOpenAIModel,
		count:       constants.DefaultHighlightCount,
		concurrency: constants.MaxConcurrentCompletions,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}

	cfg := openai.DefaultConfig(e.apiKey)
	if e.baseURL != "" {
		cfg.BaseURL = e.baseURL
	}
	e.client = openai.NewClientWithConfig(cfg)
	return e, nil
}

// Highlights generates blurbs for the most recently starred records, newest
// first. Records whose completion fails are logged and dropped; cancellation
// aborts the whole batch.
func (e *Enricher) Highlights(ctx context.Context, records []stars.Record) ([]Highlight, error) {
	if len(records) == 0 {
		return nil, nil
	}

	recent := make([]stars.Record, len(records))
	copy(recent, records)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].StarredAt.After(recent[j].StarredAt)
	})
	if len(recent) > e.count {
		recent = recent[:e.count]
	}

	log := logging.FromContext(ctx)
	results := make([]*Highlight, len(recent))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, record := range recent {
		i, record := i, record
		g.Go(func() error {
			h, err := e.summarize(gctx, record)
			if err != nil {
				if errors.IsCanceled(err) || errors.IsTimeout(err) {
					return err
				}
				log.Warn().Err(err).Str("input", record.FullName).Msg("Skipping highlight")
				return nil
			}
			results[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	highlights := make([]Highlight, 0, len(results))
	for _, h := range results {
		if h != nil {
			highlights = append(highlights, *h)
		}
	}
	return highlights, nil
}

// summaryResponse is the JSON shape the prompt asks for.
type summaryResponse struct {
	Summary string `json:"summary"`
}

func (e *Enricher) summarize(ctx context.Context, record stars.Record) (*Highlight, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage(record)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, errors.WrapAPI("openai", 0, err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.NewAPIError("openai", 0, "no choices returned")
	}

	content := stripCodeFences(resp.Choices[0].Message.Content)
	var parsed summaryResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, errors.WrapParse("json", record.FullName, err)
	}

	summary := strings.TrimSpace(parsed.Summary)
	if summary == "" {
		return nil, errors.NewAPIError("openai", 0, "empty summary")
	}

	return &Highlight{
		Name:    record.FullName,
		URL:     record.WebURL(),
		Summary: summary,
	}, nil
}

// userMessage serializes the record as tagged lines, which keeps field
// boundaries unambiguous for the model.
func userMessage(r stars.Record) string {
	var b strings.Builder
	write := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, "<%s> %s </%s>\n", key, value, key)
		}
	}
	write("full_name", r.FullName)
	write("description", r.Description)
	write("language", r.Language)
	if len(r.Topics) > 0 {
		write("topics", strings.Join(r.Topics, ", "))
	}
	if r.Stars > 0 {
		write("stars", strconv.Itoa(int(r.Stars)))
	}
	return b.String()
}

// stripCodeFences removes markdown code fences that some models wrap around
// JSON despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i != -1 {
			s = s[i+1:]
		}
		if i := strings.LastIndex(s, "```"); i != -1 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	return s
}
