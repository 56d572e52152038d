// Package github fetches the repositories a user has starred from the
// GitHub REST API. Requests ask for the star media type so each entry
// carries the time the star was given, and pagination follows the Link
// header until the listing is exhausted.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/logging"
	"github.com/agentstation/starlens/pkg/stars"
)

// starMediaType makes the starred listing include starred_at timestamps.
const starMediaType = "application/vnd.github.star+json"

// apiVersion pins the REST API revision the client speaks.
const apiVersion = "2022-11-28"

// Client lists starred repositories for a user.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	pageSize   int
	maxPages   int
	delay      time.Duration
	direction  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, such as a GitHub
// Enterprise host or a test server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithToken authenticates requests. Unauthenticated fetches work but run
// into much lower rate limits.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithPageSize sets how many repositories each page requests, capped at the
// API maximum of 100.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 && n <= 100 {
			c.pageSize = n
		}
	}
}

// WithMaxPages bounds pagination. Zero means the default cap.
func WithMaxPages(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxPages = n
		}
	}
}

// WithDelay pauses between page fetches to stay friendly to rate limits.
func WithDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithDirection orders the listing by star time, "asc" or "desc".
func WithDirection(dir string) Option {
	return func(c *Client) {
		if dir == "asc" || dir == "desc" {
			c.direction = dir
		}
	}
}

// NewClient creates a GitHub client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    constants.DefaultGitHubAPIURL,
		httpClient: &http.Client{Timeout: constants.DefaultHTTPTimeout},
		pageSize:   constants.DefaultPageSize,
		maxPages:   constants.MaxPages,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// starredEntry is one element of the starred listing under the star media
// type, where the repository is nested beside its starred_at timestamp.
type starredEntry struct {
	StarredAt time.Time `json:"starred_at"`
	Repo      struct {
		FullName        string   `json:"full_name"`
		HTMLURL         string   `json:"html_url"`
		Description     string   `json:"description"`
		StargazersCount int      `json:"stargazers_count"`
		Language        string   `json:"language"`
		Topics          []string `json:"topics"`
	} `json:"repo"`
}

func (e starredEntry) record() stars.Record {
	return stars.Record{
		FullName:    e.Repo.FullName,
		URL:         e.Repo.HTMLURL,
		Description: strings.TrimSpace(e.Repo.Description),
		Stars:       stars.Count(e.Repo.StargazersCount),
		Language:    e.Repo.Language,
		Topics:      e.Repo.Topics,
		StarredAt:   e.StarredAt,
	}
}

// Starred returns every repository the user has starred, in the order the
// API lists them. Pagination follows the Link header until the listing ends
// or the page cap is hit.
func (c *Client) Starred(ctx context.Context, user string) ([]stars.Record, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, errors.NewValidationError("user", user, "must not be empty")
	}

	log := logging.FromContext(ctx)
	next := fmt.Sprintf("%s/users/%s/starred?per_page=%d&sort=created",
		c.baseURL, url.PathEscape(user), c.pageSize)
	if c.direction != "" {
		next += "&direction=" + c.direction
	}

	var records []stars.Record
	for page := 1; next != ""; page++ {
		if c.maxPages > 0 && page > c.maxPages {
			log.Warn().Int("pages", c.maxPages).Msg("Page cap reached, stopping fetch")
			break
		}

		pageRecords, link, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
		log.Debug().Str("user", user).Int("page", page).Int("records", len(pageRecords)).Msg("Fetched starred page")
		next = link

		if next != "" && c.delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.delay):
			}
		}
	}

	return records, nil
}

// fetchPage requests one page of the starred listing and returns its records
// along with the rel="next" link, empty on the last page.
func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]stars.Record, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", errors.WrapAPI("github", 0, err)
	}
	req.Header.Set("Accept", starMediaType)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", errors.WrapAPI("github", 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.WrapAPI("github", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", &errors.APIError{
			Service:    "github",
			StatusCode: resp.StatusCode,
			Message:    apiMessage(body),
			Endpoint:   pageURL,
		}
	}

	var entries []starredEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, "", errors.WrapParse("json", pageURL, err)
	}

	records := make([]stars.Record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, entry.record())
	}
	return records, nextLink(resp.Header.Get("Link")), nil
}

// apiMessage pulls the message field out of a GitHub error body, falling
// back to the raw body when it is not the usual JSON shape.
func apiMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

// nextLink extracts the rel="next" target from a Link header.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		sections := strings.Split(part, ";")
		if len(sections) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(sections[0]), "<>")
		for _, param := range sections[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return target
			}
		}
	}
	return ""
}
