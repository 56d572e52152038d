// Package stars defines the starred-repository record model and the loader
// that reads personal star exports from disk. Records are value types,
// immutable once loaded; all derived analytics live in pkg/analysis.
package stars

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
)

// Count is a star total. The GitHub API encodes it as a number while older
// scraped exports use a digit string (sometimes with thousands separators);
// both decode. Unparseable values decode to zero rather than failing the
// record, since the total is optional.
type Count int

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*c = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*c = 0
		return nil
	}
	*c = Count(n)
	return nil
}

// MarshalJSON implements json.Marshaler, always emitting a number.
func (c Count) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(c))
}

// Record is one starred repository from an export.
type Record struct {
	// FullName is the owner/name pair, e.g. "golang/go". Required.
	FullName string

	// URL is the repository's web URL. Derived from FullName when absent.
	URL string

	// Description is the repository's free-text description, may be empty.
	Description string

	// Stars is the repository's stargazer total at export time.
	Stars Count

	// Language is the primary language, empty when GitHub reports none.
	Language string

	// Topics are the user-assigned tag strings, may be empty.
	Topics []string

	// StarredAt is when the user starred the repository. Required; records
	// without a parseable timestamp are skipped by the loader.
	StarredAt time.Time
}

// recordJSON is the wire form of Record. It tolerates both the REST API
// export (starred_at RFC 3339, stargazers_count number, html_url) and the
// scraped export (starred_datetime ISO timestamp, stars digit string, url).
type recordJSON struct {
	FullName        string   `json:"full_name"`
	URL             string   `json:"url,omitempty"`
	HTMLURL         string   `json:"html_url,omitempty"`
	Description     string   `json:"description,omitempty"`
	Stars           Count    `json:"stars,omitempty"`
	StargazersCount *int     `json:"stargazers_count,omitempty"`
	Language        string   `json:"language,omitempty"`
	Topics          []string `json:"topics,omitempty"`
	StarredAt       string   `json:"starred_at,omitempty"`
	StarredDatetime string   `json:"starred_datetime,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. Timestamp fields that fail to
// parse leave StarredAt zero; Validate reports those so the loader can skip
// the record instead of aborting the whole array.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.FullName = strings.TrimSpace(raw.FullName)
	r.URL = raw.URL
	if r.URL == "" {
		r.URL = raw.HTMLURL
	}
	r.Description = strings.TrimSpace(raw.Description)
	r.Stars = raw.Stars
	if raw.StargazersCount != nil {
		r.Stars = Count(*raw.StargazersCount)
	}
	r.Language = strings.TrimSpace(raw.Language)
	r.Topics = raw.Topics

	// The scraped export keeps human text in starred_at and the machine
	// timestamp in starred_datetime, so try both.
	if t, err := parseStarTime(raw.StarredAt); err == nil {
		r.StarredAt = t
	} else if t, err := parseStarTime(raw.StarredDatetime); err == nil {
		r.StarredAt = t
	}

	return nil
}

// MarshalJSON implements json.Marshaler, emitting the canonical export form
// the loader prefers: RFC 3339 starred_at and a numeric star count.
func (r Record) MarshalJSON() ([]byte, error) {
	var starredAt string
	if !r.StarredAt.IsZero() {
		starredAt = r.StarredAt.UTC().Format(time.RFC3339)
	}
	return json.Marshal(recordJSON{
		FullName:    r.FullName,
		URL:         r.WebURL(),
		Description: r.Description,
		Stars:       r.Stars,
		Language:    r.Language,
		Topics:      r.Topics,
		StarredAt:   starredAt,
	})
}

// Validate reports whether the record carries the fields every summary
// depends on: a full name and a starred timestamp.
func (r Record) Validate() error {
	if r.FullName == "" {
		return &errors.ValidationError{Field: "full_name", Message: "cannot be empty"}
	}
	if r.StarredAt.IsZero() {
		return &errors.ValidationError{Field: "starred_at", Message: "missing or unparseable timestamp"}
	}
	return nil
}

// Owner returns the owner half of FullName, or the whole name if it has no
// slash.
func (r Record) Owner() string {
	if i := strings.IndexByte(r.FullName, '/'); i >= 0 {
		return r.FullName[:i]
	}
	return r.FullName
}

// Name returns the repository half of FullName.
func (r Record) Name() string {
	if i := strings.IndexByte(r.FullName, '/'); i >= 0 {
		return r.FullName[i+1:]
	}
	return r.FullName
}

// WebURL returns the recorded URL, deriving the github.com one when the
// export omitted it.
func (r Record) WebURL() string {
	if r.URL != "" {
		return r.URL
	}
	if r.FullName == "" {
		return ""
	}
	return "https://github.com/" + r.FullName
}

// HasLanguage reports whether GitHub detected a primary language.
func (r Record) HasLanguage() bool {
	return r.Language != ""
}

// starTimeLayouts are the accepted timestamp forms, most specific first.
var starTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	constants.TimeFormatDate,
}

// parseStarTime parses a starred timestamp in any accepted layout.
func parseStarTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.NewParseError("time", "", "empty timestamp", nil)
	}
	for _, layout := range starTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewParseError("time", "", "unrecognized timestamp "+strconv.Quote(s), nil)
}
