package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/starlens/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "input file",
			ID:       "stars.json",
		}
		assert.Equal(t, "input file stars.json not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("output directory", "./out")
		assert.Equal(t, "output directory ./out not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("input file", "missing.json")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "input",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field input: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid bucket",
		}
		assert.Equal(t, "validation failed: invalid bucket", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("top", -1, "must be positive")
		assert.Contains(t, err.Error(), "top")
		assert.Contains(t, err.Error(), "must be positive")
	})
}

func TestRecordError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.RecordError{
			File:    "stars.json",
			Index:   7,
			Message: "missing full_name",
		}
		assert.Equal(t, "record 7 in stars.json: missing full_name", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewRecordError("", 2, "bad starred_at", nil)
		assert.Equal(t, "record 2: bad starred_at", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("cannot parse time")
		err := pkgerrors.NewRecordError("stars.json", 0, "bad starred_at", base)
		assert.Equal(t, base, err.Unwrap())
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.APIError{
			Service:    "github",
			StatusCode: 429,
			Message:    "rate limit exceeded",
			Endpoint:   "https://api.github.com/users/octocat/starred",
		}
		assert.Contains(t, err.Error(), "github")
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "rate limit exceeded")
	})

	t.Run("rate limit mapping", func(t *testing.T) {
		err := pkgerrors.NewAPIError("github", 429, "slow down")
		assert.True(t, pkgerrors.IsRateLimited(err))
	})

	t.Run("server error mapping", func(t *testing.T) {
		err := pkgerrors.NewAPIError("openai", 503, "overloaded")
		assert.True(t, pkgerrors.IsServiceUnavailable(err))
	})

	t.Run("auth error mapping", func(t *testing.T) {
		err := pkgerrors.NewAPIError("github", 401, "bad credentials")
		assert.True(t, pkgerrors.IsAPIKeyError(err))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection timeout")
		err := &pkgerrors.APIError{
			Service: "openai",
			Message: "request failed",
			Err:     baseErr,
		}
		assert.Contains(t, err.Error(), "openai")
		assert.Contains(t, err.Error(), "request failed")
		assert.Equal(t, baseErr, err.Unwrap())
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "fetch",
			Message:   "github_token: invalid format",
		}
		assert.Contains(t, err.Error(), "fetch")
		assert.Contains(t, err.Error(), "github_token")
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewConfigError("highlights", "OPENAI_API_KEY cannot be empty", nil)
		assert.Contains(t, err.Error(), "highlights")
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestRenderError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		base := errors.New("invalid data range; cannot be zero")
		err := pkgerrors.NewRenderError("languages.png", base)
		assert.Contains(t, err.Error(), "languages.png")
		assert.Contains(t, err.Error(), "invalid data range")
		assert.Equal(t, base, err.Unwrap())
	})

	t.Run("no data passthrough", func(t *testing.T) {
		err := pkgerrors.WrapRender("topics.png", pkgerrors.ErrNoData)
		assert.True(t, pkgerrors.IsNoData(err))
	})

	t.Run("wrap helper nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapRender("growth.png", nil))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with position", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			File:    "stars.json",
			Line:    3,
			Column:  14,
			Message: "unexpected token",
		}
		assert.Contains(t, err.Error(), "stars.json:3:14")
	})

	t.Run("file only", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "stars.json", "unexpected EOF", nil)
		assert.Equal(t, "parse error in json file stars.json: unexpected EOF", err.Error())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("invalid character")
		err := pkgerrors.WrapParse("json", "export.json", baseErr)
		parseErr, ok := err.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "json", parseErr.Format)
		assert.Equal(t, baseErr, parseErr.Unwrap())
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "read",
			Path:      "/tmp/stars.json",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "read")
		assert.Contains(t, err.Error(), "/tmp/stars.json")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/out/report.md", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("network error")
		err := pkgerrors.WrapIO("download", "https://example.com/file", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "download", ioErr.Operation)
		assert.Equal(t, "https://example.com/file", ioErr.Path)
	})
}

func TestTimeoutError(t *testing.T) {
	err := pkgerrors.NewTimeoutError("fetch", "5m0s", "github did not respond")
	assert.Contains(t, err.Error(), "fetch")
	assert.Contains(t, err.Error(), "5m0s")
	assert.True(t, pkgerrors.IsTimeout(err))
}

func TestWrapHelpersNil(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
	assert.NoError(t, pkgerrors.WrapValidation("field", nil))
	assert.NoError(t, pkgerrors.WrapAPI("github", 200, nil))
}

func TestSentinelChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"no data", pkgerrors.ErrNoData, pkgerrors.IsNoData},
		{"rate limited", pkgerrors.ErrRateLimited, pkgerrors.IsRateLimited},
		{"timeout", pkgerrors.ErrTimeout, pkgerrors.IsTimeout},
		{"canceled", pkgerrors.ErrCanceled, pkgerrors.IsCanceled},
		{"api key required", pkgerrors.ErrAPIKeyRequired, pkgerrors.IsAPIKeyError},
		{"not found", pkgerrors.ErrNotFound, pkgerrors.IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(errors.New("unrelated")))
			assert.False(t, tt.check(nil))
		})
	}
}
