// Package app provides the application context and dependency management
// for the starlens CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/starlens"
	"github.com/agentstation/starlens/internal/appcontext"
	"github.com/agentstation/starlens/pkg/errors"
)

// App represents the starlens application with all its dependencies.
// It provides a centralized place for configuration, logging, and
// the starlens instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Starlens instance (lazy-initialized, singleton)
	mu       sync.RWMutex
	starlens starlens.Client
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Quiet reports whether minimal output was requested.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// Starlens returns the starlens instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Starlens() (starlens.Client, error) {
	a.mu.RLock()
	if a.starlens != nil {
		sl := a.starlens
		a.mu.RUnlock()
		return sl, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.starlens != nil {
		return a.starlens, nil
	}

	// Create starlens instance with options from config
	sl, err := starlens.New(a.buildStarlensOptions()...)
	if err != nil {
		return nil, err
	}

	a.starlens = sl
	return sl, nil
}

// StarlensWithOptions returns a new starlens instance configured from the
// app defaults plus the given options. Options apply after the configured
// defaults, so run-specific settings win.
func (a *App) StarlensWithOptions(opts ...starlens.Option) (starlens.Client, error) {
	sl, err := starlens.New(append(a.buildStarlensOptions(), opts...)...)
	if err != nil {
		return nil, errors.WrapValidation("starlens", err)
	}
	return sl, nil
}

// buildStarlensOptions constructs starlens options from the app configuration.
func (a *App) buildStarlensOptions() []starlens.Option {
	var opts []starlens.Option

	// Summary settings
	if a.config.Bucket != "" {
		opts = append(opts, starlens.WithBucket(a.config.Bucket))
	}
	if a.config.TopLanguages > 0 {
		opts = append(opts, starlens.WithTopLanguages(a.config.TopLanguages))
	}
	if a.config.MinTokenLength > 0 {
		opts = append(opts, starlens.WithMinWordLength(a.config.MinTokenLength))
	}
	if a.config.MaxVocabulary > 0 {
		opts = append(opts, starlens.WithMaxVocabulary(a.config.MaxVocabulary))
	}
	if len(a.config.StopWords) > 0 {
		opts = append(opts, starlens.WithStopWords(a.config.StopWords...))
	}

	// Chart settings
	if a.config.ChartWidth > 0 && a.config.ChartHeight > 0 {
		opts = append(opts, starlens.WithChartSize(a.config.ChartWidth, a.config.ChartHeight))
	}
	if a.config.CloudSize > 0 {
		opts = append(opts, starlens.WithCloudSize(a.config.CloudSize))
	}

	// Highlight settings
	if a.config.Highlights > 0 {
		opts = append(opts, starlens.WithHighlights(a.config.Highlights))
	}
	if a.config.OpenAIAPIKey != "" || a.config.OpenAIBaseURL != "" || a.config.OpenAIModel != "" {
		opts = append(opts, starlens.WithOpenAI(a.config.OpenAIAPIKey, a.config.OpenAIBaseURL, a.config.OpenAIModel))
	}

	// GitHub settings
	if a.config.GitHubToken != "" {
		opts = append(opts, starlens.WithGitHubToken(a.config.GitHubToken))
	}
	if a.config.GitHubPerPage > 0 {
		opts = append(opts, starlens.WithPageSize(a.config.GitHubPerPage))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStarlens sets a custom starlens instance (useful for testing).
func WithStarlens(sl starlens.Client) Option {
	return func(a *App) error {
		a.starlens = sl
		return nil
	}
}
