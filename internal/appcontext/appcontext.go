// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/starlens"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/starlens/app automatically implements this
// interface, providing dependency injection for commands while maintaining
// testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Starlens returns the default starlens instance, creating it lazily
	// if needed. This is thread-safe and ensures only one instance is
	// created.
	Starlens() (starlens.Client, error)

	// StarlensWithOptions creates a new starlens instance configured from
	// the app defaults plus the given options. Use this when a command
	// needs run-specific configuration (e.g., analyze with --output-dir).
	StarlensWithOptions(...starlens.Option) (starlens.Client, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Quiet reports whether minimal output was requested.
	Quiet() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
