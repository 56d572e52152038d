package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/starlens"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	StarlensFunc            func() (starlens.Client, error)
	StarlensWithOptionsFunc func(...starlens.Option) (starlens.Client, error)
	LoggerFunc              func() *zerolog.Logger
	OutputFormatFunc        func() string
	QuietFunc               func() bool
	VersionFunc             func() string
	CommitFunc              func() string
	DateFunc                func() string
	BuiltByFunc             func() string
}

// Starlens returns a client using the mock function or nil.
func (m *Mock) Starlens() (starlens.Client, error) {
	if m.StarlensFunc != nil {
		return m.StarlensFunc()
	}
	return nil, nil
}

// StarlensWithOptions returns a client using the mock function or nil.
func (m *Mock) StarlensWithOptions(opts ...starlens.Option) (starlens.Client, error) {
	if m.StarlensWithOptionsFunc != nil {
		return m.StarlensWithOptionsFunc(opts...)
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return ""
}

// Quiet returns the quiet setting using the mock function or false.
func (m *Mock) Quiet() bool {
	if m.QuietFunc != nil {
		return m.QuietFunc()
	}
	return false
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
