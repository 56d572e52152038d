package starlens

import (
	"context"

	"github.com/agentstation/starlens/pkg/stars"
)

// Compile-time interface check to ensure proper implementation.
var _ Fetcher = (*client)(nil)

// Fetcher downloads starred repositories from the GitHub API.
type Fetcher interface {
	// Fetch returns every repository the user has starred, paginating
	// until the API or the configured page cap stops it
	Fetch(ctx context.Context, user string) ([]stars.Record, error)
}

// Fetch returns every repository the user has starred.
func (c *client) Fetch(ctx context.Context, user string) ([]stars.Record, error) {
	return c.github.Starred(ctx, user)
}
