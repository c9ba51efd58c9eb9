package git

import (
	"context"
	"fmt"
)

// HistoryProvider supplies the commit history of a repository.
// This abstraction allows for easier testing and alternative implementations.
type HistoryProvider interface {
	// ReadHistory returns every commit reachable from the start revision, oldest first.
	ReadHistory(ctx context.Context) ([]CommitInfo, error)
	// ListTags returns all tags with the commits they point to.
	ListTags(ctx context.Context) ([]TagRef, error)
}

// Compile-time interface conformance checks.
var (
	_ HistoryProvider = (*HistoryReader)(nil)
	_ HistoryProvider = (*CLIHistoryReader)(nil)
)

// NewHistoryProvider opens the repository with the backend named in opts.
func NewHistoryProvider(opts ReadOptions) (HistoryProvider, error) {
	switch opts.Backend {
	case BackendCLI:
		return NewCLIHistoryReader(opts), nil
	case BackendGoGit, "":
		return NewHistoryReader(opts)
	default:
		return nil, fmt.Errorf("unsupported backend %q", opts.Backend)
	}
}
