package git

import "context"

// MockHistoryProvider is a test double for HistoryProvider.
// It allows tests to provide predefined commit data without needing a real Git repository.
type MockHistoryProvider struct {
	Commits []CommitInfo
	Tags    []TagRef
	Error   error
}

// NewMockHistoryProvider creates a new MockHistoryProvider with the given data.
func NewMockHistoryProvider(commits []CommitInfo, tags []TagRef, err error) *MockHistoryProvider {
	return &MockHistoryProvider{
		Commits: commits,
		Tags:    tags,
		Error:   err,
	}
}

// ReadHistory returns the predefined commits or error.
func (m *MockHistoryProvider) ReadHistory(_ context.Context) ([]CommitInfo, error) {
	return m.Commits, m.Error
}

// ListTags returns the predefined tags or error.
func (m *MockHistoryProvider) ListTags(_ context.Context) ([]TagRef, error) {
	return m.Tags, m.Error
}

// Compile-time interface conformance check.
var _ HistoryProvider = (*MockHistoryProvider)(nil)
