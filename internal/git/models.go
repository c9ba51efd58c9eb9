package git

import (
	"fmt"
	"strings"
	"time"
)

// CommitInfo represents a commit as shown in the annotated log.
type CommitInfo struct {
	SHA     string
	When    time.Time
	Author  AuthorInfo
	Message string
}

// Subject returns the first line of the commit message.
func (c CommitInfo) Subject() string {
	if idx := strings.IndexByte(c.Message, '\n'); idx != -1 {
		return c.Message[:idx]
	}
	return c.Message
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// String formats the author the way git log does.
func (a AuthorInfo) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// TagRef is a tag name with the commit it points to.
// Annotated tags are peeled to their target commit.
type TagRef struct {
	Name string
	SHA  string
}

// Backend selects how history is read.
type Backend string

const (
	// BackendGoGit reads the object database directly with go-git.
	BackendGoGit Backend = "gogit"
	// BackendCLI shells out to the git executable.
	BackendCLI Backend = "git"
)

// ParseBackend validates a backend name. An empty name selects go-git.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gogit", "go-git":
		return BackendGoGit, nil
	case "git", "cli", "exec":
		return BackendCLI, nil
	default:
		return "", fmt.Errorf("invalid backend %q: expected gogit or git", s)
	}
}

// ReadOptions configures a history provider.
type ReadOptions struct {
	RepoPath    string
	Rev         string // Start revision; empty means HEAD
	FirstParent bool
	Backend     Backend
}

func (o ReadOptions) rev() string {
	if rev := strings.TrimSpace(o.Rev); rev != "" {
		return rev
	}
	return "HEAD"
}

// CommitIDs extracts commit identifiers, keeping the order of history.
func CommitIDs(history []CommitInfo) []string {
	ids := make([]string, len(history))
	for i, c := range history {
		ids[i] = c.SHA
	}
	return ids
}

func reverseCommits(commits []CommitInfo) {
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
}
