package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// CLIHistoryReader reads commit history by running the git executable.
type CLIHistoryReader struct {
	opts ReadOptions
}

// NewCLIHistoryReader creates a reader that shells out to git.
func NewCLIHistoryReader(opts ReadOptions) *CLIHistoryReader {
	return &CLIHistoryReader{opts: opts}
}

// ReadHistory runs git log and returns its commits oldest first.
func (r *CLIHistoryReader) ReadHistory(ctx context.Context) ([]CommitInfo, error) {
	// Each commit is prefixed by 0x1e (record separator) with NUL-separated fields,
	// so full multi-line messages stay unambiguous.
	const format = "%x1e%H%x00%an%x00%ae%x00%aI%x00%B"

	args := []string{
		"log",
		"--no-color",
		"--pretty=format:" + format,
	}
	if r.opts.FirstParent {
		args = append(args, "--first-parent")
	}
	args = append(args, r.opts.rev(), "--")

	out, err := r.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	commits, err := parseGitLog(out)
	if err != nil {
		return nil, err
	}
	reverseCommits(commits)
	return commits, nil
}

// ListTags runs git for-each-ref over refs/tags.
func (r *CLIHistoryReader) ListTags(ctx context.Context) ([]TagRef, error) {
	// *objectname is the peeled commit for annotated tags and empty otherwise.
	out, err := r.run(ctx, "for-each-ref",
		"--format=%(refname:strip=2)%00%(objecttype)%00%(objectname)%00%(*objecttype)%00%(*objectname)",
		"refs/tags")
	if err != nil {
		return nil, err
	}

	tags, err := parseTagRefs(out)
	if err != nil {
		return nil, err
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

func (r *CLIHistoryReader) run(ctx context.Context, args ...string) ([]byte, error) {
	repoPath := r.opts.RepoPath
	if repoPath == "" {
		repoPath = "."
	}
	full := append([]string{"-C", repoPath}, args...)

	cmd := exec.CommandContext(ctx, "git", full...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git %s failed: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// parseGitLog parses records produced by the pretty format in ReadHistory.
// Commits are returned in output order, newest first.
func parseGitLog(out []byte) ([]CommitInfo, error) {
	records := bytes.Split(out, []byte{0x1e})
	commits := make([]CommitInfo, 0, len(records))

	for _, rec := range records {
		if len(bytes.TrimSpace(rec)) == 0 {
			continue
		}

		fields := bytes.SplitN(rec, []byte{0x00}, 5)
		if len(fields) < 5 {
			return nil, fmt.Errorf("unexpected git log record format")
		}

		when, err := time.Parse(time.RFC3339, string(fields[3]))
		if err != nil {
			return nil, fmt.Errorf("parse author date: %w", err)
		}

		commits = append(commits, CommitInfo{
			SHA:     string(fields[0]),
			When:    when,
			Author:  AuthorInfo{Name: string(fields[1]), Email: string(fields[2])},
			Message: strings.TrimRight(string(fields[4]), "\n"),
		})
	}

	return commits, nil
}

// parseTagRefs parses the for-each-ref output produced by ListTags.
// Tags that do not resolve to a commit are skipped.
func parseTagRefs(out []byte) ([]TagRef, error) {
	var tags []TagRef
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\x00")
		if len(fields) != 5 {
			return nil, fmt.Errorf("unexpected git for-each-ref line: %q", line)
		}

		name, objType, sha, peeledType, peeledSHA := fields[0], fields[1], fields[2], fields[3], fields[4]
		switch {
		case objType == "commit":
			tags = append(tags, TagRef{Name: name, SHA: sha})
		case objType == "tag" && peeledType == "commit":
			tags = append(tags, TagRef{Name: name, SHA: peeledSHA})
		}
	}
	return tags, nil
}
