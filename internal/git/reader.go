package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HistoryReader reads commit history with go-git.
type HistoryReader struct {
	repo *git.Repository
	opts ReadOptions
}

// NewHistoryReader opens the repository containing opts.RepoPath.
// Parent directories are searched for .git, so any path inside a work tree works.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := git.PlainOpenWithOptions(opts.RepoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", opts.RepoPath, err)
	}
	return &HistoryReader{repo: repo, opts: opts}, nil
}

// ReadHistory walks history from the start revision and returns it oldest first.
func (r *HistoryReader) ReadHistory(ctx context.Context) ([]CommitInfo, error) {
	rev := r.opts.rev()
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}

	var commits []CommitInfo
	if r.opts.FirstParent {
		commits, err = r.walkFirstParent(ctx, *hash)
	} else {
		commits, err = r.walkLog(ctx, *hash)
	}
	if err != nil {
		return nil, err
	}

	reverseCommits(commits)
	return commits, nil
}

// walkLog returns commits newest first in committer-time order, as git log lists them.
func (r *HistoryReader) walkLog(ctx context.Context, from plumbing.Hash) ([]CommitInfo, error) {
	cIter, err := r.repo.Log(&git.LogOptions{From: from, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer cIter.Close()

	var commits []CommitInfo
	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		commits = append(commits, toCommitInfo(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return commits, nil
}

// walkFirstParent follows only the first parent of each commit, newest first.
func (r *HistoryReader) walkFirstParent(ctx context.Context, from plumbing.Hash) ([]CommitInfo, error) {
	var commits []CommitInfo
	hash := from
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := r.repo.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("read commit %s: %w", hash, err)
		}
		commits = append(commits, toCommitInfo(c))
		if len(c.ParentHashes) == 0 {
			return commits, nil
		}
		hash = c.ParentHashes[0]
	}
}

// ListTags returns every tag, peeling annotated tags to their commit.
func (r *HistoryReader) ListTags(ctx context.Context) ([]TagRef, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer iter.Close()

	var tags []TagRef
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		sha := ref.Hash()
		tag, err := r.repo.TagObject(ref.Hash())
		switch {
		case err == nil:
			c, err := tag.Commit()
			if err != nil {
				// Tags on trees or blobs have no revision number.
				return nil
			}
			sha = c.Hash
		case !errors.Is(err, plumbing.ErrObjectNotFound):
			return err
		}
		tags = append(tags, TagRef{Name: ref.Name().Short(), SHA: sha.String()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

func toCommitInfo(c *object.Commit) CommitInfo {
	return CommitInfo{
		SHA:     c.Hash.String(),
		When:    c.Author.When,
		Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Message: strings.TrimRight(c.Message, "\n"),
	}
}
