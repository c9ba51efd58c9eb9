package cmd

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/masmgr/gitrevno/internal/git"
	"github.com/masmgr/gitrevno/internal/output"
	"github.com/masmgr/gitrevno/internal/revision"
)

// buildLogReport numbers the history, newest entry first.
func buildLogReport(ctx *CommandContext, now time.Time) *output.LogReport {
	seq := ctx.Sequence
	entries := make([]output.LogEntry, 0, seq.Len())
	for _, e := range revision.DisplayOrder(seq) {
		entries = append(entries, output.LogEntry{
			Number:      e.Number,
			TipDistance: e.TipDistance,
			Alias:       revision.NegativeAlias(e.Number, seq.Len()),
			Commit:      ctx.History[e.Number],
		})
	}

	return &output.LogReport{
		RepoPath:    ctx.RepoPath,
		Rev:         ctx.Config.History.Rev,
		GeneratedAt: now,
		Total:       seq.Len(),
		Entries:     entries,
	}
}

// buildTagReport attaches revision numbers to tags.
func buildTagReport(ctx *CommandContext, tags []git.TagRef) *output.TagReport {
	numbers := make(map[string]int, ctx.Sequence.Len())
	for i, id := range ctx.Sequence.IDs() {
		numbers[id] = i
	}

	commits := mapset.NewThreadUnsafeSet[string]()
	items := make([]output.TagItem, 0, len(tags))
	for _, tag := range tags {
		commits.Add(tag.SHA)
		item := output.TagItem{Name: tag.Name, SHA: tag.SHA}
		if n, ok := numbers[tag.SHA]; ok {
			item.Number = n
			item.Alias = revision.NegativeAlias(n, ctx.Sequence.Len())
			item.Found = true
		}
		items = append(items, item)
	}

	return &output.TagReport{
		RepoPath:        ctx.RepoPath,
		Items:           items,
		DistinctCommits: commits.Cardinality(),
	}
}
