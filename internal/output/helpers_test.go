package output

import (
	"time"

	"github.com/masmgr/gitrevno/internal/git"
	"github.com/masmgr/gitrevno/internal/revision"
)

func newTestLogReport() *LogReport {
	base := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	commits := []git.CommitInfo{
		{SHA: "aaaaaaaaaaaaaaaa", When: base, Author: git.AuthorInfo{Name: "Ann", Email: "ann@example.com"}, Message: "Initial import"},
		{SHA: "bbbbbbbbbbbbbbbb", When: base.Add(time.Hour), Author: git.AuthorInfo{Name: "Bob", Email: "bob@example.com"}, Message: "Add parser\n\nHandles ranges"},
		{SHA: "cccccccccccccccc", When: base.Add(2 * time.Hour), Author: git.AuthorInfo{Name: "Ann", Email: "ann@example.com"}, Message: "Fix a_b | c"},
	}

	seq := revision.NewSequence(git.CommitIDs(commits))
	entries := make([]LogEntry, 0, len(commits))
	for _, e := range revision.DisplayOrder(seq) {
		entries = append(entries, LogEntry{
			Number:      e.Number,
			TipDistance: e.TipDistance,
			Alias:       revision.NegativeAlias(e.Number, seq.Len()),
			Commit:      commits[e.Number],
		})
	}

	return &LogReport{
		RepoPath:    "/repo",
		Rev:         "HEAD",
		GeneratedAt: base.Add(24 * time.Hour),
		Total:       len(commits),
		Entries:     entries,
	}
}

func newTestTagReport() *TagReport {
	return &TagReport{
		RepoPath: "/repo",
		Items: []TagItem{
			{Name: "v0.1", SHA: "aaaaaaaaaaaaaaaa", Number: 0, Alias: -3, Found: true},
			{Name: "v0.2", SHA: "cccccccccccccccc", Number: 2, Alias: -1, Found: true},
			{Name: "side", SHA: "dddddddddddddddd", Found: false},
		},
		DistinctCommits: 3,
	}
}
