package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/masmgr/gitrevno/config"
	"github.com/masmgr/gitrevno/internal/git"
)

func testSHA(i int) string {
	return strings.Repeat(string(rune('a'+i)), 40)
}

// testHistory returns n commits, oldest first.
func testHistory(n int) []git.CommitInfo {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	commits := make([]git.CommitInfo, n)
	for i := range commits {
		commits[i] = git.CommitInfo{
			SHA:     testSHA(i),
			When:    base.Add(time.Duration(i) * time.Hour),
			Author:  git.AuthorInfo{Name: "Dev", Email: "dev@example.com"},
			Message: fmt.Sprintf("commit %d", i),
		}
	}
	return commits
}

func useProvider(t *testing.T, provider git.HistoryProvider, openErr error) {
	t.Helper()
	orig := newHistoryProvider
	newHistoryProvider = func(git.ReadOptions) (git.HistoryProvider, error) {
		if openErr != nil {
			return nil, openErr
		}
		return provider, nil
	}
	t.Cleanup(func() { newHistoryProvider = orig })
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	full := append([]string{"gitrevno", "--config", t.TempDir() + "/none.json", "--no-color"}, args...)
	err := app.Run(normalizeArgs(app, full))
	return stdout.String(), stderr.String(), err
}

func TestRoot_ResolvesTokens(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(4), nil, nil), nil)

	out, _, err := runApp(t, "0", "-1", "9", "1..-1", "v1.0", "2...", "-5")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := strings.Join([]string{
		testSHA(0),
		testSHA(3),
		testSHA(1) + ".." + testSHA(3),
		"v1.0",
		testSHA(2) + "...",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("output =\n%s\nexpected\n%s", out, want)
	}
}

func TestResolve_RangeWithMissingSide(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(2), nil, nil), nil)

	out, _, err := runApp(t, "resolve", "0..7")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != testSHA(0)+"..\n" {
		t.Errorf("output = %q", out)
	}
}

func TestResolve_JSON(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(3), nil, nil), nil)

	out, _, err := runApp(t, "resolve", "--format", "json", "1", "12")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var items []struct {
		Token  string  `json:"token"`
		Result *string `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Result == nil || *items[0].Result != testSHA(1) {
		t.Errorf("items[0].Result = %v, expected %s", items[0].Result, testSHA(1))
	}
	if items[1].Result != nil {
		t.Errorf("items[1].Result = %q, expected null", *items[1].Result)
	}
}

func TestResolve_RequiresToken(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(1), nil, nil), nil)

	if _, _, err := runApp(t, "resolve"); err == nil {
		t.Fatal("expected error without revisions")
	}
}

func TestRoot_LogWithoutArguments(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(3), nil, nil), nil)

	out, _, err := runApp(t)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	first := strings.Index(out, "commit 2  id: "+testSHA(2))
	last := strings.Index(out, "commit 0  id: "+testSHA(0))
	if first < 0 || last < 0 {
		t.Fatalf("missing commit headers in output:\n%s", out)
	}
	if first > last {
		t.Error("expected newest commit first")
	}
	if !strings.Contains(out, "Author: Dev <dev@example.com>") {
		t.Errorf("missing author line:\n%s", out)
	}
	if !strings.Contains(out, "    commit 1") {
		t.Errorf("missing indented message:\n%s", out)
	}
}

func TestLog_Top(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(5), nil, nil), nil)

	out, _, err := runApp(t, "log", "-n", "2")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.Count(out, "id: "); got != 2 {
		t.Errorf("printed %d entries, expected 2", got)
	}
	if strings.Contains(out, "commit 2  id:") {
		t.Error("entry beyond --top was printed")
	}
}

func TestCount(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(7), nil, nil), nil)

	out, _, err := runApp(t, "count")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "7\n" {
		t.Errorf("count output = %q, expected 7", out)
	}

	out, _, err = runApp(t, "--count")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "7\n" {
		t.Errorf("--count output = %q, expected 7", out)
	}
}

func TestNumber(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(4), nil, nil), nil)

	out, _, err := runApp(t, "number", testSHA(2), "bbbbbb")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "2\n1\n" {
		t.Errorf("output = %q, expected 2 and 1", out)
	}
}

func TestNumber_Unknown(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(2), nil, nil), nil)

	out, _, err := runApp(t, "number", "ffff", testSHA(0))
	if err == nil {
		t.Fatal("expected error for unknown commit")
	}
	if out != "0\n" {
		t.Errorf("known ids should still be printed, got %q", out)
	}
}

func TestTags(t *testing.T) {
	tags := []git.TagRef{
		{Name: "v1.0", SHA: testSHA(1)},
		{Name: "v1.1", SHA: testSHA(3)},
		{Name: "v2.0", SHA: testSHA(3)},
		{Name: "orphan", SHA: strings.Repeat("9", 40)},
	}
	useProvider(t, git.NewMockHistoryProvider(testHistory(4), tags, nil), nil)

	out, _, err := runApp(t, "tags", "--format", "json", "--match", "v1.*", "--match", "orphan")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var report struct {
		DistinctCommits int `json:"distinctCommits"`
		Items           []struct {
			Name   string `json:"name"`
			Number *int   `json:"number"`
			Alias  *int   `json:"alias"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(report.Items) != 3 {
		t.Fatalf("expected 3 matching tags, got %d", len(report.Items))
	}
	if report.DistinctCommits != 3 {
		t.Errorf("DistinctCommits = %d, expected 3", report.DistinctCommits)
	}
	if report.Items[0].Number == nil || *report.Items[0].Number != 1 || *report.Items[0].Alias != -3 {
		t.Errorf("v1.0 numbering wrong: %+v", report.Items[0])
	}
	if report.Items[2].Name != "orphan" || report.Items[2].Number != nil {
		t.Errorf("orphan tag should have no number: %+v", report.Items[2])
	}
}

func TestTags_InvalidPattern(t *testing.T) {
	useProvider(t, git.NewMockHistoryProvider(testHistory(1), nil, nil), nil)

	if _, _, err := runApp(t, "tags", "--match", "v[1"); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestFilterTags(t *testing.T) {
	tags := []git.TagRef{{Name: "v1.0"}, {Name: "release/2024"}, {Name: "v2.0"}}

	if got := filterTags(tags, nil); len(got) != 3 {
		t.Errorf("no patterns should keep all tags, got %d", len(got))
	}
	got := filterTags(tags, []string{"release/*"})
	if len(got) != 1 || got[0].Name != "release/2024" {
		t.Errorf("filterTags = %+v", got)
	}
}

func TestCollaboratorFailure(t *testing.T) {
	tests := []struct {
		name     string
		provider git.HistoryProvider
		openErr  error
	}{
		{name: "OpenFails", openErr: errors.New("repository does not exist")},
		{name: "ReadFails", provider: git.NewMockHistoryProvider(nil, nil, errors.New("reference not found"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useProvider(t, tt.provider, tt.openErr)

			out, _, err := runApp(t, "0")
			if err == nil {
				t.Fatal("expected error")
			}
			if out != "" {
				t.Errorf("nothing should be printed on failure, got %q", out)
			}
		})
	}
}

func TestInit(t *testing.T) {
	path := t.TempDir() + "/.gitrevno.json"

	out, _, err := runApp(t, "init", "--config", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output = %q, expected written path", out)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.History.Rev != "HEAD" || cfg.Output.DateLayout != config.DefaultDateLayout {
		t.Errorf("written config = %+v, expected defaults", cfg)
	}

	if _, _, err := runApp(t, "init", "--config", path); err == nil {
		t.Error("expected error when the file exists")
	}
	if _, _, err := runApp(t, "init", "--config", path, "--force"); err != nil {
		t.Errorf("--force should overwrite: %v", err)
	}
}
