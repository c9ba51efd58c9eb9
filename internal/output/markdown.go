package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// MarkdownLogWriter writes annotated logs as Markdown.
type MarkdownLogWriter struct{}

// Write outputs the annotated log as a Markdown table.
func (w *MarkdownLogWriter) Write(report *LogReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	// Header
	fmt.Fprintln(out, "# Revision Numbers")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Revision:** %s\n\n", report.Rev)
	fmt.Fprintf(out, "**Total Commits:** %d\n\n", report.Total)

	if report.Total == 0 {
		fmt.Fprintln(out, "No commits found.")
		return nil
	}

	// Table header
	fmt.Fprintln(out, "| # | Alias | Commit | Author | Date | Subject |")
	fmt.Fprintln(out, "|---|-------|--------|--------|------|---------|")

	// Table rows
	for _, entry := range limitTop(report.Entries, options.Top) {
		fmt.Fprintf(out, "| %d | %d | `%s` | %s | %s | %s |\n",
			entry.Number,
			entry.Alias,
			shortSHA(entry.Commit.SHA),
			escapeMarkdown(entry.Commit.Author.Name),
			entry.Commit.When.Format("2006-01-02"),
			escapeMarkdown(truncateMessage(entry.Commit.Subject(), 72)))
	}

	return nil
}

// MarkdownTagWriter writes tag reports as Markdown.
type MarkdownTagWriter struct{}

// Write outputs the tag report as a Markdown table.
func (w *MarkdownTagWriter) Write(report *TagReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Tags")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Tagged Commits:** %d\n\n", report.DistinctCommits)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Tag", "Rev", "Alias", "Commit"})
	for _, item := range limitTop(report.Items, options.Top) {
		if !item.Found {
			t.AppendRow(table.Row{item.Name, "-", "-", "`" + shortSHA(item.SHA) + "`"})
			continue
		}
		t.AppendRow(table.Row{item.Name, item.Number, item.Alias, "`" + shortSHA(item.SHA) + "`"})
	}
	t.RenderMarkdown()

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
