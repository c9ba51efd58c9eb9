package output

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// ConsoleLogWriter writes the annotated history in git log layout.
type ConsoleLogWriter struct{}

// Write prints each entry headed by "commit <number>  id: <sha>".
func (w *ConsoleLogWriter) Write(report *LogReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	header := newColor(options, color.FgYellow)
	layout := dateLayout(options)

	for i, entry := range limitTop(report.Entries, options.Top) {
		if i > 0 {
			fmt.Fprintln(out)
		}
		header.Fprintf(out, "commit %d  id: %s", entry.Number, entry.Commit.SHA)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Author: %s\n", entry.Commit.Author)
		fmt.Fprintf(out, "Date:   %s\n", entry.Commit.When.Format(layout))
		fmt.Fprintln(out)
		fmt.Fprintln(out, indentMessage(entry.Commit.Message))
	}

	return nil
}

// ConsoleResolveWriter prints one line per resolved token.
type ConsoleResolveWriter struct{}

// Write prints resolved tokens in input order, omitting those that resolved
// to nothing.
func (w *ConsoleResolveWriter) Write(report *ResolveReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	for _, res := range report.Results {
		if !res.Printed {
			continue
		}
		if _, err := fmt.Fprintln(out, res.Line); err != nil {
			return err
		}
	}
	return nil
}

// ConsoleTagWriter renders tags as a table.
type ConsoleTagWriter struct{}

// Write outputs the tag report as a table.
func (w *ConsoleTagWriter) Write(report *TagReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if len(report.Items) == 0 {
		fmt.Fprintln(out, "No tags found.")
		return nil
	}

	missing := newColor(options, color.FgRed)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Tag", "Rev", "From Tip", "Commit"})
	for _, item := range limitTop(report.Items, options.Top) {
		if !item.Found {
			t.AppendRow(table.Row{item.Name, missing.Sprint("-"), missing.Sprint("-"), shortSHA(item.SHA)})
			continue
		}
		t.AppendRow(table.Row{item.Name, item.Number, item.Alias, shortSHA(item.SHA)})
	}
	t.AppendFooter(table.Row{"", "", "Commits", strconv.Itoa(report.DistinctCommits)})
	t.Render()

	return nil
}

func newColor(options OutputOptions, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if !options.Color {
		c.DisableColor()
	}
	return c
}
