package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONLogWriter writes annotated logs as JSON.
type JSONLogWriter struct{}

// JSONLogReport is the JSON output structure for the annotated log.
type JSONLogReport struct {
	RepoPath    string         `json:"repo"`
	Rev         string         `json:"rev"`
	GeneratedAt string         `json:"generatedAt"`
	Total       int            `json:"total"`
	Entries     []JSONLogEntry `json:"entries"`
}

// JSONLogEntry is the JSON output structure for a single commit.
type JSONLogEntry struct {
	Number      int    `json:"number"`
	FromTip     int    `json:"fromTip"`
	Alias       int    `json:"alias"`
	SHA         string `json:"sha"`
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	Date        string `json:"date"`
	Message     string `json:"message"`
}

// Write outputs the annotated log as JSON.
func (w *JSONLogWriter) Write(report *LogReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	jsonEntries := make([]JSONLogEntry, len(entries))
	for i, entry := range entries {
		jsonEntries[i] = JSONLogEntry{
			Number:      entry.Number,
			FromTip:     entry.TipDistance,
			Alias:       entry.Alias,
			SHA:         entry.Commit.SHA,
			AuthorName:  entry.Commit.Author.Name,
			AuthorEmail: entry.Commit.Author.Email,
			Date:        formatTimestamp(entry.Commit.When),
			Message:     entry.Commit.Message,
		}
	}

	jsonReport := JSONLogReport{
		RepoPath:    report.RepoPath,
		Rev:         report.Rev,
		GeneratedAt: formatTimestamp(report.GeneratedAt),
		Total:       report.Total,
		Entries:     jsonEntries,
	}

	return writeJSON(jsonReport, options)
}

// JSONResolveWriter writes token resolutions as JSON.
type JSONResolveWriter struct{}

// JSONResolveItem is the JSON output structure for one token.
// Result is null when the token resolved to nothing.
type JSONResolveItem struct {
	Token     string            `json:"token"`
	Result    *string           `json:"result"`
	Separator string            `json:"separator,omitempty"`
	Parts     []JSONResolvePart `json:"parts"`
}

// JSONResolvePart describes one resolved side of a token.
type JSONResolvePart struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// Write outputs the resolutions as a JSON array in input order.
func (w *JSONResolveWriter) Write(report *ResolveReport, options OutputOptions) error {
	items := make([]JSONResolveItem, len(report.Results))
	for i, res := range report.Results {
		item := JSONResolveItem{
			Token: res.Token,
			Parts: make([]JSONResolvePart, len(res.Parts)),
		}
		if res.Printed {
			line := res.Line
			item.Result = &line
		}
		if res.Range != nil {
			item.Separator = res.Range.Separator
		}
		for j, part := range res.Parts {
			item.Parts[j] = JSONResolvePart{Kind: part.Kind.String(), Text: part.Text}
		}
		items[i] = item
	}

	return writeJSON(items, options)
}

// JSONTagWriter writes tag reports as JSON.
type JSONTagWriter struct{}

// JSONTagReport is the JSON output structure for the tag report.
type JSONTagReport struct {
	RepoPath        string        `json:"repo"`
	DistinctCommits int           `json:"distinctCommits"`
	Items           []JSONTagItem `json:"items"`
}

// JSONTagItem is the JSON output structure for a single tag.
// Number and Alias are null when the commit is outside the numbered history.
type JSONTagItem struct {
	Name   string `json:"name"`
	SHA    string `json:"sha"`
	Number *int   `json:"number"`
	Alias  *int   `json:"alias"`
}

// Write outputs the tag report as JSON.
func (w *JSONTagWriter) Write(report *TagReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	jsonItems := make([]JSONTagItem, len(items))
	for i, item := range items {
		jsonItem := JSONTagItem{Name: item.Name, SHA: item.SHA}
		if item.Found {
			number, alias := item.Number, item.Alias
			jsonItem.Number = &number
			jsonItem.Alias = &alias
		}
		jsonItems[i] = jsonItem
	}

	return writeJSON(JSONTagReport{
		RepoPath:        report.RepoPath,
		DistinctCommits: report.DistinctCommits,
		Items:           jsonItems,
	}, options)
}

// WriteCount prints the number of commits, as JSON when requested.
func WriteCount(count int, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if options.Format == FormatJSON {
		return encodeJSON(out, struct {
			Count int `json:"count"`
		}{Count: count})
	}
	_, err = fmt.Fprintln(out, count)
	return err
}

func writeJSON(v interface{}, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return encodeJSON(out, v)
}

func encodeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
