package output

import (
	"encoding/csv"
	"fmt"
)

// CSVLogWriter writes annotated logs as CSV.
type CSVLogWriter struct{}

// Write outputs the annotated log as CSV, one row per commit.
func (w *CSVLogWriter) Write(report *LogReport, options OutputOptions) error {
	writer, closeFn, err := createCSVWriter(options)
	if err != nil {
		return err
	}
	defer closeFn()

	// Write header
	headers := []string{"Number", "FromTip", "Alias", "SHA", "AuthorName", "AuthorEmail", "Date", "Subject"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	// Write data
	for _, entry := range limitTop(report.Entries, options.Top) {
		row := []string{
			fmt.Sprintf("%d", entry.Number),
			fmt.Sprintf("%d", entry.TipDistance),
			fmt.Sprintf("%d", entry.Alias),
			entry.Commit.SHA,
			entry.Commit.Author.Name,
			entry.Commit.Author.Email,
			formatTimestamp(entry.Commit.When),
			entry.Commit.Subject(),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVTagWriter writes tag reports as CSV.
type CSVTagWriter struct{}

// Write outputs the tag report as CSV. Tags outside the numbered history
// have empty Number and Alias cells.
func (w *CSVTagWriter) Write(report *TagReport, options OutputOptions) error {
	writer, closeFn, err := createCSVWriter(options)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := writer.Write([]string{"Tag", "Number", "Alias", "SHA"}); err != nil {
		return err
	}

	for _, item := range limitTop(report.Items, options.Top) {
		number, alias := "", ""
		if item.Found {
			number = fmt.Sprintf("%d", item.Number)
			alias = fmt.Sprintf("%d", item.Alias)
		}
		if err := writer.Write([]string{item.Name, number, alias, item.SHA}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func createCSVWriter(options OutputOptions) (*csv.Writer, func(), error) {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {}
	if file != nil {
		closeFn = func() { file.Close() }
	}
	return csv.NewWriter(out), closeFn, nil
}
