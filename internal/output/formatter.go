package output

import (
	"io"
	"time"

	"github.com/masmgr/gitrevno/internal/git"
	"github.com/masmgr/gitrevno/internal/revision"
)

// Compile-time interface conformance checks.
// These ensure that all writer types correctly implement their respective interfaces.
var (
	// LogReportWriter implementations
	_ LogReportWriter = (*ConsoleLogWriter)(nil)
	_ LogReportWriter = (*JSONLogWriter)(nil)
	_ LogReportWriter = (*CSVLogWriter)(nil)
	_ LogReportWriter = (*MarkdownLogWriter)(nil)

	// ResolveReportWriter implementations
	_ ResolveReportWriter = (*ConsoleResolveWriter)(nil)
	_ ResolveReportWriter = (*JSONResolveWriter)(nil)

	// TagReportWriter implementations
	_ TagReportWriter = (*ConsoleTagWriter)(nil)
	_ TagReportWriter = (*JSONTagWriter)(nil)
	_ TagReportWriter = (*CSVTagWriter)(nil)
	_ TagReportWriter = (*MarkdownTagWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
	Color      bool
	DateLayout string
	// Stdout replaces os.Stdout when OutputPath is empty.
	Stdout io.Writer
}

// LogEntry is one annotated commit.
// Number is the storage index (earliest commit = 0); TipDistance counts
// from the most recent commit; Alias is the negative token for the same commit.
type LogEntry struct {
	Number      int
	TipDistance int
	Alias       int
	Commit      git.CommitInfo
}

// LogReport holds the annotated history, newest first.
type LogReport struct {
	RepoPath    string
	Rev         string
	GeneratedAt time.Time
	Total       int
	Entries     []LogEntry
}

// ResolveReport holds token resolutions in input order.
type ResolveReport struct {
	Results []revision.TokenResult
}

// TagItem is a tag annotated with its revision number.
// Found is false when the tagged commit is not part of the numbered history.
type TagItem struct {
	Name   string
	SHA    string
	Number int
	Alias  int
	Found  bool
}

// TagReport holds tags sorted by name.
type TagReport struct {
	RepoPath        string
	Items           []TagItem
	DistinctCommits int
}

// LogReportWriter writes annotated logs.
type LogReportWriter interface {
	Write(report *LogReport, options OutputOptions) error
}

// ResolveReportWriter writes token resolutions.
type ResolveReportWriter interface {
	Write(report *ResolveReport, options OutputOptions) error
}

// TagReportWriter writes tag reports.
type TagReportWriter interface {
	Write(report *TagReport, options OutputOptions) error
}

// NewLogReportWriter creates a log writer for the specified format.
func NewLogReportWriter(format OutputFormat) LogReportWriter {
	switch format {
	case FormatJSON:
		return &JSONLogWriter{}
	case FormatCSV:
		return &CSVLogWriter{}
	case FormatMarkdown:
		return &MarkdownLogWriter{}
	default:
		return &ConsoleLogWriter{}
	}
}

// NewResolveReportWriter creates a resolution writer for the specified format.
// Only JSON has a structured form; every other format prints plain lines.
func NewResolveReportWriter(format OutputFormat) ResolveReportWriter {
	switch format {
	case FormatJSON:
		return &JSONResolveWriter{}
	default:
		return &ConsoleResolveWriter{}
	}
}

// NewTagReportWriter creates a tag writer for the specified format.
func NewTagReportWriter(format OutputFormat) TagReportWriter {
	switch format {
	case FormatJSON:
		return &JSONTagWriter{}
	case FormatCSV:
		return &CSVTagWriter{}
	case FormatMarkdown:
		return &MarkdownTagWriter{}
	default:
		return &ConsoleTagWriter{}
	}
}
