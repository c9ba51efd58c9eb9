package output

import (
	"io"
	"os"
	"strings"
	"time"
)

const reportDateTimeLayout = "2006-01-02T15:04:05Z07:00"

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

// openOutputWriter returns the destination for a report. An explicit
// OutputPath wins over Stdout, which in turn defaults to os.Stdout.
func openOutputWriter(options OutputOptions) (io.Writer, *os.File, error) {
	if options.OutputPath == "" {
		if options.Stdout != nil {
			return options.Stdout, nil, nil
		}
		return os.Stdout, nil, nil
	}
	file, err := os.Create(options.OutputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func dateLayout(options OutputOptions) string {
	if options.DateLayout == "" {
		return "Mon Jan 2 15:04:05 2006 -0700"
	}
	return options.DateLayout
}

func formatTimestamp(t time.Time) string {
	return t.Format(reportDateTimeLayout)
}

// indentMessage indents every line by four spaces, as git log does.
func indentMessage(msg string) string {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}

func truncateMessage(msg string, maxLen int) string {
	if len(msg) <= maxLen {
		return msg
	}
	return msg[:maxLen-3] + "..."
}

func shortSHA(sha string) string {
	if len(sha) <= 8 {
		return sha
	}
	return sha[:8]
}
