package cmd

import (
	"time"

	"github.com/masmgr/gitrevno/internal/output"
	"github.com/urfave/cli/v2"
)

// LogCmd returns the log command.
func LogCmd() *cli.Command {
	return &cli.Command{
		Name:    "log",
		Aliases: []string{"l"},
		Usage:   "Print the history with a revision number beside every commit",
		Flags:   append(commonFlags(), topFlag()),
		Action:  logAction,
	}
}

func logAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		report := buildLogReport(ctx, time.Now())

		opts := ctx.OutputOptions(c)
		writer := output.NewLogReportWriter(opts.Format)
		return writer.Write(report, opts)
	})
}
