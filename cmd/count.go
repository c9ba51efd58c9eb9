package cmd

import (
	"github.com/masmgr/gitrevno/internal/output"
	"github.com/urfave/cli/v2"
)

// CountCmd returns the count command.
func CountCmd() *cli.Command {
	return &cli.Command{
		Name:   "count",
		Usage:  "Print the total number of commits",
		Flags:  commonFlags(),
		Action: countAction,
	}
}

func countAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		return output.WriteCount(ctx.Sequence.Len(), ctx.OutputOptions(c))
	})
}
