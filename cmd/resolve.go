package cmd

import (
	"fmt"

	"github.com/masmgr/gitrevno/internal/output"
	"github.com/masmgr/gitrevno/internal/revision"
	"github.com/urfave/cli/v2"
)

// ResolveCmd returns the resolve command.
func ResolveCmd() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Aliases:   []string{"r"},
		Usage:     "Translate revision numbers, negative numbers and ranges into commit ids",
		ArgsUsage: "REVISION...",
		Flags:     commonFlags(),
		Action:    resolveAction,
	}
}

func resolveAction(c *cli.Context) error {
	tokens := c.Args().Slice()
	if len(tokens) == 0 {
		return fmt.Errorf("at least one revision is required")
	}

	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		results := revision.ResolveTokens(ctx.Sequence, tokens)
		for _, res := range results {
			if !res.Printed {
				ctx.Logger.Debug("ignoring revision outside history", "token", res.Token, "commits", ctx.Sequence.Len())
			}
		}

		opts := ctx.OutputOptions(c)
		writer := output.NewResolveReportWriter(opts.Format)
		return writer.Write(&output.ResolveReport{Results: results}, opts)
	})
}
