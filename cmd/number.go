package cmd

import (
	"errors"
	"fmt"

	"github.com/masmgr/gitrevno/internal/output"
	"github.com/masmgr/gitrevno/internal/revision"
	"github.com/urfave/cli/v2"
)

// NumberCmd returns the number command.
func NumberCmd() *cli.Command {
	return &cli.Command{
		Name:      "number",
		Usage:     "Print the revision number of commit ids or unique id prefixes",
		ArgsUsage: "COMMIT...",
		Flags:     commonFlags(),
		Action:    numberAction,
	}
}

func numberAction(c *cli.Context) error {
	ids := c.Args().Slice()
	if len(ids) == 0 {
		return fmt.Errorf("at least one commit id is required")
	}

	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		var errs []error
		items := make([]output.NumberItem, 0, len(ids))
		for _, id := range ids {
			n, err := revision.Number(ctx.Sequence, id)
			if err != nil {
				ctx.Logger.Debug("cannot number commit", "id", id, "err", err)
				errs = append(errs, err)
				continue
			}
			items = append(items, output.NumberItem{
				ID:     ctx.Sequence.At(n),
				Query:  id,
				Number: n,
				Alias:  revision.NegativeAlias(n, ctx.Sequence.Len()),
			})
		}

		if err := output.WriteNumbers(items, ctx.OutputOptions(c)); err != nil {
			return err
		}
		return errors.Join(errs...)
	})
}
