package cmd

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/masmgr/gitrevno/internal/git"
	"github.com/masmgr/gitrevno/internal/output"
	"github.com/urfave/cli/v2"
)

// TagsCmd returns the tags command.
func TagsCmd() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "List tags with the revision number of the commit they point to",
		Flags: append(commonFlags(),
			topFlag(),
			&cli.StringSliceFlag{
				Name:    "match",
				Aliases: []string{"m"},
				Usage:   "Only list tags matching a glob pattern (repeatable, e.g. 'v1.*')",
			},
		),
		Action: tagsAction,
	}
}

func tagsAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		patterns := c.StringSlice("match")
		if len(patterns) == 0 {
			patterns = ctx.Config.Tags.Match
		}
		for _, p := range patterns {
			if !doublestar.ValidatePattern(p) {
				return fmt.Errorf("invalid tag pattern %q", p)
			}
		}

		tags, err := ctx.Provider.ListTags(contextOf(c))
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}
		tags = filterTags(tags, patterns)
		ctx.Logger.Debug("listed tags", "count", len(tags), "patterns", patterns)

		report := buildTagReport(ctx, tags)
		opts := ctx.OutputOptions(c)
		writer := output.NewTagReportWriter(opts.Format)
		return writer.Write(report, opts)
	})
}

// filterTags keeps tags whose name matches any pattern.
// No patterns means all tags.
func filterTags(tags []git.TagRef, patterns []string) []git.TagRef {
	if len(patterns) == 0 {
		return tags
	}
	filtered := make([]git.TagRef, 0, len(tags))
	for _, tag := range tags {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, tag.Name); ok {
				filtered = append(filtered, tag)
				break
			}
		}
	}
	return filtered
}
