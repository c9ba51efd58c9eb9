package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/masmgr/gitrevno/config"
	"github.com/masmgr/gitrevno/internal/git"
	"github.com/masmgr/gitrevno/internal/logging"
	"github.com/masmgr/gitrevno/internal/output"
	"github.com/masmgr/gitrevno/internal/revision"
	"github.com/urfave/cli/v2"
)

// newHistoryProvider is replaced in tests.
var newHistoryProvider = git.NewHistoryProvider

// CommandContext holds common state for command execution.
// The history is read exactly once per invocation and is read-only afterwards.
type CommandContext struct {
	Config   *config.Config
	Logger   *log.Logger
	RepoPath string
	Provider git.HistoryProvider
	History  []git.CommitInfo
	Sequence revision.Sequence
}

// NewCommandContext creates a context from CLI flags.
// It loads configuration, opens the repository and reads the full history.
// Any failure here is fatal: nothing is rendered from a partial history.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logger := logging.New(errWriter(c), c.Bool("verbose"))

	repoPath := c.String("repo")
	opts, err := readOptions(repoPath, cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("opening repository", "path", repoPath, "backend", opts.Backend, "rev", cfg.History.Rev)
	provider, err := newHistoryProvider(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	history, err := provider.ReadHistory(contextOf(c))
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	logger.Debug("read history", "commits", len(history))

	return &CommandContext{
		Config:   cfg,
		Logger:   logger,
		RepoPath: repoPath,
		Provider: provider,
		History:  history,
		Sequence: revision.NewSequence(git.CommitIDs(history)),
	}, nil
}

// executeWithContext builds the command context and runs fn with it.
func executeWithContext(c *cli.Context, fn func(ctx *CommandContext, c *cli.Context) error) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	return fn(ctx, c)
}

// OutputOptions creates OutputOptions from CLI flags and configuration.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(ctx.Config.Output.Format),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
		Color:      ctx.Config.Output.Color,
		DateLayout: ctx.Config.Output.DateLayout,
		Stdout:     c.App.Writer,
	}
}

func contextOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

func errWriter(c *cli.Context) io.Writer {
	if c.App != nil && c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}
