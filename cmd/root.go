package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/masmgr/gitrevno/config"
	"github.com/masmgr/gitrevno/internal/git"
	"github.com/masmgr/gitrevno/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "gitrevno",
		Usage:     "Sequential revision numbers for Git commits",
		UsageText: "gitrevno [options] [REVISION...]",
		Description: "Without arguments, prints the log with every commit numbered from 0 (the first commit).\n" +
			"Each REVISION is printed as the commit id it names:\n" +
			"  N         commit number N\n" +
			"  -N        N-th commit counted back from the most recent (-1 is the tip)\n" +
			"  A..B      range, either side a number or a tag; B may be omitted\n" +
			"  A...B     three-dot range\n" +
			"Anything else (tags, branches, hashes, dotted versions) is printed unchanged.\n" +
			"Invalid revision numbers are silently ignored.\n" +
			"A revision named like a command (log, l, resolve, r, count, number, tags, init)\n" +
			"runs that command; use \"gitrevno resolve <name>\" to resolve it.",
		Version: "1.0.0",
		Commands: []*cli.Command{
			LogCmd(),
			ResolveCmd(),
			CountCmd(),
			NumberCmd(),
			TagsCmd(),
			InitCmd(),
		},
		Flags: append(commonFlags(),
			&cli.BoolFlag{
				Name:  "count",
				Usage: "Print the total number of commits",
			},
			topFlag(),
		),
		Action: rootAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path inside the Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "rev",
			Usage: "Revision whose history is numbered (default: from config or HEAD)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend (gogit, git)",
		},
		&cli.BoolFlag{
			Name:  "first-parent",
			Usage: "Follow only the first parent of merge commits",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log diagnostics to stderr",
		},
	}
}

func topFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "top",
		Aliases: []string{"n"},
		Usage:   "Number of entries to show (0 for all)",
	}
}

// valueFlags lists flags that consume the following argument.
var valueFlags = map[string]bool{
	"-r": true, "--repo": true,
	"--rev":     true,
	"--backend": true,
	"-c": true, "--config": true,
	"-f": true, "--format": true,
	"-o": true, "--output": true,
	"-n": true, "--top": true,
	"-m": true, "--match": true,
}

// normalizeArgs inserts "--" before the revision arguments when any of them
// is negative, so that "-2" or "-3..-1" reach the command as arguments
// instead of unknown flags.
func normalizeArgs(app *cli.App, args []string) []string {
	commands := make(map[string]bool)
	for _, command := range app.Commands {
		commands[command.Name] = true
		for _, alias := range command.Aliases {
			commands[alias] = true
		}
	}

	seenCommand := false
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case valueFlags[arg]:
			i++
		case isNegativeToken(arg):
			return insertTerminator(args, i)
		case strings.HasPrefix(arg, "-"):
		case commands[arg] && !seenCommand:
			seenCommand = true
		default:
			for _, rest := range args[i+1:] {
				if isNegativeToken(rest) {
					return insertTerminator(args, i)
				}
			}
			return args
		}
	}
	return args
}

func insertTerminator(args []string, i int) []string {
	normalized := make([]string, 0, len(args)+1)
	normalized = append(normalized, args[:i]...)
	normalized = append(normalized, "--")
	return append(normalized, args[i:]...)
}

func isNegativeToken(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9'
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch strings.ToLower(s) {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if backend := c.String("backend"); backend != "" {
		cfg.History.Backend = backend
	}
	if rev := c.String("rev"); rev != "" {
		cfg.History.Rev = rev
	}
	if c.Bool("first-parent") {
		cfg.History.FirstParent = true
	}
	if format := c.String("format"); format != "" {
		cfg.Output.Format = format
	}
	if c.Bool("no-color") {
		cfg.Output.Color = false
	}

	return cfg, nil
}

// readOptions converts configuration into history reader options.
func readOptions(repoPath string, cfg *config.Config) (git.ReadOptions, error) {
	backend, err := git.ParseBackend(cfg.History.Backend)
	if err != nil {
		return git.ReadOptions{}, err
	}
	return git.ReadOptions{
		RepoPath:    repoPath,
		Rev:         cfg.History.Rev,
		FirstParent: cfg.History.FirstParent,
		Backend:     backend,
	}, nil
}

// rootAction prints the annotated log without arguments and resolves
// each argument as a revision token otherwise.
func rootAction(c *cli.Context) error {
	if c.Bool("count") {
		return countAction(c)
	}
	if c.NArg() == 0 {
		return logAction(c)
	}
	return resolveAction(c)
}

// Run executes the CLI application.
func Run() {
	app := App()
	if err := app.Run(normalizeArgs(app, os.Args)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
