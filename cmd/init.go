package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/gitrevno/config"
	"github.com/urfave/cli/v2"
)

// InitCmd returns the init command.
func InitCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a configuration file with the default settings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path of the configuration file to write",
				Value:   config.FileName,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
		},
		Action: initAction,
	}
}

func initAction(c *cli.Context) error {
	path := c.String("config")
	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
	return nil
}
