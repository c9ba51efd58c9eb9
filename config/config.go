package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileName is the configuration file looked up in the working and home directories.
const FileName = ".gitrevno.json"

// Config is the root configuration structure.
type Config struct {
	History HistoryConfig `json:"history"`
	Output  OutputConfig  `json:"output"`
	Tags    TagsConfig    `json:"tags"`
}

// HistoryConfig controls how the commit sequence is read.
type HistoryConfig struct {
	Backend     string `json:"backend"`     // "gogit" or "git"
	Rev         string `json:"rev"`         // Default: "HEAD"
	FirstParent bool   `json:"firstParent"` // Follow only first parents
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format     string `json:"format"`     // console, json, csv, markdown
	Color      bool   `json:"color"`      // Default: true
	DateLayout string `json:"dateLayout"` // Go time layout for log dates
}

// TagsConfig holds defaults for the tags command.
type TagsConfig struct {
	Match []string `json:"match"` // Glob patterns applied to tag names
}

// DefaultDateLayout matches the date line printed by git log.
const DefaultDateLayout = "Mon Jan 2 15:04:05 2006 -0700"

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Backend: "gogit",
			Rev:     "HEAD",
		},
		Output: OutputConfig{
			Format:     "console",
			Color:      true,
			DateLayout: DefaultDateLayout,
		},
		Tags: TagsConfig{
			Match: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{FileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, FileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, FileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Output.DateLayout == "" {
		cfg.Output.DateLayout = DefaultDateLayout
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
