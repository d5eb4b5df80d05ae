// Package config loads hangman settings from an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "hangman.hcl"

// Config represents the complete hangman configuration.
type Config struct {
	Game GameSettings
	UI   UISettings
}

// fileConfig is the on-disk shape; both blocks may be omitted.
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings controls word selection, saving and input handling.
type GameSettings struct {
	Dictionary      string `hcl:"dictionary,optional"`
	SaveFile        string `hcl:"save_file,optional"`
	ExitAfterSave   bool   `hcl:"exit_after_save,optional"`
	MaxInputRetries int    `hcl:"max_input_retries,optional"`
	Seed            int64  `hcl:"seed,optional"`
}

// UISettings controls output styling and diagnostics.
type UISettings struct {
	Color    *bool  `hcl:"color,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// Default returns the built-in configuration. An empty dictionary means the
// embedded word list.
func Default() *Config {
	color := true
	return &Config{
		Game: GameSettings{
			Dictionary:      "",
			SaveFile:        "save.yml",
			ExitAfterSave:   false,
			MaxInputRetries: 20,
			Seed:            0,
		},
		UI: UISettings{
			Color:    &color,
			LogLevel: "warn",
			LogFile:  "hangman.log",
		},
	}
}

// Load reads the configuration at filename. A missing file yields the
// defaults; settings absent from the file keep their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Config{}
	if fc.Game != nil {
		cfg.Game = *fc.Game
	}
	if fc.UI != nil {
		cfg.UI = *fc.UI
	}

	// Apply defaults for missing values
	defaults := Default()
	if cfg.Game.SaveFile == "" {
		cfg.Game.SaveFile = defaults.Game.SaveFile
	}
	if cfg.Game.MaxInputRetries == 0 {
		cfg.Game.MaxInputRetries = defaults.Game.MaxInputRetries
	}
	if cfg.UI.Color == nil {
		cfg.UI.Color = defaults.UI.Color
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = defaults.UI.LogFile
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Game.SaveFile == "" {
		return fmt.Errorf("save file is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// ColorEnabled reports whether styled output was requested.
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}

// RetryLimit returns the number of consecutive invalid answers tolerated
// before giving up, or 0 for no limit. A negative max_input_retries
// disables the limit.
func (c *Config) RetryLimit() int {
	if c.Game.MaxInputRetries < 0 {
		return 0
	}
	return c.Game.MaxInputRetries
}
