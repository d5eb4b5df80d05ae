package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play in the terminal (default)"`
	TUI     TUICmd           `cmd:"tui" help:"Play in a full-screen interface"`
}

// Globals are flags shared by every command. Set flags override the
// config file.
type Globals struct {
	Config        string `short:"c" default:"hangman.hcl" help:"Path to HCL configuration file"`
	Words         string `short:"w" help:"Dictionary file, one word per line (overrides config)"`
	SaveFile      string `help:"Where the saved game is kept (overrides config)"`
	Seed          int64  `help:"Seed for word selection; 0 picks one at random (overrides config)"`
	ExitAfterSave bool   `help:"Stop playing after saving the game"`
	NoColor       bool   `help:"Disable styled output"`
	LogLevel      string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	LogFile       string `help:"Log file path (overrides config)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hangman"),
		kong.Description("Guess the secret word one letter at a time"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
