package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `short:"l" help:"Log level: debug, info, warn or error (overrides LOG_LEVEL)"`

	Web     WebCmd     `cmd:"" default:"withargs" help:"Serve the game in the browser"`
	Discord DiscordCmd `cmd:"" help:"Run the Discord bot"`
	TUI     TUICmd     `cmd:"tui" help:"Play in the terminal"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjackr"),
		kong.Description("Single-player blackjack against the dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
