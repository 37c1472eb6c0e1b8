package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/rulesgen/cmd/rulesgen/commands"
	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("rulesgen"),
		kong.Description("Generate agent rules and skills from a shared hub repository"),
		kong.UsageOnError(),
	)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&commands.Global{Logger: slog.Default(), Stdout: os.Stdout}, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
