package commands

import (
	"fmt"

	"git.home.luguber.info/inful/rulesgen/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing spec file"`
}

func (i *InitCmd) Run(global *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = config.DefaultSpecFile
	}
	out := global.stdout()
	_, _ = fmt.Fprintf(out, "Writing example spec to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
