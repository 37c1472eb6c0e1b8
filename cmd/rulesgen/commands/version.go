package commands

import (
	"fmt"

	"git.home.luguber.info/inful/rulesgen/internal/version"
)

// VersionCmd prints build information.
type VersionCmd struct{}

func (VersionCmd) Run(global *Global, _ *CLI) error {
	_, err := fmt.Fprintln(global.stdout(), version.String())
	return err
}
