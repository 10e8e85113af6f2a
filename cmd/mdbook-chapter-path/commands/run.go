package commands

import (
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/preprocessor"
)

// RunCmd is the preprocessor proper: mdBook writes [context, book] to stdin and reads the
// rewritten book from stdout.
type RunCmd struct{}

func (c *RunCmd) Run(g *Global, _ *CLI) error {
	return preprocessor.New(g.Logger).Handle(g.Stdin, g.Stdout)
}
