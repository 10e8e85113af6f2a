package commands

import (
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/preprocessor"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/report"
)

// CheckCmd resolves a captured input the same way a build would and reports every
// placeholder it rewrote, plus the links that already point at chapter files.
type CheckCmd struct {
	CaptureFlags `embed:""`
}

func (c *CheckCmd) Run(g *Global, _ *CLI) error {
	ctx, b, cfg, err := c.load()
	if err != nil {
		return err
	}
	out, err := preprocessor.New(g.Logger).Run(ctx, b, cfg)
	if err != nil {
		return err
	}
	return c.write(g, report.NewCheck(out.Config, out.Result, out.Nodes))
}
