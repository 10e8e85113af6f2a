package commands

import (
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/pathfor"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/preprocessor"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/report"
)

// IndexCmd prints the name to path table a run would use.
type IndexCmd struct {
	CaptureFlags `embed:""`
}

func (c *IndexCmd) Run(g *Global, _ *CLI) error {
	_, b, cfg, err := c.load()
	if err != nil {
		return err
	}
	idx, err := pathfor.BuildIndex(preprocessor.Nodes(b), cfg.Strict)
	if err != nil {
		return err
	}
	return c.write(g, report.NewIndex(cfg, idx))
}
