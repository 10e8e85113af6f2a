package commands

import (
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/config"
	ferrors "git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation/errors"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/logfields"
)

// SupportsCmd answers mdBook's renderer probe. A nil return exits 0; an unsupported
// renderer exits 1 without printing anything.
type SupportsCmd struct {
	Renderer string `arg:"" help:"Renderer name, as passed by mdBook"`
	BookTOML string `name:"book-toml" help:"Read the supported renderers from this book.toml"`
}

func (c *SupportsCmd) Run(g *Global, _ *CLI) error {
	cfg := config.Default()
	if c.BookTOML != "" {
		host, err := config.LoadBookTOML(c.BookTOML)
		if err != nil {
			return err
		}
		if cfg, err = config.FromHost(host); err != nil {
			return err
		}
	}
	if cfg.Supports(c.Renderer) {
		g.Logger.Debug("Renderer supported", logfields.Renderer(c.Renderer))
		return nil
	}
	return ferrors.UnsupportedError("renderer not supported").
		WithContext(logfields.KeyRenderer, c.Renderer).
		Build()
}
