package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mdbook-chapter-path/cmd/mdbook-chapter-path/commands"
	ferrors "git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation/errors"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("mdbook-chapter-path"),
		kong.Description("mdBook preprocessor that replaces {{#path_for NAME}} with the path of the named chapter."),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default(), Stdin: os.Stdin, Stdout: os.Stdout}
	err := parser.Run(global, &cli)

	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
