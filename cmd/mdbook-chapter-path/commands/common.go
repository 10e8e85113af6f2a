package commands

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/book"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/config"
	ferrors "git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation/errors"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/logfields"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/preprocessor"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/report"
)

// Global carries the process streams and logger into subcommands.
type Global struct {
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging (stderr)"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run      RunCmd      `cmd:"" default:"1" help:"Preprocess the book mdBook writes to stdin (default)"`
	Supports SupportsCmd `cmd:"" help:"Check whether a renderer is supported by this preprocessor"`
	Check    CheckCmd    `cmd:"" help:"Resolve every placeholder of a captured preprocessor input without writing the book"`
	Index    IndexCmd    `cmd:"" help:"Print the chapter name index of a captured preprocessor input"`
}

// AfterApply runs after flag parsing; setup logging once. Logs go to stderr because stdout
// carries the book back to mdBook.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// CaptureFlags are shared by the commands that work on a saved [context, book] file.
type CaptureFlags struct {
	Input    string        `arg:"" help:"File holding a captured [context, book] preprocessor input"`
	BookTOML string        `name:"book-toml" help:"Read settings from this book.toml instead of the captured context"`
	Format   report.Format `short:"f" default:"text" enum:"text,json,yaml" help:"Output format (text, json, yaml)"`
	Output   string        `short:"o" help:"Write the report to this file instead of stdout"`
}

func (f *CaptureFlags) load() (*book.Context, *book.Book, config.Config, error) {
	file, err := os.Open(f.Input)
	if err != nil {
		return nil, nil, config.Config{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot open input").
			WithContext("file", f.Input).
			Build()
	}
	defer func() {
		_ = file.Close()
	}()

	ctx, b, err := book.ReadInput(file)
	if err != nil {
		return nil, nil, config.Config{}, err
	}

	var host map[string]any
	if f.BookTOML != "" {
		if host, err = config.LoadBookTOML(f.BookTOML); err != nil {
			return nil, nil, config.Config{}, err
		}
	}
	cfg, err := preprocessor.ResolveConfig(ctx, host)
	if err != nil {
		return nil, nil, config.Config{}, err
	}
	return ctx, b, cfg, nil
}

func (f *CaptureFlags) write(g *Global, r report.Report) error {
	var buf bytes.Buffer
	err := report.Encode(&buf, f.Format, r)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "cannot encode report").Build()
	}
	if f.Output == "" {
		_, err = g.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(f.Output, buf.Bytes(), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot write report").
			WithContext("file", f.Output).
			Build()
	}
	g.Logger.Info("Report written", logfields.File(f.Output), slog.String("format", string(f.Format)))
	return nil
}
