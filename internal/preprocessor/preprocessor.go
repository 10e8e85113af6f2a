// Package preprocessor runs chapter path resolution as an mdBook preprocessor.
package preprocessor

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/book"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/chapter"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/config"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/logfields"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/pathfor"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/version"
)

// Preprocessor resolves {{#path_for}} placeholders in an mdBook book.
type Preprocessor struct {
	logger *slog.Logger
}

// New creates a preprocessor that logs to logger, or to the default logger if nil.
func New(logger *slog.Logger) *Preprocessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preprocessor{logger: logger}
}

// Name returns the preprocessor's name as used in book.toml.
func (p *Preprocessor) Name() string { return config.PreprocessorName }

// Outcome is the result of a successful run.
type Outcome struct {
	Config config.Config
	Result *pathfor.Result
	Nodes  []*chapter.Node
}

// ResolveConfig picks the host configuration: bookTOML when given, the context's config
// otherwise.
func ResolveConfig(ctx *book.Context, bookTOML map[string]any) (config.Config, error) {
	host := bookTOML
	if host == nil && ctx != nil {
		host = ctx.Config
	}
	return config.FromHost(host)
}

// Run rewrites the book's chapters in place. On error the book is left unchanged.
func (p *Preprocessor) Run(ctx *book.Context, b *book.Book, cfg config.Config) (*Outcome, error) {
	start := time.Now()
	log := p.logger.With(logfields.RunID(uuid.NewString()))

	if ctx != nil && !version.MatchesHost(ctx.MDBookVersion) {
		log.Warn("Preprocessor was built for a different mdBook version",
			"built_for", version.MDBookVersion,
			logfields.MDBookVersion(ctx.MDBookVersion))
	}

	f := newForest(b)
	res, err := pathfor.Process(f.nodes, cfg.Options())
	if err != nil {
		return nil, err
	}
	for _, d := range res.Index.Duplicates() {
		log.Warn("Duplicate chapter name, the later chapter wins",
			logfields.Name(d.Name),
			logfields.Path(d.Path),
			logfields.ExistingPath(d.ExistingPath))
	}
	f.apply()

	log.Debug("Chapter paths resolved",
		logfields.Chapters(chapter.Count(f.nodes)),
		logfields.Placeholders(len(res.Resolutions)),
		logfields.BasePath(cfg.BasePath),
		logfields.Strict(cfg.Strict),
		logfields.Since(start))

	return &Outcome{Config: cfg, Result: res, Nodes: f.nodes}, nil
}

// Handle serves one mdBook invocation: it reads [context, book] from r and writes the
// rewritten book to w. Nothing is written unless the whole run succeeded.
func (p *Preprocessor) Handle(r io.Reader, w io.Writer) error {
	ctx, b, err := book.ReadInput(r)
	if err != nil {
		return err
	}
	cfg, err := ResolveConfig(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := p.Run(ctx, b, cfg); err != nil {
		return err
	}
	return book.WriteBook(w, b)
}
