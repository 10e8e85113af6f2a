// Package report renders what a run resolved, for the check and index commands.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/chapter"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/config"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/markdown"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/pathfor"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/util/sets"
)

// Format selects the encoding of a report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Report is implemented by the reports of this package.
type Report interface {
	writeText(w io.Writer) error
}

// Encode writes v in the requested format.
func Encode(w io.Writer, format Format, v Report) error {
	switch format {
	case FormatText, "":
		return v.writeText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Index lists the resolved chapter names.
type Index struct {
	BasePath   string              `json:"base_path" yaml:"base_path"`
	Strict     bool                `json:"strict" yaml:"strict"`
	Entries    []pathfor.Entry     `json:"entries" yaml:"entries"`
	Duplicates []pathfor.Duplicate `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
}

// NewIndex summarizes idx under cfg.
func NewIndex(cfg config.Config, idx *pathfor.Index) *Index {
	return &Index{
		BasePath:   cfg.BasePath,
		Strict:     cfg.Strict,
		Entries:    idx.Entries(),
		Duplicates: idx.Duplicates(),
	}
}

func (r *Index) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tTARGET")
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Path, pathfor.JoinBase(r.BasePath, e.Path))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, d := range r.Duplicates {
		fmt.Fprintf(w, "duplicate: %q at %s replaced %s\n", d.Name, d.Path, d.ExistingPath)
	}
	return nil
}

// ChapterLinks lists the links of one chapter that point at a chapter of the book.
type ChapterLinks struct {
	Chapter string          `json:"chapter" yaml:"chapter"`
	Path    string          `json:"path" yaml:"path"`
	Links   []markdown.Link `json:"links" yaml:"links"`
}

// Check is the full result of a dry run.
type Check struct {
	Index        `yaml:",inline"`
	Resolutions  []pathfor.Resolution `json:"resolutions" yaml:"resolutions"`
	ChapterLinks []ChapterLinks       `json:"chapter_links" yaml:"chapter_links"`
}

// NewCheck summarizes a successful run over nodes, whose content is already rewritten.
func NewCheck(cfg config.Config, res *pathfor.Result, nodes []*chapter.Node) *Check {
	targets := make(sets.Set[string], res.Index.Len())
	for _, e := range res.Index.Entries() {
		targets.Add(pathfor.JoinBase(cfg.BasePath, e.Path))
	}

	c := &Check{
		Index:       *NewIndex(cfg, res.Index),
		Resolutions: res.Resolutions,
	}
	_ = chapter.Walk(nodes, func(n *chapter.Node) error {
		if n.Content == "" {
			return nil
		}
		if links := markdown.LinksTo([]byte(n.Content), targets); len(links) > 0 {
			c.ChapterLinks = append(c.ChapterLinks, ChapterLinks{Chapter: n.Name, Path: n.Path, Links: links})
		}
		return nil
	})
	return c
}

func (r *Check) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHAPTER\tREFERENCE\tTARGET")
	for _, res := range r.Resolutions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Chapter, res.Reference, res.Target)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	linked := 0
	for _, cl := range r.ChapterLinks {
		linked += len(cl.Links)
	}
	fmt.Fprintf(w, "\n%d placeholders resolved, %d chapter names indexed, %d links point at chapters\n",
		len(r.Resolutions), len(r.Entries), linked)
	for _, d := range r.Duplicates {
		fmt.Fprintf(w, "duplicate: %q at %s replaced %s\n", d.Name, d.Path, d.ExistingPath)
	}
	return nil
}
