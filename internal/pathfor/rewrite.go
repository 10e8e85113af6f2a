package pathfor

import (
	"strings"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/chapter"
)

// Resolution describes one replaced placeholder.
type Resolution struct {
	Chapter     string `json:"chapter" yaml:"chapter"`
	ChapterPath string `json:"chapter_path" yaml:"chapter_path"`
	Reference   string `json:"reference" yaml:"reference"`
	Path        string `json:"path" yaml:"path"`
	Target      string `json:"target" yaml:"target"`
}

// RewriteObserver receives every resolution of a successful rewrite in document order.
type RewriteObserver func(Resolution)

// Rewrite replaces every placeholder in the forest using idx and basePath. The rewrite is
// staged: if any reference fails to resolve, no node is modified.
func Rewrite(nodes []*chapter.Node, idx *Index, basePath string) error {
	return RewriteWith(nodes, idx, basePath, nil)
}

// RewriteWith is Rewrite with an observer that is told about each replacement once the
// whole forest has been rewritten.
func RewriteWith(nodes []*chapter.Node, idx *Index, basePath string, observe RewriteObserver) error {
	type staged struct {
		node    *chapter.Node
		content string
	}
	var (
		pending     []staged
		resolutions []Resolution
	)

	err := chapter.Walk(nodes, func(n *chapter.Node) error {
		if n.Content == "" {
			return nil
		}
		out, res, err := rewriteContent(n.Content, idx, basePath, chapterRef{name: n.Name, path: n.Path})
		if err != nil {
			return err
		}
		if len(res) > 0 {
			pending = append(pending, staged{node: n, content: out})
			resolutions = append(resolutions, res...)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, s := range pending {
		s.node.Content = s.content
	}
	if observe != nil {
		for _, r := range resolutions {
			observe(r)
		}
	}
	return nil
}

// RewriteContent rewrites a single content body outside of any chapter tree.
func RewriteContent(content string, idx *Index, basePath string) (string, error) {
	out, _, err := rewriteContent(content, idx, basePath, chapterRef{})
	return out, err
}

func rewriteContent(content string, idx *Index, basePath string, in chapterRef) (string, []Resolution, error) {
	phs := Scan(content)
	if len(phs) == 0 {
		return content, nil, nil
	}

	var (
		b    strings.Builder
		res  = make([]Resolution, 0, len(phs))
		last int
	)
	b.Grow(len(content))
	for _, ph := range phs {
		p, ok := idx.Lookup(ph.Name)
		if !ok {
			return "", nil, unknownNameError(ph, in)
		}
		target := JoinBase(basePath, p)
		if ph.HasAnchor {
			target += "#" + ph.Anchor
		}
		b.WriteString(content[last:ph.Start])
		b.WriteString(target)
		last = ph.End

		res = append(res, Resolution{
			Chapter:     in.name,
			ChapterPath: in.path,
			Reference:   ph.Reference,
			Path:        p,
			Target:      target,
		})
	}
	b.WriteString(content[last:])
	return b.String(), res, nil
}

// JoinBase prefixes a chapter path with the base path. Backslashes in the chapter path
// become '/', and exactly one '/' separates the two parts. An empty base means "/".
func JoinBase(base, p string) string {
	if base == "" {
		base = "/"
	}
	p = strings.ReplaceAll(p, `\`, "/")
	switch {
	case strings.HasSuffix(base, "/") && strings.HasPrefix(p, "/"):
		return base + p[1:]
	case strings.HasSuffix(base, "/") || strings.HasPrefix(p, "/"):
		return base + p
	default:
		return base + "/" + p
	}
}
