package markdown

import (
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/util/sets"
)

// ExtractLinks parses a Markdown body and returns its links in source order, followed by
// reference definitions sorted by label. Code spans and code blocks contribute nothing.
func ExtractLinks(body []byte) []Link {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			// Reference-style links arrive here already resolved to their destination.
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})

	refs := ctx.References()
	slices.SortFunc(refs, func(a, b parser.Reference) int {
		return strings.Compare(string(a.Label()), string(b.Label()))
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}

	return links
}

// LinksTo returns the links of body whose destination, fragment removed, is one of targets.
func LinksTo(body []byte, targets sets.Set[string]) []Link {
	var out []Link
	for _, l := range ExtractLinks(body) {
		dest, _, _ := strings.Cut(l.Destination, "#")
		if targets.Has(dest) {
			out = append(out, l)
		}
	}
	return out
}
