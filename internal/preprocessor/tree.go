package preprocessor

import (
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/book"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/chapter"
)

// binding ties a chapter node back to the book chapter it was made from.
type binding struct {
	node *chapter.Node
	ch   *book.Chapter
}

// forest mirrors the book's items as chapter nodes. Part titles become named nodes without
// a path, separators become empty nodes, drafts keep their name but have no path.
type forest struct {
	nodes    []*chapter.Node
	bindings []binding
}

func newForest(b *book.Book) *forest {
	f := &forest{}
	f.nodes = f.convert(b.Items)
	return f
}

func (f *forest) convert(items []*book.Item) []*chapter.Node {
	nodes := make([]*chapter.Node, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		switch it.Kind {
		case book.KindChapter:
			n := &chapter.Node{
				Name:    it.Chapter.Name,
				Path:    it.Chapter.PathString(),
				Content: it.Chapter.Content,
			}
			f.bindings = append(f.bindings, binding{node: n, ch: it.Chapter})
			n.Children = f.convert(it.Chapter.SubItems)
			nodes = append(nodes, n)
		case book.KindPartTitle:
			nodes = append(nodes, &chapter.Node{Name: it.PartTitle})
		case book.KindSeparator:
			nodes = append(nodes, &chapter.Node{})
		}
	}
	return nodes
}

// apply copies rewritten content back into the book.
func (f *forest) apply() {
	for _, b := range f.bindings {
		b.ch.Content = b.node.Content
	}
}

// Nodes returns the book as a chapter forest without linking it back to the book.
func Nodes(b *book.Book) []*chapter.Node {
	return newForest(b).nodes
}
