// Package chapter models the book as an ordered forest of chapter nodes.
package chapter

// Node is one entry of the table of contents.
//
// Name is empty for separators, Path is empty for drafts and part titles. Children are
// owned by their parent and kept in table-of-contents order.
type Node struct {
	Name     string
	Path     string
	Content  string
	Children []*Node
}

// Indexable reports whether the node can be the target of a chapter reference.
func (n *Node) Indexable() bool {
	return n.Name != "" && n.Path != ""
}

// WalkFunc is called for every node in document order. Returning an error stops the walk.
type WalkFunc func(n *Node) error

// Walk visits the forest depth-first in pre-order: a node, then its children, then its
// next sibling.
func Walk(nodes []*Node, fn WalkFunc) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := fn(n); err != nil {
			return err
		}
		if err := Walk(n.Children, fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of nodes in the forest.
func Count(nodes []*Node) int {
	total := 0
	_ = Walk(nodes, func(*Node) error {
		total++
		return nil
	})
	return total
}
