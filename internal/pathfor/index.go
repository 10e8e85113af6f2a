package pathfor

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/chapter"
)

// Entry is one resolved chapter name.
type Entry struct {
	Key  string `json:"key" yaml:"key"`   // case-folded name
	Name string `json:"name" yaml:"name"` // name as declared by the winning chapter
	Path string `json:"path" yaml:"path"`
}

// Duplicate records a name that was declared again and overwrote an earlier entry.
type Duplicate struct {
	Name         string `json:"name" yaml:"name"`
	ExistingPath string `json:"existing_path" yaml:"existing_path"`
	Path         string `json:"path" yaml:"path"`
}

// Index maps case-folded chapter names to declared chapter paths.
// It is read-only once BuildIndex returns.
type Index struct {
	entries    map[string]Entry
	duplicates []Duplicate
}

// FoldName returns the key a chapter name is stored and looked up under.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// BuildIndex walks the forest in document order and indexes every node that has both a
// name and a path. A repeated name overwrites the earlier entry, or fails with
// ErrDuplicateChapterName when strict is set.
func BuildIndex(nodes []*chapter.Node, strict bool) (*Index, error) {
	idx := &Index{entries: make(map[string]Entry)}

	err := chapter.Walk(nodes, func(n *chapter.Node) error {
		if !n.Indexable() {
			return nil
		}
		key := FoldName(n.Name)
		if existing, ok := idx.entries[key]; ok {
			if strict {
				return duplicateNameError(n.Name, existing.Path, n.Path)
			}
			idx.duplicates = append(idx.duplicates, Duplicate{
				Name:         n.Name,
				ExistingPath: existing.Path,
				Path:         n.Path,
			})
		}
		idx.entries[key] = Entry{Key: key, Name: n.Name, Path: n.Path}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Lookup resolves a chapter name case-insensitively to its declared path.
func (i *Index) Lookup(name string) (string, bool) {
	if i == nil {
		return "", false
	}
	e, ok := i.entries[FoldName(name)]
	return e.Path, ok
}

// Len returns the number of distinct names.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.entries)
}

// Entries returns all entries sorted by key.
func (i *Index) Entries() []Entry {
	if i == nil {
		return nil
	}
	out := make([]Entry, 0, len(i.entries))
	for _, e := range i.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Key, b.Key) })
	return out
}

// Duplicates returns the overwritten names in the order they were found.
func (i *Index) Duplicates() []Duplicate {
	if i == nil {
		return nil
	}
	return slices.Clone(i.duplicates)
}
