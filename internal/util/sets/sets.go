// Package sets holds a small generic set used for chapter target lookups.
package sets

// Set is a hash set of comparable keys.
// Usage: s := sets.New("/docs/intro.md"); s.Add("/docs/setup.md"); if s.Has(dest) {...}
type Set[T comparable] map[T]struct{}

// New creates a set pre-populated with the provided values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts value into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is present. A nil set has nothing.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int { return len(s) }
