// Package sets provides a small generic set used for dedupe and membership.
package sets

// Set is a hash set of comparable keys.
type Set[T comparable] map[T]struct{}

// New creates a set holding vals.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Insert adds v and reports whether it was absent.
func (s Set[T]) Insert(v T) bool {
	if s.Has(v) {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Keep returns the values of in not yet seen, preserving order, and marks them seen.
func (s Set[T]) Keep(in []T) []T {
	var out []T
	for _, v := range in {
		if s.Insert(v) {
			out = append(out, v)
		}
	}
	return out
}
