package decl

import (
	"fmt"
	"sort"

	"github.com/rohanthewiz/rmatch"
)

// Set is a named collection of patterns. Each pattern is matched on its
// own; a Set never picks between patterns for a path.
// A Set is read-only once compiled and safe for concurrent use.
type Set struct {
	patterns map[string]*rmatch.Pattern
}

// Get returns the named pattern.
func (s *Set) Get(name string) (*rmatch.Pattern, bool) {
	p, ok := s.patterns[name]
	return p, ok
}

// Match matches path against the named pattern.
// An unknown name never matches.
func (s *Set) Match(name, path string) (rmatch.Record, bool) {
	p, ok := s.patterns[name]
	if !ok {
		return nil, false
	}
	return p.Match(path)
}

// Build renders rec with the named pattern.
func (s *Set) Build(name string, rec rmatch.Record, trailingSlash bool) (string, error) {
	p, ok := s.patterns[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p.Build(rec, trailingSlash)
}

// Names returns the pattern names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.patterns))
	for name := range s.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of patterns.
func (s *Set) Len() int {
	return len(s.patterns)
}

// List returns every pattern with its template, sorted by name.
func (s *Set) List() (list []PatternList) {
	for _, name := range s.Names() {
		list = append(list, PatternList{Name: name, Template: s.patterns[name].String()})
	}
	return
}
