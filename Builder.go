package rmatch

import (
	"regexp"
)

// Builder accumulates segment matchers fluently:
//
//	user := rmatch.Path.Raw("users").Num("id")
//	rec, ok := user.Match("/users/42") // Record{"id": 42}, true
//
// Every append returns a new Builder; the receiver is left untouched, so a
// common prefix can be shared between several patterns.
// The zero value is an empty builder ready to use.
type Builder struct {
	matchers []Matcher
}

// Path is the empty Builder to start chains from.
var Path Builder

// Raw appends a literal segment.
func (b Builder) Raw(value string) Builder {
	return b.with(Raw(value))
}

// Str appends a string field segment.
func (b Builder) Str(name string) Builder {
	return b.with(Str(name))
}

// StrRe appends a string field segment validated by pattern.
func (b Builder) StrRe(name string, pattern *regexp.Regexp) Builder {
	return b.with(StrRe(name, pattern))
}

// Num appends an integer field segment.
func (b Builder) Num(name string) Builder {
	return b.with(Num(name))
}

// Then appends arbitrary matchers.
func (b Builder) Then(matchers ...Matcher) Builder {
	return b.with(matchers...)
}

// with copies the matcher list so that builders never share a backing array
// that a later append could write into.
func (b Builder) with(matchers ...Matcher) Builder {
	next := make([]Matcher, len(b.matchers), len(b.matchers)+len(matchers))
	copy(next, b.matchers)
	return Builder{matchers: append(next, matchers...)}
}

// Pattern returns the equivalent whole-path matcher.
func (b Builder) Pattern() *Pattern {
	return &Pattern{matchers: b.matchers}
}

func (b Builder) Match(path string) (Record, bool) {
	return b.Pattern().Match(path)
}

func (b Builder) Build(rec Record, trailingSlash bool) (string, error) {
	return b.Pattern().Build(rec, trailingSlash)
}

func (b Builder) String() string {
	return b.Pattern().String()
}
