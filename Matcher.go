package rmatch

// Matcher is a bidirectional transform between a path (or a single path
// segment) and a Record.
//
// Match reports false when the input does not fit; that is a routine
// outcome, not an error. Build renders a record back into its path form and
// returns a *ReverseBuildError when the record fails the matcher's checks.
// The trailingSlash flag only affects whole-path matchers; segment matchers
// ignore it.
//
// All matchers in this package are immutable and safe for concurrent use.
type Matcher interface {
	Match(chunk string) (Record, bool)
	Build(rec Record, trailingSlash bool) (string, error)
}

// fielder is implemented by matchers that contribute fields to a record.
type fielder interface {
	fields() []string
}

// fieldsOf returns the record fields a matcher contributes, in order.
func fieldsOf(m Matcher) []string {
	if f, ok := m.(fielder); ok {
		return f.fields()
	}
	return nil
}

// MustBuild is like m.Build but panics if the record cannot be rendered.
// It simplifies rendering of links from records known to be valid.
func MustBuild(m Matcher, rec Record, trailingSlash bool) string {
	out, err := m.Build(rec, trailingSlash)
	if err != nil {
		panic(err)
	}
	return out
}
