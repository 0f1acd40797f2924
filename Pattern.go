package rmatch

import (
	"fmt"
	"strings"

	"github.com/rohanthewiz/rmatch/consts"
)

// Pattern matches a whole slash-delimited path, one child matcher per
// segment. It is created by URL or Builder and never modified afterwards.
type Pattern struct {
	matchers []Matcher
}

// URL composes segment matchers into a whole-path matcher.
// The i-th matcher handles the i-th segment of the path.
//
// Field names are expected to be unique across the matchers. When two
// matchers capture the same name the later segment wins; see Collisions.
func URL(matchers ...Matcher) *Pattern {
	ms := make([]Matcher, len(matchers))
	copy(ms, matchers)
	return &Pattern{matchers: ms}
}

// Len returns the number of segments the pattern matches.
func (p *Pattern) Len() int {
	return len(p.matchers)
}

// Match parses path into a record.
// One leading and one trailing slash are ignored, so "/a/b", "a/b/" and
// "/a/b/" are equivalent. The path must have exactly as many segments as
// the pattern has matchers.
func (p *Pattern) Match(path string) (Record, bool) {
	chunks := splitPath(path)
	if len(chunks) != len(p.matchers) {
		return nil, false
	}

	rec := Record{}
	for i, chunk := range chunks {
		part, ok := p.matchers[i].Match(chunk)
		if !ok {
			return nil, false
		}
		rec.merge(part)
	}
	return rec, true
}

// MatchParams is like Match but returns the captured segments in path order
// with their raw text.
func (p *Pattern) MatchParams(path string) ([]Parameter, bool) {
	chunks := splitPath(path)
	if len(chunks) != len(p.matchers) {
		return nil, false
	}

	var params []Parameter
	for i, chunk := range chunks {
		if _, ok := p.matchers[i].Match(chunk); !ok {
			return nil, false
		}
		for _, name := range fieldsOf(p.matchers[i]) {
			params = append(params, Parameter{Key: name, Value: chunk})
		}
	}
	return params, true
}

// Build renders rec into a path with a leading slash, and a trailing one
// when trailingSlash is true. Every matcher receives the full record.
// An empty pattern renders "/" with a trailing slash and "" without.
// The first matcher error is returned.
func (p *Pattern) Build(rec Record, trailingSlash bool) (string, error) {
	var sb strings.Builder
	for _, m := range p.matchers {
		chunk, err := m.Build(rec, false)
		if err != nil {
			return "", err
		}
		sb.WriteByte(consts.SlashByte)
		sb.WriteString(chunk)
	}
	if trailingSlash {
		sb.WriteByte(consts.SlashByte)
	}
	return sb.String(), nil
}

// BuildFrom renders a tagged struct (or any value RecordOf accepts).
func (p *Pattern) BuildFrom(src any, trailingSlash bool) (string, error) {
	rec, err := RecordOf(src)
	if err != nil {
		return "", err
	}
	return p.Build(rec, trailingSlash)
}

// Fields returns the field names captured by the pattern, in segment order.
// Duplicates are kept.
func (p *Pattern) Fields() []string {
	var names []string
	for _, m := range p.matchers {
		names = append(names, fieldsOf(m)...)
	}
	return names
}

// Collisions returns the field names captured by more than one segment.
// Match keeps the last segment's value for such a field.
func (p *Pattern) Collisions() []string {
	seen := make(map[string]int)
	var dups []string
	for _, name := range p.Fields() {
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}

// String returns a template of the pattern, e.g. "/users/{id:int}".
func (p *Pattern) String() string {
	if len(p.matchers) == 0 {
		return consts.Slash
	}
	var sb strings.Builder
	for _, m := range p.matchers {
		sb.WriteByte(consts.SlashByte)
		sb.WriteString(fmt.Sprint(m))
	}
	return sb.String()
}

// splitPath strips at most one leading and one trailing slash and splits
// the remainder into segments. Interior empty segments are kept.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, consts.Slash)
	path = strings.TrimSuffix(path, consts.Slash)
	return strings.Split(path, consts.Slash)
}
