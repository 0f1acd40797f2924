// Package decl loads named path patterns from YAML or JSON definitions.
//
// A definition maps pattern names to their segments, in order:
//
//	patterns:
//	  user:
//	    - raw: users
//	    - num: id
//	  post:
//	    - raw: posts
//	    - str: slug
//	      pattern: "^[a-z0-9-]+$"
//
// Each segment sets exactly one of raw, str or num. pattern is only valid
// with str.
package decl

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/rohanthewiz/rmatch"
	"github.com/rohanthewiz/rmatch/consts"
)

var (
	ErrDefinition     = errors.New("invalid pattern definition")
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Document is the top level of a definition file.
type Document struct {
	Patterns map[string][]Segment `yaml:"patterns" json:"patterns"`
}

// Segment describes one path segment.
// Pointers distinguish a missing key from an empty value, so `raw: ""`
// declares a literal empty segment.
type Segment struct {
	Raw     *string `yaml:"raw,omitempty" json:"raw,omitempty"`
	Str     *string `yaml:"str,omitempty" json:"str,omitempty"`
	Num     *string `yaml:"num,omitempty" json:"num,omitempty"`
	Pattern string  `yaml:"pattern,omitempty" json:"pattern,omitempty"`
}

// Options controls loading.
type Options struct {
	Verbose bool // print each pattern as it is loaded
}

// Compile builds a Set from a decoded document.
func Compile(doc Document, opts ...Options) (*Set, error) {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	set := &Set{patterns: make(map[string]*rmatch.Pattern, len(doc.Patterns))}
	names := make([]string, 0, len(doc.Patterns))
	for name := range doc.Patterns {
		names = append(names, name)
	}
	sort.Strings(names) // report the first bad pattern by name

	for _, name := range names {
		pat, err := compilePattern(name, doc.Patterns[name])
		if err != nil {
			return nil, err
		}
		set.patterns[name] = pat
	}

	if opt.Verbose {
		for _, pl := range set.List() {
			fmt.Printf("Loaded pattern %q: %s\n", pl.Name, pl.Template)
		}
	}
	return set, nil
}

func compilePattern(name string, segs []Segment) (*rmatch.Pattern, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty pattern name", ErrDefinition)
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: pattern %q has no segments", ErrDefinition, name)
	}

	matchers := make([]rmatch.Matcher, 0, len(segs))
	for i, seg := range segs {
		m, err := seg.matcher()
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q segment %d: %s", ErrDefinition, name, i, err.Error())
		}
		matchers = append(matchers, m)
	}

	pat := rmatch.URL(matchers...)
	if dups := pat.Collisions(); len(dups) > 0 {
		return nil, fmt.Errorf("%w: pattern %q captures %q more than once", ErrDefinition, name, dups[0])
	}
	return pat, nil
}

func (seg Segment) matcher() (rmatch.Matcher, error) {
	set := 0
	for _, p := range []*string{seg.Raw, seg.Str, seg.Num} {
		if p != nil {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of %s, %s or %s is required", consts.KindRaw, consts.KindStr, consts.KindNum)
	}
	if seg.Pattern != "" && seg.Str == nil {
		return nil, errors.New("pattern is only allowed on str segments")
	}

	switch {
	case seg.Raw != nil:
		return rmatch.Raw(*seg.Raw), nil
	case seg.Num != nil:
		if *seg.Num == "" {
			return nil, fmt.Errorf("%s segment needs a field name", consts.KindNum)
		}
		return rmatch.Num(*seg.Num), nil
	}

	if *seg.Str == "" {
		return nil, fmt.Errorf("%s segment needs a field name", consts.KindStr)
	}
	if seg.Pattern == "" {
		return rmatch.Str(*seg.Str), nil
	}
	re, err := regexp.Compile(seg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern for %q: %w", *seg.Str, err)
	}
	return rmatch.StrRe(*seg.Str, re), nil
}
