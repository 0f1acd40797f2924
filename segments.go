package rmatch

import (
	"math"
	"regexp"
	"strconv"

	"github.com/rohanthewiz/rmatch/consts"
)

// rawMatcher matches one literal segment.
type rawMatcher struct {
	value string
}

// Raw returns a matcher for the literal segment value.
// It contributes no fields and its Build never fails.
func Raw(value string) Matcher {
	return rawMatcher{value: value}
}

func (m rawMatcher) Match(chunk string) (Record, bool) {
	if chunk == m.value {
		return Record{}, true
	}
	return nil, false
}

func (m rawMatcher) Build(Record, bool) (string, error) {
	return m.value, nil
}

func (m rawMatcher) String() string {
	return m.value
}

// strMatcher captures a segment verbatim as a string field.
type strMatcher struct {
	name    string
	pattern *regexp.Regexp // optional
}

// Str returns a matcher capturing any segment, the empty one included,
// into the string field name.
func Str(name string) Matcher {
	return strMatcher{name: name}
}

// StrRe is like Str but only accepts segments the pattern matches.
// The same check is applied to the field value on Build.
// Unanchored patterns match anywhere in the segment, so anchor with ^ and $
// to test the whole of it. A nil pattern behaves like Str.
func StrRe(name string, pattern *regexp.Regexp) Matcher {
	return strMatcher{name: name, pattern: pattern}
}

func (m strMatcher) Match(chunk string) (Record, bool) {
	if m.pattern != nil && !m.pattern.MatchString(chunk) {
		return nil, false
	}
	return Record{m.name: chunk}, true
}

// Build returns the field value unchanged. No escaping is performed.
func (m strMatcher) Build(rec Record, _ bool) (string, error) {
	val, ok := rec[m.name].(string)
	if !ok {
		return "", reverseErr(consts.KindStr, m.name, rec[m.name])
	}
	if m.pattern != nil && !m.pattern.MatchString(val) {
		return "", reverseErr(consts.KindStr, m.name, val)
	}
	return val, nil
}

func (m strMatcher) String() string {
	if m.pattern == nil {
		return consts.TemplateOpen + m.name + consts.TemplateClose
	}
	return consts.TemplateOpen + m.name + ":" + m.pattern.String() + consts.TemplateClose
}

func (m strMatcher) fields() []string {
	return []string{m.name}
}

// numMatcher captures an unsigned decimal segment as an int field.
type numMatcher struct {
	name string
}

// Num returns a matcher for segments made only of ASCII digits.
// The captured value is stored as an int.
//
// Build accepts any whole, finite number, negative ones included. Since
// Match never accepts a sign, a negative value renders into a path that the
// same matcher cannot parse back.
func Num(name string) Matcher {
	return numMatcher{name: name}
}

func (m numMatcher) Match(chunk string) (Record, bool) {
	if !isDigits(chunk) {
		return nil, false
	}
	n, err := strconv.Atoi(chunk)
	if err != nil { // out of range for int
		return nil, false
	}
	return Record{m.name: n}, true
}

func (m numMatcher) Build(rec Record, _ bool) (string, error) {
	out, ok := formatWhole(rec[m.name])
	if !ok {
		return "", reverseErr(consts.KindNum, m.name, rec[m.name])
	}
	return out, nil
}

func (m numMatcher) String() string {
	return consts.TemplateOpen + m.name + ":" + consts.TemplateInt + consts.TemplateClose
}

func (m numMatcher) fields() []string {
	return []string{m.name}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// formatWhole renders v in decimal if it is a whole, finite number.
func formatWhole(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return formatWholeFloat(float64(n))
	case float64:
		return formatWholeFloat(n)
	}
	return "", false
}

func formatWholeFloat(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Ceil(f) {
		return "", false
	}
	if f == 0 { // no "-0"
		return "0", true
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}
