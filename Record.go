package rmatch

import (
	"sort"
)

// Record holds the fields extracted by a successful match, or supplied to a
// build. Values are string for Str segments and int for Num segments.
type Record map[string]any

// Str returns the named field if it holds a string.
func (r Record) Str(name string) (string, bool) {
	s, ok := r[name].(string)
	return s, ok
}

// Int returns the named field if it holds an int.
func (r Record) Int(name string) (int, bool) {
	n, ok := r[name].(int)
	return n, ok
}

// Keys returns the field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// merge copies the fields of src into r; fields already present are overwritten.
func (r Record) merge(src Record) {
	for k, v := range src {
		r[k] = v
	}
}
