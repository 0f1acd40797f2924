package rmatch

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Decode fills dst from the record using json struct tags, e.g.
//
//	var v struct {
//		ID   int    `json:"id"`
//		Slug string `json:"slug"`
//	}
//	err := rec.Decode(&v)
func (r Record) Decode(dst any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cannot encode record: %w", err)
	}
	if err = json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("cannot decode record into %T: %w", dst, err)
	}
	return nil
}

// RecordOf converts src into a Record using json struct tags.
// A Record or map[string]any is returned as is.
// Whole numbers that fit an int become int, larger ones uint64; other
// numbers become float64.
func RecordOf(src any) (Record, error) {
	switch v := src.(type) {
	case Record:
		return v, nil
	case map[string]any:
		return Record(v), nil
	}

	data, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %T: %w", src, err)
	}

	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err = dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot convert %T to a record: %w", src, err)
	}

	rec := make(Record, len(raw))
	for k, val := range raw {
		if num, ok := val.(json.Number); ok {
			rec[k] = fromNumber(num)
			continue
		}
		rec[k] = val
	}
	return rec, nil
}

// fromNumber keeps integers exact. An integer literal too large for uint64
// stays a json.Number, which Num rejects rather than rounding.
func fromNumber(num json.Number) any {
	s := string(num)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n
	}
	if !strings.ContainsAny(s, ".eE") {
		return num
	}
	if f, err := num.Float64(); err == nil {
		return f
	}
	return num
}
