package rmatch

import (
	"errors"
	"fmt"

	"github.com/rohanthewiz/rmatch/consts"
)

// ErrReverse is matched by every *ReverseBuildError via errors.Is.
var ErrReverse = errors.New("reverse build failed")

// ReverseBuildError is returned by Build when a record field does not
// satisfy its matcher, e.g. a fractional number for Num or a string
// rejected by the pattern of StrRe.
type ReverseBuildError struct {
	Kind  string // matcher kind: "str" or "num"
	Field string
	Value any
}

func (e *ReverseBuildError) Error() string {
	return fmt.Sprintf("%s %s: field %q cannot be built from %#v", e.Kind, consts.SuffixReverse, e.Field, e.Value)
}

func (e *ReverseBuildError) Is(target error) bool {
	return target == ErrReverse
}

func reverseErr(kind, field string, value any) error {
	return &ReverseBuildError{Kind: kind, Field: field, Value: value}
}
