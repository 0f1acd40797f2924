// Package rmatch provides composable URL path matchers that work both ways:
// Match parses a path into a Record and Build renders a Record back into a
// path.
//
// Segment matchers handle one slash-delimited segment each:
//
//	rmatch.Raw("users")  // literal "users", no fields
//	rmatch.Str("slug")   // any segment, stored as string
//	rmatch.Num("id")     // digits only, stored as int
//
// URL composes them into a whole-path matcher:
//
//	p := rmatch.URL(rmatch.Raw("foo"), rmatch.Str("bar"), rmatch.Num("spam"))
//	rec, ok := p.Match("/foo/bar/1")                            // {"bar": "bar", "spam": 1}, true
//	path, err := p.Build(rmatch.Record{"bar": "x", "spam": 2}, true) // "/foo/x/2/"
//
// The Builder offers the same thing fluently, starting from Path:
//
//	p := rmatch.Path.Raw("foo").Str("bar").Num("spam")
//
// A failed match is reported with the comma-ok bool. A failed build returns
// a *ReverseBuildError.
package rmatch
