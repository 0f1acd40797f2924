// Package link renders HTML anchors whose href is built from a matcher and
// a record, so templates never concatenate paths by hand.
package link

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rmatch"
)

// Anchor returns an <a> element linking to the path built from rec.
// The path keeps its trailing slash. attrs are extra attribute
// name/value pairs, e.g. "class", "nav".
func Anchor(m rmatch.Matcher, rec rmatch.Record, text string, attrs ...string) (string, error) {
	b := element.NewBuilder()
	if err := Render(b, m, rec, text, attrs...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Render writes the anchor into an existing builder.
// Nothing is written when the path cannot be built.
func Render(b *element.Builder, m rmatch.Matcher, rec rmatch.Record, text string, attrs ...string) error {
	href, err := m.Build(rec, true)
	if err != nil {
		return err
	}
	b.A(append([]string{"href", href}, attrs...)...).T(text)
	return nil
}

// Link is an element.Component for use inside larger pages.
// If the record cannot be built, only the text is rendered.
type Link struct {
	Matcher rmatch.Matcher
	Record  rmatch.Record
	Text    string
	Attrs   []string
}

func (l Link) Render(b *element.Builder) any {
	if err := Render(b, l.Matcher, l.Record, l.Text, l.Attrs...); err != nil {
		b.T(l.Text)
	}
	return nil
}
