package rmatch_test

import (
	"regexp"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmatch"
	"github.com/rohanthewiz/rmatch/consts"
)

func TestBuilderMatch(t *testing.T) {
	p := rmatch.Path.Raw("foo").Str("bar").Num("spam")

	notFound := []string{
		"/",
		"/foo",
		"/foo/bar",
		"/foo/bar/spam",
	}
	for _, path := range notFound {
		_, ok := p.Match(path)
		assert.False(t, ok)
	}

	rec, ok := p.Match("/foo/bar/1")
	assert.True(t, ok)
	assert.DeepEqual(t, rec, rmatch.Record{"bar": "bar", "spam": 1})
}

func TestBuilderBuild(t *testing.T) {
	p := rmatch.Path.Raw("foo").Str("bar").Num("spam")
	rec := rmatch.Record{"bar": "bar", "spam": 123}

	out, err := p.Build(rec, true)
	assert.Nil(t, err)
	assert.Equal(t, out, "/foo/bar/123/")

	out, err = p.Build(rec, false)
	assert.Nil(t, err)
	assert.Equal(t, out, "/foo/bar/123")
}

func TestBuilderNonDestructive(t *testing.T) {
	b1 := rmatch.Path.Raw("users")
	b2 := b1.Str("x")

	_, ok := b1.Match("/users")
	assert.True(t, ok)
	_, ok = b1.Match("/users/abc")
	assert.False(t, ok)

	rec, ok := b2.Match("/users/abc")
	assert.True(t, ok)
	assert.DeepEqual(t, rec, rmatch.Record{"x": "abc"})

	// the shared Path value stays empty
	assert.Equal(t, rmatch.Path.Pattern().Len(), 0)
}

// Appending twice to the same prefix must not let one branch see the other's
// segment, even when the prefix has spare capacity.
func TestBuilderSharedPrefix(t *testing.T) {
	prefix := rmatch.Path.Raw("api").Raw("v1")
	users := prefix.Raw("users").Num("id")
	posts := prefix.Raw("posts").Str("slug")

	rec, ok := users.Match("/api/v1/users/9")
	assert.True(t, ok)
	assert.DeepEqual(t, rec, rmatch.Record{"id": 9})

	rec, ok = posts.Match("/api/v1/posts/hello")
	assert.True(t, ok)
	assert.DeepEqual(t, rec, rmatch.Record{"slug": "hello"})

	_, ok = users.Match("/api/v1/posts/9")
	assert.False(t, ok)

	assert.Equal(t, prefix.String(), "/api/v1")
	assert.Equal(t, users.String(), "/api/v1/users/{id:int}")
	assert.Equal(t, posts.String(), "/api/v1/posts/{slug}")
}

func TestBuilderZeroValue(t *testing.T) {
	var b rmatch.Builder
	p := b.Num("n")

	rec, ok := p.Match("/5/")
	assert.True(t, ok)
	assert.DeepEqual(t, rec, rmatch.Record{"n": 5})
}

func TestBuilderStrReAndThen(t *testing.T) {
	p := rmatch.Path.
		StrRe("lang", regexp.MustCompile(`^[a-z]{2}$`)).
		Then(rmatch.Raw("docs"), rmatch.Str("page"))

	rec, ok := p.Match("/en/docs/intro")
	assert.True(t, ok)
	assert.DeepEqual(t, rec, rmatch.Record{"lang": "en", "page": "intro"})

	_, ok = p.Match("/eng/docs/intro")
	assert.False(t, ok)

	_, err := p.Build(rmatch.Record{"lang": "eng", "page": "intro"}, true)
	assert.Contains(t, err.Error(), consts.StrReverse)
}

func TestBuilderEquivalentToURL(t *testing.T) {
	b := rmatch.Path.Raw("foo").Str("bar").Num("spam")
	u := rmatch.URL(rmatch.Raw("foo"), rmatch.Str("bar"), rmatch.Num("spam"))

	for _, path := range []string{"/foo/bar/1", "/foo/x/22/", "/foo/bar", "/nope/bar/1"} {
		r1, ok1 := b.Match(path)
		r2, ok2 := u.Match(path)
		assert.Equal(t, ok1, ok2)
		assert.DeepEqual(t, r1, r2)
	}

	var m rmatch.Matcher = b
	out, err := m.Build(rmatch.Record{"bar": "b", "spam": 2}, false)
	assert.Nil(t, err)
	assert.Equal(t, out, "/foo/b/2")
}
