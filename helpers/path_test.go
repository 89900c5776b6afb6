package helpers

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/pagegen/config"
)

func newTestPathSpec(t *testing.T, bcfg config.BuildConfig) *PathSpec {
	t.Helper()
	ps, err := NewPathSpec(config.New(), bcfg)
	require.NoError(t, err)
	return ps
}

func TestMakePath(t *testing.T) {
	ps := newTestPathSpec(t, config.BuildConfig{})

	for _, test := range []struct {
		input    string
		expected string
	}{
		{"  Foo bar  ", "Foo-bar"},
		{"Foo.Bar/foo_Bar-Foo", "Foo.Bar/foo_Bar-Foo"},
		{"fOO,bar:foobAR", "fOObarfoobAR"},
		{"FOo/BaR.html", "FOo/BaR.html"},
		{"трям/трям", "трям/трям"},
		{"Foo  --  bar", "Foo--bar"},
		{"foo%2Fbar", "foo%2Fbar"},
	} {
		assert.Equal(t, test.expected, ps.MakePath(test.input), test.input)
	}

	ps.RemovePathAccents = true
	assert.Equal(t, "Resume", ps.MakePath("Résumé"))
}

func TestURLize(t *testing.T) {
	ps := newTestPathSpec(t, config.BuildConfig{})

	for _, test := range []struct {
		input    string
		expected string
	}{
		{"  foo bar  ", "foo-bar"},
		{"foo.bar/foo_bar-foo", "foo.bar/foo_bar-foo"},
		{"Go Lang", "go-lang"},
		{"trompe-l'œil", "trompe-l%C5%93il"},
		{"Go 1.19", "go-1.19"},
		{"Vim (text editor)", "vim-text-editor"},
	} {
		assert.Equal(t, test.expected, ps.URLize(test.input), test.input)
	}
}

func TestPermalink(t *testing.T) {
	ps := newTestPathSpec(t, config.BuildConfig{})
	assert.Equal(t, "/a/b.html", ps.Permalink("a/b.html"))

	ps = newTestPathSpec(t, config.BuildConfig{BaseURL: "https://example.org/blog"})
	assert.Equal(t, "https://example.org/blog/a/b/", ps.Permalink("a/b/"))
	assert.Equal(t, "https://example.org/blog/a.html", ps.Permalink("/a.html"))

	_, err := NewPathSpec(config.New(), config.BuildConfig{BaseURL: "http://[::1"})
	assert.Error(t, err)
}

func TestGetDottedRelativePath(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected string
	}{
		{"index.html", "./"},
		{"post1.html", "./"},
		{"a/b.html", "../"},
		{"a/b/index.html", "../../"},
		{"tags/go/index.html", "../../"},
		{".", "./"},
	} {
		assert.Equal(t, test.expected, GetDottedRelativePath(test.input), test.input)
	}
}

func TestOpenFileForWriting(t *testing.T) {
	fs := afero.NewMemMapFs()

	f, err := OpenFileForWriting(fs, "a/b/c.html")
	require.NoError(t, err)
	_, err = f.WriteString("first")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// The directory exists now; the file is truncated.
	f, err = OpenFileForWriting(fs, "a/b/c.html")
	require.NoError(t, err)
	_, err = f.WriteString("2")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err := afero.ReadFile(fs, "a/b/c.html")
	require.NoError(t, err)
	assert.Equal(t, "2", string(b))
}
