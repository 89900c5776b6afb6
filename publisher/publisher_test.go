package publisher

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/config"
	"github.com/sunwei/pagegen/output"
)

func newTestPublisher(t *testing.T, fs afero.Fs) DestinationPublisher {
	t.Helper()
	p, err := NewDestinationPublisher(fs, output.DefaultFormats, config.New())
	require.NoError(t, err)
	return p
}

func TestPublishCreatesDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := newTestPublisher(t, fs)

	for i := 0; i < 2; i++ {
		require.NoError(t, p.Publish(Descriptor{
			Src:          strings.NewReader("<p>Hi</p>"),
			OutputFormat: output.HTMLFormat,
			TargetPath:   "a/b/index.html",
		}))
	}

	b, err := afero.ReadFile(fs, "a/b/index.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hi</p>", string(b))
}

func TestPublishMinifyAndAbsURL(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := newTestPublisher(t, fs)

	require.NoError(t, p.Publish(Descriptor{
		Src:          strings.NewReader("<p>\n  <a href=\"/about/\">About</a>\n</p>\n"),
		OutputFormat: output.HTMLFormat,
		TargetPath:   "index.html",
		AbsURLPath:   "https://example.org/",
		Minify:       true,
	}))

	b, err := afero.ReadFile(fs, "index.html")
	require.NoError(t, err)
	assert.Contains(t, string(b), "https://example.org/about/")
	assert.NotContains(t, string(b), "\n")
}

func TestPublishErrors(t *testing.T) {
	p := newTestPublisher(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := p.Publish(Descriptor{Src: strings.NewReader("x"), OutputFormat: output.HTMLFormat, TargetPath: "page.html"})
	require.Error(t, err)
	assert.True(t, herrors.IsKind(err, herrors.KindIO))
	assert.Equal(t, "page.html", herrors.PathOf(err))

	require.Error(t, p.Publish(Descriptor{Src: strings.NewReader("x")}))
}

type failingCloseFs struct {
	afero.Fs
}

func (fs failingCloseFs) Create(name string) (afero.File, error) {
	f, err := fs.Fs.Create(name)
	if err != nil {
		return nil, err
	}
	return failingCloseFile{f}, nil
}

type failingCloseFile struct {
	afero.File
}

func (f failingCloseFile) Close() error {
	f.File.Close()
	return errors.New("disk full")
}

func TestPublishCloseError(t *testing.T) {
	p := newTestPublisher(t, failingCloseFs{afero.NewMemMapFs()})

	err := p.Publish(Descriptor{Src: strings.NewReader("x"), OutputFormat: output.HTMLFormat, TargetPath: "page.html"})
	require.Error(t, err)
	assert.True(t, herrors.IsKind(err, herrors.KindIO))
	assert.Equal(t, "page.html", herrors.PathOf(err))
	assert.Contains(t, err.Error(), "disk full")
}
