package sitefs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/config"
)

func testBuildConfig() config.BuildConfig {
	return config.BuildConfig{
		ContentDir: "content",
		PublishDir: "public",
		LayoutDir:  "templates",
	}
}

func TestNewFrom(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "content/post1.md", []byte("# Hi"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "templates/page.html", []byte("{{ .content }}"), 0o644))

	sfs, err := NewFrom(fs, testBuildConfig())
	require.NoError(t, err)

	b, err := afero.ReadFile(sfs.Content, "post1.md")
	require.NoError(t, err)
	assert.Equal(t, "# Hi", string(b))

	b, err = afero.ReadFile(sfs.Layouts, "page.html")
	require.NoError(t, err)
	assert.Equal(t, "{{ .content }}", string(b))

	exists, err := afero.DirExists(fs, "public")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, afero.WriteFile(sfs.PublishDir, "post1.html", []byte("out"), 0o644))
	b, err = afero.ReadFile(fs, "public/post1.html")
	require.NoError(t, err)
	assert.Equal(t, "out", string(b))

	// Content is read only.
	assert.Error(t, afero.WriteFile(sfs.Content, "new.md", []byte("x"), 0o644))
}

func TestNewMissingContentDir(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := NewFrom(fs, testBuildConfig())
	require.Error(t, err)
	assert.True(t, herrors.IsKind(err, herrors.KindNotFound))
	assert.Equal(t, "content", herrors.PathOf(err))

	require.NoError(t, afero.WriteFile(fs, "content", []byte("not a dir"), 0o644))
	_, err = NewFrom(fs, testBuildConfig())
	require.Error(t, err)
	assert.True(t, herrors.IsKind(err, herrors.KindNotFound))
}

func TestThemeLayoutsOverlay(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("content", 0o755))
	require.NoError(t, afero.WriteFile(fs, "templates/page.html", []byte("project page"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "theme/page.html", []byte("theme page"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "theme/index.html", []byte("theme index"), 0o644))

	cfg := testBuildConfig()
	cfg.ThemeLayoutDir = "theme"

	sfs, err := NewFrom(fs, cfg)
	require.NoError(t, err)

	b, err := afero.ReadFile(sfs.Layouts, "page.html")
	require.NoError(t, err)
	assert.Equal(t, "project page", string(b))

	b, err = afero.ReadFile(sfs.Layouts, "index.html")
	require.NoError(t, err)
	assert.Equal(t, "theme index", string(b))
}

func TestCleanPublishDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("content", 0o755))
	require.NoError(t, afero.WriteFile(fs, "public/stale.html", []byte("old"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "public/a/b/index.html", []byte("old"), 0o644))

	sfs, err := NewFrom(fs, testBuildConfig())
	require.NoError(t, err)
	require.NoError(t, sfs.CleanPublishDir())

	exists, err := afero.Exists(fs, "public/stale.html")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = afero.Exists(fs, "public/a")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = afero.DirExists(fs, "public")
	require.NoError(t, err)
	assert.True(t, exists)
}
