package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/pagegen/common/herrors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	bc, err := DecodeBuildConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "content", bc.ContentDir)
	assert.Equal(t, "public", bc.PublishDir)
	assert.Equal(t, "templates", bc.LayoutDir)
	assert.Equal(t, MarkupMarkdown, bc.MarkupFormat)
	assert.Equal(t, LayoutFlat, bc.Layout)
	assert.True(t, bc.Tags)
	assert.False(t, bc.TagPages)
	assert.False(t, bc.MinifyOutput)
	assert.False(t, bc.IsPrettyURLs())
	assert.Equal(t, "AP", bc.TitleCaseStyle)
	assert.Empty(t, bc.IgnoreFiles)
}

func TestLoadPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.toml", []byte(`
publishDir = "dist"
layout = "pretty-url"
ignoreFiles = ["drafts/**"]

[markup.goldmark]
unsafe = false
`), 0o644))

	environ := []string{
		"PAGEGEN_PUBLISHDIR=fromenv",
		"PAGEGEN_CONTENTDIR=posts",
		"PAGEGEN_TAGPAGES=true",
		"HOME=/root",
	}

	flags := New()
	flags.Set("layout", "flat")

	cfg, err := Load(LoadOptions{Fs: fs, Filename: "config.toml", Environ: environ, Flags: flags})
	require.NoError(t, err)

	bc, err := DecodeBuildConfig(cfg)
	require.NoError(t, err)

	// File beats env.
	assert.Equal(t, "dist", bc.PublishDir)
	// Env beats defaults.
	assert.Equal(t, "posts", bc.ContentDir)
	assert.True(t, bc.TagPages)
	// Flags beat file.
	assert.Equal(t, LayoutFlat, bc.Layout)
	assert.Equal(t, []string{"drafts/**"}, bc.IgnoreFiles)
	assert.True(t, cfg.IsSet("markup.goldmark.unsafe"))
	assert.False(t, cfg.GetBool("markup.goldmark.unsafe"))
}

func TestLoadYAMLFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "site.yaml", []byte("title: My Blog\nmarkupFormat: html\n"), 0o644))

	cfg, err := Load(LoadOptions{Fs: fs, Filename: "site.yaml"})
	require.NoError(t, err)

	bc, err := DecodeBuildConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "My Blog", bc.Title)
	assert.Equal(t, MarkupHTML, bc.MarkupFormat)
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.ini", []byte("a=b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "broken.toml", []byte("a = "), 0o644))

	_, err := Load(LoadOptions{Fs: fs, Filename: "config.ini"})
	require.Error(t, err)
	assert.True(t, herrors.IsKind(err, herrors.KindConfig))

	_, err = Load(LoadOptions{Fs: fs, Filename: "broken.toml"})
	require.Error(t, err)
	assert.True(t, herrors.IsKind(err, herrors.KindConfig))
	assert.Equal(t, "broken.toml", herrors.PathOf(err))

	_, err = Load(LoadOptions{Fs: fs, Filename: "missing.toml"})
	require.Error(t, err)
	assert.True(t, herrors.IsKind(err, herrors.KindConfig))
}

func TestDecodeBuildConfigValidation(t *testing.T) {
	for _, test := range []struct {
		name   string
		key    string
		value  any
		expect string
	}{
		{"bad markup", "markupformat", "asciidoc", ""},
		{"bad layout", "layout", "nested", ""},
		{"markup alias", "markupformat", "MD", MarkupMarkdown},
		{"layout alias", "layout", "pretty", LayoutPrettyURL},
		{"empty content dir", "contentdir", "", ""},
	} {
		t.Run(test.name, func(t *testing.T) {
			cfg := New()
			cfg.Set(test.key, test.value)
			cfg.SetDefaults(DefaultConfig())

			bc, err := DecodeBuildConfig(cfg)
			if test.expect == "" {
				require.Error(t, err)
				assert.True(t, herrors.IsKind(err, herrors.KindConfig))
				return
			}
			require.NoError(t, err)
			if test.key == "layout" {
				assert.Equal(t, test.expect, bc.Layout)
			} else {
				assert.Equal(t, test.expect, bc.MarkupFormat)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	vars := []string{"FOO=bar"}
	SetEnvVars(&vars, "PAGEGEN_MARKUP_GOLDMARK_UNSAFE", "false", "FOO", "baz")
	assert.Equal(t, []string{"FOO=baz", "PAGEGEN_MARKUP_GOLDMARK_UNSAFE=false"}, vars)

	m := EnvOverrides(vars)
	assert.Equal(t, map[string]string{"markup.goldmark.unsafe": "false"}, m)

	k, v := SplitEnvVar("A=b=c")
	assert.Equal(t, "A", k)
	assert.Equal(t, "b=c", v)
}
