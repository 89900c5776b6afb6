package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/common/maps"
)

// Markup formats.
const (
	MarkupMarkdown = "markdown"
	MarkupHTML     = "html"
)

// Output layouts.
const (
	LayoutFlat      = "flat"
	LayoutPrettyURL = "pretty-url"
)

// BuildConfig is the typed view of the settings a build needs.
type BuildConfig struct {
	ContentDir     string
	PublishDir     string
	LayoutDir      string
	ThemeLayoutDir string

	// MarkupFormat is one of markdown or html.
	MarkupFormat string

	// Layout is one of flat or pretty-url.
	Layout string

	Tags     bool
	TagPages bool

	MinifyOutput        bool
	CleanDestinationDir bool

	// BuildDrafts includes pages with draft set in their front matter.
	BuildDrafts bool

	// CanonifyURLs makes root relative src and href attributes absolute
	// using BaseURL.
	CanonifyURLs bool

	BaseURL        string
	Title          string
	TitleCaseStyle string

	IgnoreFiles []string
	EnableEmoji bool
}

// IsPrettyURLs reports whether every page gets its own directory.
func (b BuildConfig) IsPrettyURLs() bool {
	return b.Layout == LayoutPrettyURL
}

// DefaultConfig returns the defaults for every top level key.
func DefaultConfig() maps.Params {
	return maps.Params{
		"contentdir":          "content",
		"publishdir":          "public",
		"layoutdir":           "templates",
		"themelayoutdir":      "",
		"markupformat":        MarkupMarkdown,
		"layout":              LayoutFlat,
		"tags":                true,
		"tagpages":            false,
		"minifyoutput":        false,
		"cleandestinationdir": false,
		"builddrafts":         false,
		"canonifyurls":        false,
		"baseurl":             "",
		"title":               "",
		"titlecasestyle":      "AP",
		"ignorefiles":         []string{},
		"enableemoji":         false,
	}
}

// LoadOptions controls how Load builds a Provider.
type LoadOptions struct {
	// Fs is used to read Filename.
	Fs afero.Fs

	// Filename is an optional config file (TOML, YAML or JSON).
	Filename string

	// Environ is the environment, typically os.Environ().
	Environ []string

	// Flags are applied on top of everything else when set.
	Flags Provider
}

// Load creates the build configuration. Precedence, lowest first:
// defaults, environment, config file, flags.
func Load(opts LoadOptions) (Provider, error) {
	base := New()
	ApplyEnv(base, opts.Environ)

	if opts.Filename != "" {
		if opts.Fs == nil {
			opts.Fs = afero.NewOsFs()
		}
		m, err := FromFileToMap(opts.Fs, opts.Filename)
		if err != nil {
			return nil, err
		}
		base.Set("", m)
	}

	base.SetDefaults(DefaultConfig())

	if opts.Flags == nil {
		return base, nil
	}

	return NewCompositeConfig(base, opts.Flags), nil
}

// DecodeBuildConfig decodes and validates the top level keys in cfg.
func DecodeBuildConfig(cfg Provider) (BuildConfig, error) {
	var bc BuildConfig

	m := make(map[string]any)
	for k := range DefaultConfig() {
		if cfg.IsSet(k) {
			m[k] = cfg.Get(k)
		}
	}

	if err := mapstructure.WeakDecode(m, &bc); err != nil {
		return bc, herrors.NewFileError(herrors.KindConfig, "", err)
	}

	bc.MarkupFormat = strings.ToLower(strings.TrimSpace(bc.MarkupFormat))
	bc.Layout = strings.ToLower(strings.TrimSpace(bc.Layout))

	switch bc.MarkupFormat {
	case "md", "goldmark":
		bc.MarkupFormat = MarkupMarkdown
	case "htm":
		bc.MarkupFormat = MarkupHTML
	}

	if bc.MarkupFormat != MarkupMarkdown && bc.MarkupFormat != MarkupHTML {
		return bc, herrors.NewFileError(herrors.KindConfig, "", fmt.Errorf("markupFormat must be %q or %q, got %q", MarkupMarkdown, MarkupHTML, bc.MarkupFormat))
	}

	if bc.Layout == "pretty" {
		bc.Layout = LayoutPrettyURL
	}

	if bc.Layout != LayoutFlat && bc.Layout != LayoutPrettyURL {
		return bc, herrors.NewFileError(herrors.KindConfig, "", fmt.Errorf("layout must be %q or %q, got %q", LayoutFlat, LayoutPrettyURL, bc.Layout))
	}

	if bc.ContentDir == "" {
		return bc, herrors.NewFileError(herrors.KindConfig, "", fmt.Errorf("contentDir must be set"))
	}

	if bc.PublishDir == "" {
		return bc, herrors.NewFileError(herrors.KindConfig, "", fmt.Errorf("publishDir must be set"))
	}

	return bc, nil
}
