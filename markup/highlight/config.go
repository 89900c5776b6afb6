package highlight

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mitchellh/mapstructure"
)

// DefaultConfig holds the default highlighting configuration.
var DefaultConfig = Config{
	// The highlighter style to use.
	// See https://xyproto.github.io/splash/docs/all.html
	Style:       "monokai",
	LineNoStart: 1,
	CodeFences:  true,
	NoClasses:   false,
	LineNos:     false,
	GuessSyntax: false,
	TabWidth:    4,
}

// Config holds configuration for fenced code block highlighting.
type Config struct {
	Style string

	// Use inline CSS styles instead of chroma classes.
	NoClasses bool

	// When set, line numbers will be printed.
	LineNos     bool
	LineNoStart int

	// Highlight fenced code blocks.
	CodeFences bool

	// Guess the language when none is given.
	GuessSyntax bool

	TabWidth int
}

// DecodeConfig overlays in onto DefaultConfig.
func DecodeConfig(in map[string]any) (Config, error) {
	conf := DefaultConfig
	if in == nil {
		return conf, nil
	}
	if err := mapstructure.WeakDecode(in, &conf); err != nil {
		return conf, fmt.Errorf("failed to decode highlight config: %w", err)
	}
	return conf, nil
}

// ToHTMLOptions returns the chroma formatter options for cfg.
func (cfg Config) ToHTMLOptions() []html.Option {
	return []html.Option{
		html.WithClasses(!cfg.NoClasses),
		html.WithLineNumbers(cfg.LineNos),
		html.BaseLineNumber(cfg.LineNoStart),
		html.TabWidth(cfg.TabWidth),
	}
}

// WriteCSS writes the chroma class definitions for the named style to w,
// for sites that use the default class based output. Unknown styles fall
// back to chroma's default.
func WriteCSS(w io.Writer, style string, opts ...html.Option) error {
	s := styles.Get(style)
	opts = append([]html.Option{html.WithClasses(true)}, opts...)
	return html.New(opts...).WriteCSS(w, s)
}
