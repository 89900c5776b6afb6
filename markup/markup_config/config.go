package markup_config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/sunwei/pagegen/config"
	"github.com/sunwei/pagegen/markup/goldmark/goldmark_config"
	"github.com/sunwei/pagegen/markup/highlight"
	"github.com/sunwei/pagegen/markup/tableofcontents"
)

type Config struct {
	// Default markdown handler for md/markdown extensions.
	// Default is "goldmark".
	DefaultMarkdownHandler string

	Highlight       highlight.Config
	TableOfContents tableofcontents.Config

	// Content renderers
	Goldmark goldmark_config.Config

	// Replace :emoji: shortcodes in rendered content.
	EnableEmoji bool
}

// Decode creates a Config from the markup section of cfg, starting from
// Default.
func Decode(cfg config.Provider) (conf Config, err error) {
	conf = Default

	conf.EnableEmoji = cfg.GetBool("enableEmoji")

	if m := cfg.GetStringMap("markup"); len(m) > 0 {
		if err = mapstructure.WeakDecode(m, &conf); err != nil {
			return conf, fmt.Errorf("failed to decode markup config: %w", err)
		}
	}

	applyLegacyConfig(cfg, &conf.Highlight)

	if conf.DefaultMarkdownHandler == "" {
		conf.DefaultMarkdownHandler = Default.DefaultMarkdownHandler
	}

	return
}

// applyLegacyConfig supports the top level pygments* keys.
func applyLegacyConfig(cfg config.Provider, conf *highlight.Config) {
	if cfg.IsSet("pygmentsStyle") {
		conf.Style = cfg.GetString("pygmentsStyle")
	}

	if cfg.IsSet("pygmentsUseClasses") {
		conf.NoClasses = !cfg.GetBool("pygmentsUseClasses")
	}

	if cfg.IsSet("pygmentsCodeFences") {
		conf.CodeFences = cfg.GetBool("pygmentsCodeFences")
	}

	if cfg.IsSet("pygmentsCodefencesGuessSyntax") {
		conf.GuessSyntax = cfg.GetBool("pygmentsCodefencesGuessSyntax")
	}
}

var Default = Config{
	DefaultMarkdownHandler: "goldmark",

	TableOfContents: tableofcontents.DefaultConfig,
	Highlight:       highlight.DefaultConfig,

	Goldmark: goldmark_config.Default,
}
