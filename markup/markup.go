package markup

import (
	"strings"

	"github.com/sunwei/pagegen/markup/converter"
	"github.com/sunwei/pagegen/markup/goldmark"
	"github.com/sunwei/pagegen/markup/highlight"
	"github.com/sunwei/pagegen/markup/html"
	"github.com/sunwei/pagegen/markup/markup_config"
)

// ConverterProvider looks up converters by markup name.
type ConverterProvider interface {
	Get(name string) converter.Provider
	GetMarkupConfig() markup_config.Config
	GetHighlightConfig() highlight.Config
}

// NewConverterProvider registers the Markdown and HTML converters.
func NewConverterProvider(cpc converter.ProviderConfig) (ConverterProvider, error) {
	converters := make(map[string]converter.Provider)

	defaultHandler := cpc.MarkupConfig.DefaultMarkdownHandler
	add := func(p converter.ProviderProvider, aliases ...string) error {
		c, err := p.New(cpc)
		if err != nil {
			return err
		}

		name := c.Name()

		aliases = append(aliases, name)

		if strings.EqualFold(name, defaultHandler) {
			aliases = append(aliases, "markdown", "md")
		}

		addConverter(converters, c, aliases...)
		return nil
	}

	// default
	if err := add(goldmark.Provider); err != nil {
		return nil, err
	}
	if err := add(html.Provider, "htm"); err != nil {
		return nil, err
	}

	return &converterRegistry{
		config:     cpc,
		converters: converters,
	}, nil
}

func addConverter(m map[string]converter.Provider, c converter.Provider, aliases ...string) {
	for _, alias := range aliases {
		m[alias] = c
	}
}

type converterRegistry struct {
	// Maps name (md, markdown, goldmark etc.) to a converter provider.
	// Note that this is also used for aliasing, so the same converter
	// may be registered multiple times.
	// All names are lower case.
	converters map[string]converter.Provider

	config converter.ProviderConfig
}

func (r *converterRegistry) Get(name string) converter.Provider {
	return r.converters[strings.ToLower(name)]
}

func (r *converterRegistry) GetHighlightConfig() highlight.Config {
	return r.config.MarkupConfig.Highlight
}

func (r *converterRegistry) GetMarkupConfig() markup_config.Config {
	return r.config.MarkupConfig
}
