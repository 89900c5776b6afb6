// Package html provides the passthrough converter for content that is
// already HTML.
package html

import (
	"bytes"

	"github.com/sunwei/pagegen/markup/converter"
)

// Provider is the package entry point.
var Provider converter.ProviderProvider = provider{}

type provider struct{}

func (p provider) New(cfg converter.ProviderConfig) (converter.Provider, error) {
	return converter.NewProvider("html", func(ctx converter.DocumentContext) (converter.Converter, error) {
		return &htmlConverter{ctx: ctx}, nil
	}), nil
}

type htmlConverter struct {
	ctx converter.DocumentContext
}

// Convert returns the source unchanged.
func (c *htmlConverter) Convert(ctx converter.RenderContext) (converter.Result, error) {
	return bytes.NewBuffer(ctx.Src), nil
}
