// Package tpl defines the template handling interfaces used by the build.
package tpl

import (
	"context"
	"io"
)

// TemplateHandler finds and executes templates.
type TemplateHandler interface {
	TemplateFinder
	Execute(t Template, wr io.Writer, data any) error
	ExecuteWithContext(ctx context.Context, t Template, wr io.Writer, data any) error
	HasTemplate(name string) bool
}

// Template is the common interface of the parsed templates.
type Template interface {
	Name() string
}

// TemplateFinder finds templates.
type TemplateFinder interface {
	TemplateLookup
}

type TemplateLookup interface {
	// Lookup finds a layout by name, with or without the .html suffix.
	Lookup(name string) (Template, bool)
}
