package tplimpl

import (
	"github.com/sunwei/pagegen/deps"
)

// TemplateProvider manages templates.
type TemplateProvider struct{}

// DefaultTemplateProvider is a globally available TemplateProvider.
var DefaultTemplateProvider *TemplateProvider

// Update updates the templates in the provided deps.
func (*TemplateProvider) Update(d *deps.Deps) error {
	_, err := newTemplateExec(d)
	return err
}
