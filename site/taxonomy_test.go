package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/pagegen/resources/page"
	"github.com/sunwei/pagegen/resources/page/pagemeta"
	"github.com/sunwei/pagegen/source"
)

func newTaxonomyTestPage(name string, tags ...string) *page.Page {
	f := source.NewFileInfo(name, name, nil)
	p := page.New(f, page.CreateTargetPaths(f.PathNoExt(), false), "/"+f.PathNoExt()+".html", f.BaseFileName())
	p.FrontMatter = pagemeta.FrontMatter{Title: name, HasTitle: true, Tags: tags}
	return p
}

func TestTaxonomy(t *testing.T) {
	tax := NewTaxonomy()
	tax.Record(newTaxonomyTestPage("b.md", "web", "go"))
	tax.Record(newTaxonomyTestPage("a.md", "go", "go"))
	tax.Record(newTaxonomyTestPage("c.md"))

	assert.Equal(t, 2, tax.Len())
	assert.Equal(t, []string{"go", "web"}, tax.Tags())

	goPages := tax.Pages("go")
	require.Len(t, goPages, 2)
	assert.Equal(t, "b.md", goPages[0].Name)
	assert.Equal(t, "a.md", goPages[1].Name)

	assert.Nil(t, tax.Pages("missing"))

	data := tax.ToTemplateData()
	require.Len(t, data["web"], 1)
	assert.Equal(t, "b.html", data["web"][0]["url"])
	assert.Equal(t, "b.md", data["web"][0]["link_title"])
}

func TestTaxonomyRecordKeepsPageTags(t *testing.T) {
	p := newTaxonomyTestPage("a.md", "x", "y", "x")
	NewTaxonomy().Record(p)
	assert.Equal(t, []string{"x", "y", "x"}, p.Tags)
}
