// Package page contains the page model shared by the site build and the
// templates.
package page

import (
	"html/template"

	"github.com/sunwei/pagegen/common/maps"
	"github.com/sunwei/pagegen/helpers"
	"github.com/sunwei/pagegen/resources/page/pagemeta"
	"github.com/sunwei/pagegen/source"
)

// Page is one source document on its way through the build.
//
// It is created from a discovered file with its paths set, gets its front
// matter and raw content when read, and its HTML when converted.
type Page struct {
	File *source.File

	// SourcePath is the filename on the source file system.
	SourcePath string

	TargetPaths

	// Permalink is URL made absolute with the configured baseURL.
	Permalink string

	// Name is the source file name, e.g. post1.md.
	Name string

	// humanName is the humanized base filename, the link text of untitled
	// pages.
	humanName string

	pagemeta.FrontMatter

	// RawContent is the body as read, without front matter.
	RawContent []byte

	// Content is the converted body.
	Content template.HTML

	TableOfContents template.HTML

	// ContentSummary is the start of the plain text content, cut at a
	// sentence boundary.
	ContentSummary template.HTML
	Truncated      bool

	WordCount   int
	ReadingTime int
}

// New creates a Page for a discovered file. humanName is used as link text
// when the page has no title.
func New(f *source.File, paths TargetPaths, permalink, humanName string) *Page {
	return &Page{
		File:        f,
		SourcePath:  f.Filename(),
		TargetPaths: paths,
		Permalink:   permalink,
		Name:        f.LogicalName(),
		humanName:   humanName,
		FrontMatter: pagemeta.FrontMatter{
			Tags:   []string{},
			Params: make(maps.Params),
		},
	}
}

// LinkTitle returns the title if set, else the humanized file name.
func (p *Page) LinkTitle() string {
	if p.HasTitle {
		return p.Title
	}
	return p.humanName
}

// ShouldList reports whether p belongs in the index and the tag listings.
func (p *Page) ShouldList() bool {
	return p.Build.ShouldList()
}

// ShouldRender reports whether p gets an output file.
func (p *Page) ShouldRender() bool {
	return p.Build.ShouldRender()
}

// Summary returns the short form of p used by listings.
func (p *Page) Summary() Summary {
	return Summary{
		URL:           p.URL,
		Permalink:     p.Permalink,
		Name:          p.Name,
		humanName:     p.humanName,
		Title:         p.Title,
		HasTitle:      p.HasTitle,
		PublishedDate: p.PublishedDate,
		Tags:          p.Tags,
	}
}

// Data returns the variables the page template is executed with. Every
// front matter key is included both as written and lower cased, the keys
// computed by the build take precedence.
func (p *Page) Data(site SiteInfo) map[string]any {
	data := make(map[string]any, len(p.Raw)+len(p.Params)+16)
	for k, v := range p.Raw {
		data[k] = v
	}
	for k, v := range p.Params {
		data[k] = v
	}

	data["content"] = p.Content
	data["title"] = titleOrNil(p.Title, p.HasTitle)
	data["published_date"] = dateOrNil(p.PublishedDate)
	data["tags"] = p.Tags
	data["url"] = p.URL
	data["permalink"] = p.Permalink
	data["name"] = p.Name
	data["relroot"] = helpers.GetDottedRelativePath(p.TargetFilename)
	data["toc"] = p.TableOfContents
	data["summary"] = p.ContentSummary
	data["truncated"] = p.Truncated
	data["word_count"] = p.WordCount
	data["reading_time"] = p.ReadingTime
	data["source_path"] = p.File.Path()
	data["params"] = p.Params
	data["site"] = site.ToMap()

	return data
}

// Summary is what listings know about a page.
type Summary struct {
	URL           string
	Permalink     string
	Name          string
	Title         string
	HasTitle      bool
	PublishedDate *pagemeta.Date
	Tags          []string

	humanName string
}

// LinkTitle returns the title if set, else the humanized file name.
func (s Summary) LinkTitle() string {
	if s.HasTitle {
		return s.Title
	}
	return s.humanName
}

// ToMap returns the template view of s.
func (s Summary) ToMap() map[string]any {
	return map[string]any{
		"url":            s.URL,
		"permalink":      s.Permalink,
		"name":           s.Name,
		"title":          titleOrNil(s.Title, s.HasTitle),
		"link_title":     s.LinkTitle(),
		"published_date": dateOrNil(s.PublishedDate),
		"tags":           s.Tags,
	}
}

func titleOrNil(title string, has bool) any {
	if !has {
		return nil
	}
	return title
}

// Templates test for the date with a plain if, so a missing date must be an
// untyped nil.
func dateOrNil(d *pagemeta.Date) any {
	if d == nil {
		return nil
	}
	return *d
}
