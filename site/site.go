// Package site builds a static site: it reads the content files, converts
// them, and renders them with the layouts to the publish dir.
package site

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sunwei/pagegen/deps"
	"github.com/sunwei/pagegen/helpers"
	"github.com/sunwei/pagegen/resources/page"
	"github.com/sunwei/pagegen/source"
)

// Site contains all the information relevant for constructing a static
// site. The basic flow of information is as follows:
//
//  1. The content files are discovered and read, their front matter is
//     decoded and their body converted to HTML. Tags are recorded as a side
//     effect.
//
//  2. Every output is assigned a target in the publish dir. Two outputs
//     sharing a target fail the build before anything is written.
//
//  3. Pages are rendered with the page layout, then the index, the tags
//     listing and the per tag pages, each exactly once.
type Site struct {
	// Logger etc.
	*deps.Deps `json:"-"`

	Info page.SiteInfo

	// The func used to title case names.
	titleFunc func(s string) string

	// Everything below is reset on every Build.

	// pages holds every processed page in discovery order.
	pages page.Pages

	taxonomy *Taxonomy
	targets  *targetTree

	// termSlugs maps every tag to its file name below tags/.
	termSlugs map[string]string
	warnings []error

	stats *buildStats
}

// NewSite creates a new site with the given configuration. Templates are
// loaded, so a broken layout fails here.
func NewSite(cfg deps.DepsCfg) (*Site, error) {
	d, err := deps.New(cfg)
	if err != nil {
		return nil, err
	}

	if err := d.LoadResources(); err != nil {
		return nil, err
	}

	s := &Site{
		Deps: d,
		Info: page.SiteInfo{
			Title:   d.BuildConfig.Title,
			BaseURL: d.BuildConfig.BaseURL,
			Params:  d.Cfg.GetParams("params"),
		},
		titleFunc: helpers.GetTitleFunc(d.BuildConfig.TitleCaseStyle),
	}
	s.reset()

	return s, nil
}

func (s *Site) reset() {
	s.Log.Reset()
	s.pages = nil
	s.taxonomy = NewTaxonomy()
	s.targets = newTargetTree()
	s.termSlugs = nil
	s.warnings = nil
	s.stats = &buildStats{}
}

// Build runs the full pipeline once. Building again with unchanged sources
// writes the same bytes. A fatal error stops the build, files written
// before it are left in place.
func (s *Site) Build(ctx context.Context) error {
	start := s.Clock.Now()
	s.reset()

	if err := s.checkLayouts(); err != nil {
		return err
	}

	if s.BuildConfig.CleanDestinationDir {
		if err := s.Fs.CleanPublishDir(); err != nil {
			return err
		}
	}

	if err := s.process(ctx); err != nil {
		return err
	}

	if err := s.assemble(); err != nil {
		return err
	}

	if err := s.render(ctx); err != nil {
		return err
	}

	s.Log.Infof("Total in %d ms", s.Clock.Now().Sub(start).Milliseconds())

	return nil
}

// process reads, decodes and converts every content file.
func (s *Site) process(ctx context.Context) error {
	files, err := s.SourceSpec.NewFilesystem("").Files()
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("build cancelled: %w", err)
		}

		p, err := s.readPage(f)
		if err != nil {
			return err
		}
		if p == nil {
			continue
		}

		s.processPage(p)

		s.pages = append(s.pages, p)
		s.stats.pages.Inc()

		if p.ShouldList() {
			s.taxonomy.Record(p)
		}
	}

	return nil
}

// assemble assigns every output its target.
func (s *Site) assemble() error {
	if err := s.targets.register(page.HomeTargetPaths().TargetFilename, page.KindHome); err != nil {
		return err
	}

	if s.BuildConfig.Tags {
		if err := s.targets.register(page.TaxonomyTargetPaths().TargetFilename, page.KindTaxonomy); err != nil {
			return err
		}
	}

	for _, p := range s.pages {
		if !p.ShouldRender() {
			continue
		}
		if err := s.targets.register(p.TargetFilename, s.sourceName(p.File)); err != nil {
			return err
		}
	}

	if s.BuildConfig.TagPages {
		s.assignTermSlugs()
		for _, tag := range s.taxonomy.Tags() {
			tp := s.termTargetPaths(tag)
			if err := s.targets.register(tp.TargetFilename, fmt.Sprintf("%s %q", page.KindTerm, tag)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Pages returns the pages of the last build in discovery order.
func (s *Site) Pages() page.Pages {
	return s.pages
}

// ListedPages returns the pages of the last build that appear in listings.
func (s *Site) ListedPages() page.Pages {
	var pages page.Pages
	for _, p := range s.pages {
		if p.ShouldList() {
			pages = append(pages, p)
		}
	}
	return pages
}

// Taxonomy returns the tag index of the last build.
func (s *Site) Taxonomy() *Taxonomy {
	return s.taxonomy
}

// Warnings returns the non fatal errors of the last build, i.e. conversion
// warnings.
func (s *Site) Warnings() []error {
	return s.warnings
}

// Stats returns the counters of the last build.
func (s *Site) Stats() Stats {
	return s.stats.snapshot()
}

// sourceName is the file name used in logs and errors, relative to the
// project dir, e.g. content/post1.md.
func (s *Site) sourceName(f *source.File) string {
	return filepath.ToSlash(filepath.Join(s.Fs.ContentDir, f.Path()))
}

func (s *Site) termTargetPaths(tag string) page.TargetPaths {
	slug, found := s.termSlugs[tag]
	if !found {
		slug = s.termSlug(tag)
	}
	return page.TermTargetPaths(slug, s.PrettyURLs)
}

// assignTermSlugs gives every tag its own file name. Tags that urlize to
// the same name, e.g. Go and go, are numbered in sorted tag order.
func (s *Site) assignTermSlugs() {
	s.termSlugs = make(map[string]string, s.taxonomy.Len())
	used := make(map[string]bool, s.taxonomy.Len())

	for _, tag := range s.taxonomy.Tags() {
		base := s.termSlug(tag)
		slug := base
		for i := 2; used[slug]; i++ {
			slug = fmt.Sprintf("%s-%d", base, i)
		}
		used[slug] = true
		s.termSlugs[tag] = slug
	}
}

var termSlugReplacer = strings.NewReplacer("/", "-", "\\", "-", "#", "-")

// termSlug is the urlized tag as a single path element. Tags with nothing
// left after urlizing, e.g. "???", are named "tag".
func (s *Site) termSlug(tag string) string {
	slug := strings.Trim(termSlugReplacer.Replace(s.URLize(tag)), ".-")
	if slug == "" {
		return "tag"
	}
	return slug
}
