package site

import (
	"context"
	"fmt"
	"io"

	bp "github.com/sunwei/pagegen/bufferpool"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/helpers"
	"github.com/sunwei/pagegen/output"
	"github.com/sunwei/pagegen/publisher"
	"github.com/sunwei/pagegen/resources/page"
	"github.com/sunwei/pagegen/tpl"
)

// checkLayouts makes sure every layout the build will need exists before
// anything is written.
func (s *Site) checkLayouts() error {
	kinds := []string{page.KindPage, page.KindHome}
	if s.BuildConfig.Tags {
		kinds = append(kinds, page.KindTaxonomy)
	}
	if s.BuildConfig.TagPages {
		kinds = append(kinds, page.KindTerm)
	}

	for _, kind := range kinds {
		if _, err := s.lookupLayout(kind); err != nil {
			return err
		}
	}

	return nil
}

func (s *Site) lookupLayout(kind string) (tpl.Template, error) {
	name := page.TemplateName(kind)
	templ, found := s.Tmpl().Lookup(name)
	if !found {
		return nil, herrors.NewFileError(herrors.KindTemplateNotFound, name+".html", fmt.Errorf("no %q layout in %q", name, s.BuildConfig.LayoutDir))
	}
	return templ, nil
}

func (s *Site) render(ctx context.Context) error {
	if err := s.renderPages(ctx); err != nil {
		return err
	}

	if err := s.renderIndex(ctx); err != nil {
		return err
	}

	if s.BuildConfig.Tags {
		if err := s.renderTaxonomy(ctx); err != nil {
			return err
		}
	}

	if s.BuildConfig.TagPages {
		if err := s.renderTerms(ctx); err != nil {
			return err
		}
	}

	return nil
}

// renderPages renders pages each corresponding to a content file.
func (s *Site) renderPages(ctx context.Context) error {
	templ, err := s.lookupLayout(page.KindPage)
	if err != nil {
		return err
	}

	for _, p := range s.pages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("build cancelled: %w", err)
		}

		if !p.ShouldRender() {
			continue
		}

		if err := s.renderAndWritePage(ctx, s.sourceName(p.File), p.TargetFilename, p.Data(s.Info), templ); err != nil {
			return err
		}
	}

	return nil
}

func (s *Site) renderIndex(ctx context.Context) error {
	templ, err := s.lookupLayout(page.KindHome)
	if err != nil {
		return err
	}

	listed := s.ListedPages()
	summaries := listed.Summaries()
	target := page.HomeTargetPaths().TargetFilename

	data := s.listData(page.HomeTargetPaths())
	data["pages"] = summaries
	data["blog_posts"] = summaries
	data["pages_by_date"] = listed.ByDate().Summaries()
	data["tags"] = s.taxonomy.ToTemplateData()
	data["tag_names"] = s.taxonomy.Tags()

	return s.renderAndWritePage(ctx, page.KindHome, target, data, templ)
}

func (s *Site) renderTaxonomy(ctx context.Context) error {
	templ, err := s.lookupLayout(page.KindTaxonomy)
	if err != nil {
		return err
	}

	tp := page.TaxonomyTargetPaths()

	data := s.listData(tp)
	data["tags"] = s.taxonomy.ToTemplateData()
	data["tag_names"] = s.taxonomy.Tags()
	if s.BuildConfig.TagPages {
		urls := make(map[string]string, s.taxonomy.Len())
		for _, tag := range s.taxonomy.Tags() {
			urls[tag] = s.termTargetPaths(tag).URL
		}
		data["tag_urls"] = urls
	}

	return s.renderAndWritePage(ctx, page.KindTaxonomy, tp.TargetFilename, data, templ)
}

// renderTerms renders one listing per tag.
func (s *Site) renderTerms(ctx context.Context) error {
	templ, err := s.lookupLayout(page.KindTerm)
	if err != nil {
		return err
	}

	for _, tag := range s.taxonomy.Tags() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("build cancelled: %w", err)
		}

		tp := s.termTargetPaths(tag)

		data := s.listData(tp)
		data["tag"] = tag
		data["pages"] = summariesToMaps(s.taxonomy.Pages(tag))

		if err := s.renderAndWritePage(ctx, fmt.Sprintf("%s %q", page.KindTerm, tag), tp.TargetFilename, data, templ); err != nil {
			return err
		}
	}

	return nil
}

// listData returns the variables every listing gets.
func (s *Site) listData(tp page.TargetPaths) map[string]any {
	return map[string]any{
		"url":       tp.URL,
		"permalink": s.Permalink(tp.URL),
		"relroot":   helpers.GetDottedRelativePath(tp.TargetFilename),
		"site":      s.Info.ToMap(),
	}
}

func (s *Site) renderAndWritePage(ctx context.Context, name, targetPath string, d any, templ tpl.Template) error {
	renderBuffer := bp.GetBuffer()
	defer bp.PutBuffer(renderBuffer)

	if err := s.renderForTemplate(ctx, name, d, renderBuffer, templ); err != nil {
		return err
	}

	pd := publisher.Descriptor{
		Src:          renderBuffer,
		TargetPath:   targetPath,
		OutputFormat: output.HTMLFormat,
		Minify:       s.BuildConfig.MinifyOutput,
	}

	if s.BuildConfig.CanonifyURLs && s.BaseURL != "" {
		pd.AbsURLPath = s.BaseURL
	}

	if err := s.Publisher.Publish(pd); err != nil {
		return err
	}

	s.stats.files.Inc()
	s.Log.Debugf("rendered %s to %q", name, targetPath)

	return nil
}

func (s *Site) renderForTemplate(ctx context.Context, name string, d any, w io.Writer, templ tpl.Template) error {
	if err := s.Tmpl().ExecuteWithContext(ctx, templ, w, d); err != nil {
		return fmt.Errorf("render of %s failed: %w", name, err)
	}
	return nil
}
