package site

import (
	"fmt"
	"html/template"

	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/config"
	"github.com/sunwei/pagegen/helpers"
	"github.com/sunwei/pagegen/markup/converter"
	"github.com/sunwei/pagegen/resources/page"
)

// processPage converts the raw content of p and fills in the values
// derived from the result. Conversion problems are recorded as warnings.
func (s *Site) processPage(p *page.Page) {
	name := s.sourceName(p.File)

	b, toc, err := s.convert(p)
	if err != nil {
		w := herrors.NewFileError(herrors.KindConversionWarning, name, err)
		s.Log.Warnln(w)
		s.warnings = append(s.warnings, w)
		s.stats.warnings.Inc()
	}

	p.Content = helpers.BytesToHTML(b)
	p.TableOfContents = toc

	plain := helpers.StripHTML(string(b))
	summary, truncated := s.TruncateWordsToWholeSentence(plain)
	p.ContentSummary = template.HTML(summary)
	p.Truncated = truncated
	p.WordCount = helpers.TotalWords(plain)
	p.ReadingTime = (p.WordCount + 212) / 213
}

// convert returns the HTML of p. On error the result is the best the
// converter could do, or the escaped source if it produced nothing.
func (s *Site) convert(p *page.Page) ([]byte, template.HTML, error) {
	markup := s.BuildConfig.MarkupFormat

	cp := s.Converters.Get(markup)
	if cp == nil {
		return escaped(p.RawContent), "", fmt.Errorf("no converter registered for %q", markup)
	}

	conv, err := cp.New(converter.DocumentContext{
		Document:     p,
		DocumentName: p.File.Path(),
		Filename:     p.SourcePath,
	})
	if err != nil {
		return escaped(p.RawContent), "", err
	}

	res, err := conv.Convert(converter.RenderContext{
		Src:       p.RawContent,
		RenderTOC: true,
	})
	if res == nil {
		if err == nil {
			err = fmt.Errorf("converter returned no result")
		}
		return escaped(p.RawContent), "", err
	}

	b := res.Bytes()
	if markup == config.MarkupMarkdown {
		b = s.PostProcess(b)
	}

	var toc template.HTML
	if tocp, ok := res.(converter.TableOfContentsProvider); ok {
		cfg := s.Converters.GetMarkupConfig().TableOfContents
		toc = template.HTML(tocp.TableOfContents().ToHTML(cfg.StartLevel, cfg.EndLevel, cfg.Ordered))
	}

	return b, toc, err
}

func escaped(b []byte) []byte {
	return []byte("<pre>" + template.HTMLEscapeString(string(b)) + "</pre>")
}
