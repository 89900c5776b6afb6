package site

import (
	"errors"

	"github.com/spf13/afero"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/helpers"
	"github.com/sunwei/pagegen/parser/pageparser"
	"github.com/sunwei/pagegen/resources/page"
	"github.com/sunwei/pagegen/resources/page/pagemeta"
	"github.com/sunwei/pagegen/source"
)

// readPage reads f and decodes its front matter. It returns nil and no
// error for files that are skipped: unreadable files and drafts.
func (s *Site) readPage(f *source.File) (*page.Page, error) {
	name := s.sourceName(f)

	b, err := afero.ReadFile(s.Fs.Content, f.Filename())
	if err != nil {
		s.Log.Warnf("skipping %q: %s", name, err)
		s.stats.skipped.Inc()
		return nil, nil
	}

	cf, err := pageparser.ParseFrontMatterAndContent(b)
	if err != nil {
		line := 1
		var se *pageparser.SyntaxError
		if errors.As(err, &se) {
			line = se.Line
		}
		return nil, herrors.NewFileErrorAt(herrors.KindMetadataParse, name, line, err)
	}

	fm, err := pagemeta.DecodeFrontMatter(cf.FrontMatter)
	if err != nil {
		return nil, herrors.NewFileError(herrors.KindMetadataParse, name, err)
	}

	if fm.Draft && !s.BuildConfig.BuildDrafts {
		s.Log.Infof("skipping draft %q", name)
		s.stats.drafts.Inc()
		return nil, nil
	}

	if len(fm.Tags) > 0 && !fm.HasTitle {
		s.Log.Warnf("%q has tags but no title, listings will use the file name", name)
	}

	paths := page.CreateTargetPaths(f.PathNoExt(), s.PrettyURLs)
	p := page.New(f, paths, s.Permalink(paths.URL), helpers.HumanizeName(f.BaseFileName(), s.titleFunc))
	p.FrontMatter = fm
	p.RawContent = cf.Content

	return p, nil
}
