package source

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/common/loggers"
	"github.com/sunwei/pagegen/config"
)

// Extensions recognized per markup format.
var formatExtensions = map[string][]string{
	config.MarkupMarkdown: {"md", "markdown"},
	config.MarkupHTML:     {"html", "htm"},
}

// ExtensionsFor returns the file extensions, without the dot, of the given
// markup format.
func ExtensionsFor(format string) []string {
	return formatExtensions[format]
}

// SourceSpec holds what is needed to decide which files are content.
type SourceSpec struct {
	SourceFs afero.Fs
	Logger   loggers.Logger

	extensions  map[string]bool
	ignoreFiles []glob.Glob
}

// NewSourceSpec creates a SourceSpec for the content file system fs.
func NewSourceSpec(fs afero.Fs, logger loggers.Logger, cfg config.BuildConfig) (*SourceSpec, error) {
	exts := ExtensionsFor(cfg.MarkupFormat)
	if len(exts) == 0 {
		return nil, herrors.NewFileError(herrors.KindConfig, "", fmt.Errorf("no file extensions known for markup %q", cfg.MarkupFormat))
	}

	sp := &SourceSpec{
		SourceFs:   fs,
		Logger:     logger,
		extensions: make(map[string]bool),
	}
	for _, ext := range exts {
		sp.extensions[ext] = true
	}

	for _, pattern := range cfg.IgnoreFiles {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, herrors.NewFileError(herrors.KindConfig, "", fmt.Errorf("invalid ignoreFiles pattern %q: %w", pattern, err))
		}
		sp.ignoreFiles = append(sp.ignoreFiles, g)
	}

	return sp, nil
}

// IgnoreFile returns whether a given file should be ignored.
// Filename is relative to the content root.
func (s *SourceSpec) IgnoreFile(filename string) bool {
	filename = strings.TrimPrefix(filepath.ToSlash(filename), "/")
	base := path.Base(filename)

	if len(base) > 0 {
		first := base[0]
		last := base[len(base)-1]
		if first == '.' ||
			first == '#' ||
			last == '~' {
			return true
		}
	}

	for _, g := range s.ignoreFiles {
		if g.Match(filename) || g.Match(base) {
			return true
		}
	}

	return false
}

// IsContentFile reports whether filename has one of the extensions of the
// configured markup.
func (s *SourceSpec) IsContentFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return s.extensions[ext]
}
