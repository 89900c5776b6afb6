// Package output describes the formats rendered outputs are written in.
package output

import (
	"path"
	"strings"
)

// Format represents an output representation, usually to a file on disk.
type Format struct {
	// The Name is used as an identifier.
	Name string

	// MediaType is the MIME type, also used to pick a minifier.
	MediaType string

	// Suffixes are the file extensions, without the dot, templates and
	// outputs of this format use. The first is the default.
	Suffixes []string

	// IsHTML returns whether this format is in the HTML family.
	IsHTML bool
}

// Suffix returns the default file extension of f.
func (f Format) Suffix() string {
	if len(f.Suffixes) == 0 {
		return ""
	}
	return f.Suffixes[0]
}

// Formats is a slice of Format.
type Formats []Format

// HTMLFormat is the format of every page, listing and index.
var HTMLFormat = Format{
	Name:      "HTML",
	MediaType: "text/html",
	Suffixes:  []string{"html", "htm"},
	IsHTML:    true,
}

// DefaultFormats contains the output formats a build knows about.
var DefaultFormats = Formats{
	HTMLFormat,
}

// GetByName gets a format by its identifier name.
func (formats Formats) GetByName(name string) (f Format, found bool) {
	for _, ff := range formats {
		if strings.EqualFold(name, ff.Name) {
			return ff, true
		}
	}
	return
}

// GetBySuffix gets a output format given as suffix, e.g. "html".
// The lookup is case insensitive.
func (formats Formats) GetBySuffix(suffix string) (f Format, found bool) {
	for _, ff := range formats {
		for _, s := range ff.Suffixes {
			if strings.EqualFold(suffix, s) {
				return ff, true
			}
		}
	}
	return
}

// FromFilename gets a Format given a filename, e.g. page.html.
func (formats Formats) FromFilename(filename string) (f Format, found bool) {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		return
	}
	return formats.GetBySuffix(ext)
}
