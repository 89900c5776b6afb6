package page

import (
	"path"
	"strings"
)

const (
	indexFilename = "index.html"
	tagsFilename  = "tags.html"
	tagsSection   = "tags"
)

// TargetPaths holds the paths of a rendered output.
type TargetPaths struct {
	// URL is relative to the site root, always / separated and never with a
	// leading slash.
	URL string

	// TargetFilename is relative to the publish dir, / separated.
	TargetFilename string
}

// CreateTargetPaths derives the output paths for a document with the given
// relative path without extension, e.g. "a/b" for "a/b.md".
//
//	flat:       a/b.html   -> a/b.html
//	pretty-url: a/b/       -> a/b/index.html
func CreateTargetPaths(pathNoExt string, prettyURLs bool) TargetPaths {
	p := strings.Trim(path.Clean("/"+pathNoExt), "/")

	if prettyURLs {
		return TargetPaths{
			URL:            p + "/",
			TargetFilename: path.Join(p, indexFilename),
		}
	}

	return TargetPaths{
		URL:            p + ".html",
		TargetFilename: p + ".html",
	}
}

// HomeTargetPaths are the paths of the site index. It lives at the root in
// both layouts.
func HomeTargetPaths() TargetPaths {
	return TargetPaths{URL: "", TargetFilename: indexFilename}
}

// TaxonomyTargetPaths are the paths of the page listing every tag.
func TaxonomyTargetPaths() TargetPaths {
	return TargetPaths{URL: tagsFilename, TargetFilename: tagsFilename}
}

// TermTargetPaths are the paths of the listing of one tag. urlizedTag must
// already be safe for use in a path.
func TermTargetPaths(urlizedTag string, prettyURLs bool) TargetPaths {
	return CreateTargetPaths(path.Join(tagsSection, urlizedTag), prettyURLs)
}
