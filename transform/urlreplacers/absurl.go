// Package urlreplacers rewrites root relative URLs in rendered HTML.
package urlreplacers

import "github.com/sunwei/pagegen/transform"

var ar = newAbsURLReplacer()

// NewAbsURLTransformer replaces root relative URLs with absolute ones
// in HTML files, using the given base.
func NewAbsURLTransformer(base string) transform.Transformer {
	return func(ft transform.FromTo) error {
		return ar.replaceInHTML(base, ft)
	}
}
