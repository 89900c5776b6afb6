package page

const (
	// KindPage is a page rendered from a source document.
	KindPage = "page"

	// The rest are listing outputs rendered once the documents are done.

	KindHome     = "home"
	KindTaxonomy = "taxonomy"
	KindTerm     = "term"
)

// TemplateName returns the layout name used to render outputs of kind.
func TemplateName(kind string) string {
	switch kind {
	case KindHome:
		return "index"
	case KindTaxonomy:
		return "tags"
	case KindTerm:
		return "tag"
	default:
		return "page"
	}
}
