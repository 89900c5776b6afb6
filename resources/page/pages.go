package page

// Pages is an ordered list of pages, by default in discovery order.
type Pages []*Page

// Len returns the number of pages in the list.
func (p Pages) Len() int {
	return len(p)
}

// Summaries returns the template view of every page in p.
func (p Pages) Summaries() []map[string]any {
	s := make([]map[string]any, len(p))
	for i, pp := range p {
		s[i] = pp.Summary().ToMap()
	}
	return s
}

// ByDate returns a copy of p sorted by published date, newest first. Pages
// without a date go last, in their original order.
func (p Pages) ByDate() Pages {
	pages := make(Pages, len(p))
	copy(pages, p)
	pageBy(newestFirst).Sort(pages)
	return pages
}
