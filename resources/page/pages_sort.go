package page

import (
	"sort"
)

var newestFirst = func(p1, p2 *Page) bool {
	d1, d2 := p1.PublishedDate, p2.PublishedDate
	switch {
	case d1 == nil:
		return false
	case d2 == nil:
		return true
	}
	return d1.After(d2.Time)
}

// pageBy is a closure used in the Sort.Less method.
type pageBy func(p1, p2 *Page) bool

// Sort stable sorts the pages given the receiver's sort order.
func (by pageBy) Sort(pages Pages) {
	ps := &pageSorter{
		pages: pages,
		by:    by, // The Sort method's receiver is the function (closure) that defines the sort order.
	}
	sort.Stable(ps)
}

// A pageSorter implements the sort interface for Pages
type pageSorter struct {
	pages Pages
	by    pageBy
}

func (ps *pageSorter) Len() int      { return len(ps.pages) }
func (ps *pageSorter) Swap(i, j int) { ps.pages[i], ps.pages[j] = ps.pages[j], ps.pages[i] }

// Less is part of sort.Interface. It is implemented by calling the "by" closure in the sorter.
func (ps *pageSorter) Less(i, j int) bool { return ps.by(ps.pages[i], ps.pages[j]) }
