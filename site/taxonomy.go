package site

import (
	"sort"

	"github.com/sunwei/pagegen/helpers"
	"github.com/sunwei/pagegen/resources/page"
)

// Taxonomy is the tag index: every tag mapped to the pages carrying it, in
// the order they were recorded. A tag without pages never exists.
type Taxonomy struct {
	entries map[string][]page.Summary

	// Tags in the order they were first seen.
	order []string
}

// NewTaxonomy creates an empty tag index.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{entries: make(map[string][]page.Summary)}
}

// Record adds p to the list of every tag it carries. A tag listed more
// than once in p is recorded once.
func (t *Taxonomy) Record(p *page.Page) {
	if len(p.Tags) == 0 {
		return
	}

	tags := helpers.UniqueStringsReuse(append([]string(nil), p.Tags...))
	summary := p.Summary()

	for _, tag := range tags {
		if _, found := t.entries[tag]; !found {
			t.order = append(t.order, tag)
		}
		t.entries[tag] = append(t.entries[tag], summary)
	}
}

// Tags returns the tag names, sorted.
func (t *Taxonomy) Tags() []string {
	tags := make([]string, len(t.order))
	copy(tags, t.order)
	sort.Strings(tags)
	return tags
}

// Pages returns the pages tagged with tag in record order.
func (t *Taxonomy) Pages(tag string) []page.Summary {
	return t.entries[tag]
}

// Len returns the number of tags.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// ToTemplateData returns the index as tag name to page summary maps.
func (t *Taxonomy) ToTemplateData() map[string][]map[string]any {
	m := make(map[string][]map[string]any, len(t.entries))
	for tag, summaries := range t.entries {
		m[tag] = summariesToMaps(summaries)
	}
	return m
}

func summariesToMaps(summaries []page.Summary) []map[string]any {
	s := make([]map[string]any, len(summaries))
	for i, summary := range summaries {
		s[i] = summary.ToMap()
	}
	return s
}
