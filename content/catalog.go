package content

import (
	"fmt"
	"strings"
)

// Record is a detail type that can live in a Catalog.
type Record[S any] interface {
	Key() string
	Summary() S
}

// cloner is implemented by records with reference fields.
type cloner[D any] interface {
	Clone() D
}

// cloneRecord copies d so the caller cannot reach catalog memory.
func cloneRecord[D any](d D) D {
	if c, ok := any(d).(cloner[D]); ok {
		return c.Clone()
	}
	return d
}

// Catalog is an immutable, slug-indexed collection of detail records that
// keeps declaration order for listings.
type Catalog[D Record[S], S any] struct {
	details []D
	bySlug  map[string]int
}

// NewCatalog builds a catalog from records in declaration order. Empty and
// duplicate slugs are rejected.
func NewCatalog[D Record[S], S any](records []D) (*Catalog[D, S], error) {
	c := &Catalog[D, S]{
		details: make([]D, 0, len(records)),
		bySlug:  make(map[string]int, len(records)),
	}
	for i, r := range records {
		slug := r.Key()
		if strings.TrimSpace(slug) == "" {
			return nil, fmt.Errorf("content: record %d has an empty slug", i)
		}
		if _, dup := c.bySlug[slug]; dup {
			return nil, fmt.Errorf("content: duplicate slug %q", slug)
		}
		c.bySlug[slug] = len(c.details)
		c.details = append(c.details, cloneRecord(r))
	}
	return c, nil
}

// Summaries returns every record's summary in declaration order.
func (c *Catalog[D, S]) Summaries() []S {
	out := make([]S, len(c.details))
	for i, d := range c.details {
		out[i] = d.Summary()
	}
	return out
}

// Details returns a deep copy of all detail records in declaration order.
func (c *Catalog[D, S]) Details() []D {
	out := make([]D, len(c.details))
	for i, d := range c.details {
		out[i] = cloneRecord(d)
	}
	return out
}

// DetailBySlug returns the record whose slug equals slug exactly.
func (c *Catalog[D, S]) DetailBySlug(slug string) (D, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		var zero D
		return zero, false
	}
	return cloneRecord(c.details[i]), true
}

// Len reports the number of records.
func (c *Catalog[D, S]) Len() int {
	return len(c.details)
}

// WorkCatalog is the catalog of case studies.
type WorkCatalog = Catalog[WorkDetail, WorkSummary]

// InsightCatalog is the catalog of articles.
type InsightCatalog = Catalog[InsightDetail, InsightSummary]
