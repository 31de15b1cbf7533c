// Package content holds the site's content records, the bundled static
// catalogs and the strategy that resolves a slug to a record.
package content

import (
	"errors"
	"slices"
)

// ErrNotFound is returned when a slug has no record in any source.
var ErrNotFound = errors.New("content: not found")

// WorkDetail is the full case-study record.
type WorkDetail struct {
	ID            string   `yaml:"id" json:"id"`
	Title         string   `yaml:"title" json:"title"`
	Thumbnail     string   `yaml:"thumbnail_image,omitempty" json:"thumbnail_image,omitempty"`
	Category      string   `yaml:"category" json:"category"`
	Description   string   `yaml:"description" json:"description"`
	CaseStudyBody string   `yaml:"case_study_body,omitempty" json:"case_study_body"`
	ExternalLink  string   `yaml:"external_link,omitempty" json:"external_link,omitempty"`
	Tags          []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Slug          string   `yaml:"slug" json:"slug"`
}

// WorkSummary is the list-view projection of a WorkDetail.
type WorkSummary struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Thumbnail   string   `yaml:"thumbnail_image,omitempty" json:"thumbnail_image,omitempty"`
	Category    string   `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Slug        string   `yaml:"slug" json:"slug"`
}

// Key returns the lookup slug.
func (w WorkDetail) Key() string { return w.Slug }

// Summary projects the detail onto its list-view fields.
func (w WorkDetail) Summary() WorkSummary {
	return WorkSummary{
		ID:          w.ID,
		Title:       w.Title,
		Thumbnail:   w.Thumbnail,
		Category:    w.Category,
		Description: w.Description,
		Tags:        slices.Clone(w.Tags),
		Slug:        w.Slug,
	}
}

// Clone returns a copy that shares no memory with w.
func (w WorkDetail) Clone() WorkDetail {
	w.Tags = slices.Clone(w.Tags)
	return w
}

// Link is the site-relative URL of the case study.
func (w WorkSummary) Link() string { return "/works/" + w.Slug + "/" }

// InsightDetail is the full article record.
type InsightDetail struct {
	ID            string `yaml:"id" json:"id"`
	Title         string `yaml:"title" json:"title"`
	FeaturedImage string `yaml:"featured_image,omitempty" json:"featured_image,omitempty"`
	Description   string `yaml:"description" json:"description"`
	Body          string `yaml:"body,omitempty" json:"body"`
	AuthorName    string `yaml:"author_name" json:"author_name"`
	PublishedDate string `yaml:"published_date" json:"published_date"`
	Slug          string `yaml:"slug" json:"slug"`
}

// InsightSummary is the list-view projection of an InsightDetail.
type InsightSummary struct {
	ID            string `yaml:"id" json:"id"`
	Title         string `yaml:"title" json:"title"`
	FeaturedImage string `yaml:"featured_image,omitempty" json:"featured_image,omitempty"`
	Description   string `yaml:"description" json:"description"`
	AuthorName    string `yaml:"author_name" json:"author_name"`
	PublishedDate string `yaml:"published_date" json:"published_date"`
	Slug          string `yaml:"slug" json:"slug"`
}

// Key returns the lookup slug.
func (i InsightDetail) Key() string { return i.Slug }

// Summary projects the detail onto its list-view fields.
func (i InsightDetail) Summary() InsightSummary {
	return InsightSummary{
		ID:            i.ID,
		Title:         i.Title,
		FeaturedImage: i.FeaturedImage,
		Description:   i.Description,
		AuthorName:    i.AuthorName,
		PublishedDate: i.PublishedDate,
		Slug:          i.Slug,
	}
}

// Link is the site-relative URL of the article.
func (i InsightSummary) Link() string { return "/insights/" + i.Slug + "/" }
