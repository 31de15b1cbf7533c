package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
)

// Bundled records: one file per record, YAML front matter followed by the
// markup body. File name order is declaration order.
//
//go:embed data
var dataFS embed.FS

var (
	staticWorks    = mustLoadWorks(dataFS, "data/works")
	staticInsights = mustLoadInsights(dataFS, "data/insights")
)

// Works returns the bundled case-study catalog.
func Works() *WorkCatalog { return staticWorks }

// Insights returns the bundled article catalog.
func Insights() *InsightCatalog { return staticInsights }

// LoadWorks parses every *.md file in dir into a work catalog.
func LoadWorks(fsys fs.FS, dir string) (*WorkCatalog, error) {
	var works []WorkDetail
	err := eachRecord(fsys, dir, func(name string, raw []byte) error {
		var w WorkDetail
		body, err := frontmatter.MustParse(bytes.NewReader(raw), &w)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		w.CaseStudyBody = strings.TrimSpace(string(body))
		works = append(works, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewCatalog[WorkDetail, WorkSummary](works)
}

// LoadInsights parses every *.md file in dir into an article catalog.
func LoadInsights(fsys fs.FS, dir string) (*InsightCatalog, error) {
	var insights []InsightDetail
	err := eachRecord(fsys, dir, func(name string, raw []byte) error {
		var in InsightDetail
		body, err := frontmatter.MustParse(bytes.NewReader(raw), &in)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		in.Body = strings.TrimSpace(string(body))
		insights = append(insights, in)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewCatalog[InsightDetail, InsightSummary](insights)
}

// eachRecord calls fn for each markdown file in dir, sorted by file name.
func eachRecord(fsys fs.FS, dir string, fn func(name string, raw []byte) error) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		name := path.Join(dir, e.Name())
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("content: read %s: %w", name, err)
		}
		if err := fn(name, raw); err != nil {
			return fmt.Errorf("content: %w", err)
		}
	}
	return nil
}

func mustLoadWorks(fsys fs.FS, dir string) *WorkCatalog {
	c, err := LoadWorks(fsys, dir)
	if err != nil {
		panic(err)
	}
	return c
}

func mustLoadInsights(fsys fs.FS, dir string) *InsightCatalog {
	c, err := LoadInsights(fsys, dir)
	if err != nil {
		panic(err)
	}
	return c
}
