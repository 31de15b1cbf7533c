package showcase

import (
	"encoding/json"
	"html/template"
	"strings"

	"github.com/accessx/showcase/content"
	"github.com/accessx/showcase/views"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	return views.BuildURL(base, pathSegments...)
}

func jsonLD(data map[string]any) template.JS {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return template.JS(b)
}

func organization(cfg SiteConfig) map[string]any {
	org := map[string]any{
		"@type": "Organization",
		"name":  cfg.Author,
		"url":   BuildURL(cfg.URL),
	}
	if cfg.ContactEmail != "" {
		org["email"] = cfg.ContactEmail
	}
	return org
}

// WebsiteJSONLD returns a Schema.org WebSite block for the site.
func WebsiteJSONLD(cfg SiteConfig) template.JS {
	return jsonLD(map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
		"publisher":   organization(cfg),
	})
}

// ArticleJSONLD returns a Schema.org Article block for an insight.
func ArticleJSONLD(cfg SiteConfig, in content.InsightDetail) template.JS {
	u := BuildURL(cfg.URL, "insights", in.Slug)
	data := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      in.Title,
		"description":   in.Description,
		"datePublished": in.PublishedDate,
		"url":           u,
		"publisher":     organization(cfg),
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   u,
		},
	}
	if in.AuthorName != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  in.AuthorName,
		}
	}
	if in.FeaturedImage != "" {
		data["image"] = in.FeaturedImage
	}
	return jsonLD(data)
}

// CreativeWorkJSONLD returns a Schema.org CreativeWork block for a case study.
func CreativeWorkJSONLD(cfg SiteConfig, w content.WorkDetail) template.JS {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "CreativeWork",
		"name":        w.Title,
		"description": w.Description,
		"genre":       w.Category,
		"url":         BuildURL(cfg.URL, "works", w.Slug),
		"creator":     organization(cfg),
	}
	if len(w.Tags) > 0 {
		data["keywords"] = strings.Join(w.Tags, ", ")
	}
	if w.Thumbnail != "" {
		data["image"] = w.Thumbnail
	}
	if w.ExternalLink != "" {
		data["sameAs"] = w.ExternalLink
	}
	return jsonLD(data)
}
