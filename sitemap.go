package showcase

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accessx/showcase/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// staticPages are the informational routes listed in the sitemap.
var staticPages = []string{"services", "about", "works", "insights", "contact"}

func (a *App) renderSitemap(c echo.Context, works []content.WorkSummary, insights []content.InsightSummary) error {
	base := a.Config.URL
	urls := []sitemapURL{{Loc: BuildURL(base)}}
	for _, p := range staticPages {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, p)})
	}
	for _, w := range works {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "works", w.Slug)})
	}
	for _, in := range insights {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "insights", in.Slug),
			LastMod: in.PublishedDate,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
