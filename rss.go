package showcase

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/accessx/showcase/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

func (a *App) renderRSS(c echo.Context, insights []content.InsightSummary) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(insights))
	for _, in := range insights {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", in.PublishedDate); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		u := BuildURL(base, "insights", in.Slug)
		items = append(items, rssItem{
			Title:       in.Title,
			Link:        u,
			Description: in.Description,
			Author:      in.AuthorName,
			PubDate:     pubDate,
			GUID:        u,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name + " Insights",
			Link:        BuildURL(base, "insights"),
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
