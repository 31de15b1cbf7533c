package views

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// Primary navigation, in display order.
var NavLinks = []Link{
	{Href: "/works/", Label: "Works"},
	{Href: "/services/", Label: "Services"},
	{Href: "/about/", Label: "About"},
	{Href: "/insights/", Label: "Insights"},
}

// IsActive reports whether a nav link for href should be highlighted on the
// page at current. The root link matches only itself.
func IsActive(current, href string) bool {
	if href == "/" {
		return current == "/"
	}
	base := strings.TrimSuffix(href, "/")
	return current == base || strings.HasPrefix(current, base+"/")
}

// FooterSection picks the context-dependent footer column for the page at p.
func FooterSection(p string) LinkGroup {
	switch {
	case p == "/":
		return LinkGroup{Title: "Quick Links", Links: []Link{
			{Href: "/works/", Label: "Our Work"},
			{Href: "/services/", Label: "Services"},
			{Href: "/contact/", Label: "Contact Us"},
		}}
	case IsActive(p, "/works/"):
		return LinkGroup{Title: "Explore", Links: []Link{
			{Href: "/services/", Label: "Our Services"},
			{Href: "/insights/", Label: "Latest Insights"},
			{Href: "/contact/", Label: "Start a Project"},
		}}
	case IsActive(p, "/insights/"):
		return LinkGroup{Title: "Resources", Links: []Link{
			{Href: "/works/", Label: "Case Studies"},
			{Href: "/services/", Label: "Our Services"},
			{Href: "/about/", Label: "About Us"},
		}}
	}
	return LinkGroup{Title: "Services", Links: []Link{
		{Href: "/services/", Label: "UX Research"},
		{Href: "/services/", Label: "UI Design"},
		{Href: "/services/", Label: "Accessibility"},
	}}
}

// FormatDate renders a YYYY-MM-DD date as "January 2, 2006". Unparseable
// input is returned unchanged.
func FormatDate(d string) string {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return d
	}
	return t.Format("January 2, 2006")
}

// BuildURL joins path segments onto a base URL. The result always ends in a
// slash, so the bare base becomes the site root.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// SplitInsights returns the first two summaries as featured and the rest as
// recent.
func SplitInsights[S any](all []S) (featured, recent []S) {
	if len(all) <= 2 {
		return all, nil
	}
	return all[:2], all[2:]
}
