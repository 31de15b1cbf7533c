package views

import "html/template"

// SiteConfig holds the site-wide settings every page needs.
type SiteConfig struct {
	Name          string
	URL           string
	Description   string
	Author        string
	SchedulingURL string // "Book a call" target
	ContactEmail  string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Layout is the chrome shared by full pages.
type Layout struct {
	Site   SiteConfig
	Meta   PageMeta
	Path   string      // request path, drives the active nav link
	JSONLD template.JS // optional structured data
	Flash  *Notice
	CSRF   string
}

// Notice is a one-shot message shown at the top of a page.
type Notice struct {
	Title string
	Body  string
}

// BackLink is the recovery link on detail pages.
type BackLink struct {
	Href  string
	Label string
	Title string // heading for the not-found state
}

// ContactForm is the contact page form state.
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Errors  map[string]string
}

// Link is a labelled href.
type Link struct {
	Href  string
	Label string
}

// LinkGroup is a titled list of links.
type LinkGroup struct {
	Title string
	Links []Link
}
