package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/accessx/showcase/content"
)

var testSite = SiteConfig{
	Name:          "accessX",
	URL:           "https://accessx.example",
	Description:   "Accessibility and UX",
	SchedulingURL: "https://calendly.com/accessx",
	ContactEmail:  "hello@accessx.eu",
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func layout(path string) Layout {
	return Layout{Site: testSite, Path: path, Meta: PageMeta{Title: "T"}}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		current, href string
		want          bool
	}{
		{"/", "/", true},
		{"/works/", "/", false},
		{"/works/", "/works/", true},
		{"/works/banking-inclusive-design/", "/works/", true},
		{"/works", "/works/", true},
		{"/worksheet/", "/works/", false},
		{"/insights/", "/works/", false},
	}
	for _, tt := range tests {
		if got := IsActive(tt.current, tt.href); got != tt.want {
			t.Errorf("IsActive(%q, %q) = %v, want %v", tt.current, tt.href, got, tt.want)
		}
	}
}

func TestFooterSection(t *testing.T) {
	tests := map[string]string{
		"/":                 "Quick Links",
		"/works/":           "Explore",
		"/works/some-case/": "Explore",
		"/insights/x/":      "Resources",
		"/about/":           "Services",
		"/contact/":         "Services",
	}
	for path, want := range tests {
		if got := FooterSection(path).Title; got != want {
			t.Errorf("FooterSection(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-01-15"); got != "January 15, 2025" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate("soon"); got != "soon" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://accessx.example", nil, "https://accessx.example/"},
		{"https://accessx.example/", []string{"works", "banking"}, "https://accessx.example/works/banking/"},
		{"https://accessx.example/site", []string{"feed.xml/"}, "https://accessx.example/site/feed.xml/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestSplitInsights(t *testing.T) {
	f, r := SplitInsights([]int{1, 2, 3, 4})
	if len(f) != 2 || len(r) != 2 || r[0] != 3 {
		t.Errorf("featured=%v recent=%v", f, r)
	}
	f, r = SplitInsights([]int{1})
	if len(f) != 1 || r != nil {
		t.Errorf("featured=%v recent=%v", f, r)
	}
}

func TestHomeRendersChrome(t *testing.T) {
	out := render(t, Home(layout("/")))
	for _, want := range []string{
		"Experience-driven. Accessibility-focused.",
		"What we do",
		"UX Research &amp; Usability Testing",
		`href="https://calendly.com/accessx"`,
		"Quick Links",
		"hello@accessx.eu",
		"<title>T | accessX</title>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("home output missing %q", want)
		}
	}
}

func TestNavMarksActiveLink(t *testing.T) {
	out := render(t, Works(layout("/works/"), content.Works().Summaries()))
	if !strings.Contains(out, `<a href="/works/" class="active" aria-current="page">Works</a>`) {
		t.Error("works link should be active")
	}
	if strings.Contains(out, `<a href="/about/" class="active"`) {
		t.Error("about link should not be active")
	}
	for _, w := range content.Works().Summaries() {
		if !strings.Contains(out, w.Link()) {
			t.Errorf("missing card link %s", w.Link())
		}
	}
}

func TestWorkDetail(t *testing.T) {
	w, _ := content.Works().DetailBySlug("banking-inclusive-design")
	out := render(t, Work(layout("/works/banking-inclusive-design/"), w))
	for _, want := range []string{
		"Banking App Inclusive Redesign",
		"Back to Works",
		"View Live Project",
		"Cognitive Accessibility",
		"<p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("work output missing %q", want)
		}
	}

	partial := render(t, WorkPartial(w))
	if strings.Contains(partial, "<html") {
		t.Error("partial must not include the layout")
	}
	if !strings.Contains(partial, `id="detail"`) {
		t.Error("partial missing article")
	}
}

func TestWorkWithoutExternalLink(t *testing.T) {
	w, _ := content.Works().DetailBySlug("ecommerce-accessibility")
	out := render(t, Work(layout("/works/ecommerce-accessibility/"), w))
	if strings.Contains(out, "View Live Project") {
		t.Error("external link rendered for a work without one")
	}
}

func TestInsightDetail(t *testing.T) {
	in, _ := content.Insights().DetailBySlug("inclusive-design-thinking")
	out := render(t, Insight(layout("/insights/inclusive-design-thinking/"), in))
	for _, want := range []string{
		"The Power of Inclusive Design Thinking",
		"Sarah Chen",
		"January 15, 2025",
		"Back to Insights",
		"Resources",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("insight output missing %q", want)
		}
	}
}

func TestInsightsListing(t *testing.T) {
	featured, recent := SplitInsights(content.Insights().Summaries())
	out := render(t, Insights(layout("/insights/"), featured, recent))
	if !strings.Contains(out, "Featured Articles") || !strings.Contains(out, "Recent Articles") {
		t.Error("missing listing sections")
	}

	empty := render(t, Insights(layout("/insights/"), nil, nil))
	if !strings.Contains(empty, "No insights available yet. Check back soon!") {
		t.Error("missing empty state")
	}
}

func TestContactForm(t *testing.T) {
	l := layout("/contact/")
	l.CSRF = "tok123"
	out := render(t, Contact(l, ContactForm{
		Name:   "Ada",
		Errors: map[string]string{"email": "Please enter a valid email address."},
	}))
	for _, want := range []string{
		`name="_csrf" value="tok123"`,
		`value="Ada"`,
		"Please enter a valid email address.",
		`aria-invalid="true"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("contact output missing %q", want)
		}
	}
}

func TestFlashNotice(t *testing.T) {
	l := layout("/contact/")
	l.Flash = &Notice{Title: content.ContactSentTitle, Body: content.ContactSentBody}
	out := render(t, Contact(l, ContactForm{}))
	if !strings.Contains(out, "Message sent!") {
		t.Error("flash not rendered")
	}
}

func TestLoadingAndNotFound(t *testing.T) {
	back := BackLink{Href: "/works/", Label: "Back to Works", Title: "Case study not found"}
	out := render(t, Loading(layout("/works/x/"), back, 1500*time.Millisecond))
	if !strings.Contains(out, `http-equiv="refresh" content="2"`) {
		t.Errorf("loading page missing refresh: %s", out)
	}

	out = render(t, DetailNotFound(layout("/works/x/"), back))
	if !strings.Contains(out, "Case study not found") || !strings.Contains(out, `href="/works/"`) {
		t.Error("detail not-found missing heading or back link")
	}

	out = render(t, NotFound(layout("/nope/")))
	if !strings.Contains(out, "Page not found") {
		t.Error("404 page missing text")
	}

	out = render(t, ServerError(layout("/about/")))
	if !strings.Contains(out, "Something went wrong") || !strings.Contains(out, "Refresh Page") {
		t.Error("server error page missing text")
	}
}

func TestJSONLDIsEmittedRaw(t *testing.T) {
	l := layout("/")
	l.JSONLD = `{"@type":"WebSite"}`
	out := render(t, About(l))
	if !strings.Contains(out, `<script type="application/ld+json">{"@type":"WebSite"}</script>`) {
		t.Error("JSON-LD not emitted verbatim")
	}
}
