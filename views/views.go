// Package views renders the site's pages. Templates are embedded
// html/template files exposed as templ components so they can be swapped
// for generated templ code without touching the handlers.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/accessx/showcase/content"
	"github.com/accessx/showcase/markup"
)

//go:embed templates
var templateFS embed.FS

var funcs = template.FuncMap{
	"isActive":   IsActive,
	"formatDate": FormatDate,
	"footer":     FooterSection,
	"markup":     markup.HTML,
	"excerpt":    markup.Excerpt,
	"join":       strings.Join,
	"year":       func() int { return time.Now().Year() },
	"nav":        func() []Link { return NavLinks },
	"dict":       dict,
}

// dict builds a map from alternating keys and values so templates can pass
// more than one value to a nested template.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("views: dict needs key/value pairs")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("views: dict key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

var pages = mustParsePages()

// mustParsePages builds one template set per page file, each layered on a
// fresh copy of the shared layout.
func mustParsePages() map[string]*template.Template {
	base := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/layout/*.html"))
	names, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		panic(err)
	}
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t := template.Must(base.Clone())
		template.Must(t.ParseFS(templateFS, name))
		out[strings.TrimSuffix(path.Base(name), ".html")] = t
	}
	return out
}

type viewData struct {
	Layout
	Data any
}

func execute(page, name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t, ok := pages[page]
		if !ok {
			return fmt.Errorf("views: unknown page %q", page)
		}
		return t.ExecuteTemplate(w, name, data)
	})
}

func full(page string, l Layout, data any) templ.Component {
	return execute(page, "layout", viewData{Layout: l, Data: data})
}

type copyBlock = content.Copy

// Home is the landing page: hero, call to action and the services teaser.
func Home(l Layout) templ.Component {
	return full("home", l, struct {
		Hero, CTA, Teaser, Closing copyBlock
		Services                   []content.Service
	}{content.Hero, content.HomeCTA, content.ServicesTeaser, content.HomeClosing, content.Services})
}

func Services(l Layout) templ.Component {
	return full("services", l, struct {
		Intro, ProcessIntro, CTA copyBlock
		Services                 []content.Service
		Process                  []content.ProcessStep
	}{content.ServicesIntro, content.ProcessIntro, content.ServicesCTA, content.Services, content.Process})
}

func About(l Layout) templ.Component {
	return full("about", l, struct {
		Intro, ValuesIntro, CTA copyBlock
		Stats                   []content.Stat
		Values                  []content.Value
	}{content.AboutIntro, content.ValuesIntro, content.AboutCTA, content.Stats, content.Values})
}

// Works lists case-study cards in catalog order.
func Works(l Layout, works []content.WorkSummary) templ.Component {
	return full("works", l, struct {
		Intro, CTA copyBlock
		Works      []content.WorkSummary
	}{content.WorksIntro, content.WorksCTA, works})
}

// Work is the full case-study page.
func Work(l Layout, w content.WorkDetail) templ.Component {
	return full("work", l, w)
}

// WorkPartial renders only the case-study article.
func WorkPartial(w content.WorkDetail) templ.Component {
	return execute("work", "detail", w)
}

// Insights lists articles; featured are shown large, recent as a list.
func Insights(l Layout, featured, recent []content.InsightSummary) templ.Component {
	return full("insights", l, struct {
		Intro            copyBlock
		Featured, Recent []content.InsightSummary
		Empty            string
	}{content.InsightsIntro, featured, recent, content.InsightsEmpty})
}

// Insight is the full article page.
func Insight(l Layout, in content.InsightDetail) templ.Component {
	return full("insight", l, in)
}

// InsightPartial renders only the article.
func InsightPartial(in content.InsightDetail) templ.Component {
	return execute("insight", "detail", in)
}

// Contact is the contact page with its form.
func Contact(l Layout, form ContactForm) templ.Component {
	return full("contact", l, struct {
		Intro copyBlock
		Form  ContactForm
	}{content.ContactIntro, form})
}

// Loading is the placeholder shown while a detail lookup is still running.
// It reloads itself after refresh.
func Loading(l Layout, back BackLink, refresh time.Duration) templ.Component {
	secs := int(refresh.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return full("loading", l, struct {
		Back    BackLink
		Refresh int
	}{back, secs})
}

// DetailNotFound is the not-found state of a detail page.
func DetailNotFound(l Layout, back BackLink) templ.Component {
	return full("detail_not_found", l, back)
}

func NotFound(l Layout) templ.Component {
	return full("not_found", l, nil)
}

// ServerError is the global fallback page.
func ServerError(l Layout) templ.Component {
	return full("server_error", l, nil)
}
