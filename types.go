package showcase

import (
	"time"

	"github.com/a-h/templ"

	"github.com/accessx/showcase/content"
	"github.com/accessx/showcase/views"
)

// ViewFuncs holds the components the handlers render. Any nil field falls
// back to the default view, so a site can override only what it needs.
type ViewFuncs struct {
	Home           func(l views.Layout) templ.Component
	Services       func(l views.Layout) templ.Component
	About          func(l views.Layout) templ.Component
	Works          func(l views.Layout, works []content.WorkSummary) templ.Component
	Work           func(l views.Layout, w content.WorkDetail) templ.Component
	WorkPartial    func(w content.WorkDetail) templ.Component
	Insights       func(l views.Layout, featured, recent []content.InsightSummary) templ.Component
	Insight        func(l views.Layout, in content.InsightDetail) templ.Component
	InsightPartial func(in content.InsightDetail) templ.Component
	Contact        func(l views.Layout, form views.ContactForm) templ.Component
	Loading        func(l views.Layout, back views.BackLink, refresh time.Duration) templ.Component
	DetailNotFound func(l views.Layout, back views.BackLink) templ.Component
	NotFound       func(l views.Layout) templ.Component
	ServerError    func(l views.Layout) templ.Component
}

// DefaultViews returns the bundled views.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:           views.Home,
		Services:       views.Services,
		About:          views.About,
		Works:          views.Works,
		Work:           views.Work,
		WorkPartial:    views.WorkPartial,
		Insights:       views.Insights,
		Insight:        views.Insight,
		InsightPartial: views.InsightPartial,
		Contact:        views.Contact,
		Loading:        views.Loading,
		DetailNotFound: views.DetailNotFound,
		NotFound:       views.NotFound,
		ServerError:    views.ServerError,
	}
}

func (v ViewFuncs) withDefaults() ViewFuncs {
	d := DefaultViews()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.Services == nil {
		v.Services = d.Services
	}
	if v.About == nil {
		v.About = d.About
	}
	if v.Works == nil {
		v.Works = d.Works
	}
	if v.Work == nil {
		v.Work = d.Work
	}
	if v.WorkPartial == nil {
		v.WorkPartial = d.WorkPartial
	}
	if v.Insights == nil {
		v.Insights = d.Insights
	}
	if v.Insight == nil {
		v.Insight = d.Insight
	}
	if v.InsightPartial == nil {
		v.InsightPartial = d.InsightPartial
	}
	if v.Contact == nil {
		v.Contact = d.Contact
	}
	if v.Loading == nil {
		v.Loading = d.Loading
	}
	if v.DetailNotFound == nil {
		v.DetailNotFound = d.DetailNotFound
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
	return v
}

// Message is a contact form submission.
type Message struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Email     string    `yaml:"email"`
	Body      string    `yaml:"body"`
	CreatedAt time.Time `yaml:"created_at"`
}
