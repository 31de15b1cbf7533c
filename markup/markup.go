// Package markup renders record bodies. Bodies that are already HTML are
// sanitized as-is; anything else is treated as Markdown.
package markup

import (
	"bytes"
	"context"
	"html"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.RequireNoFollowOnLinks(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// IsHTML reports whether body looks like an HTML fragment.
func IsHTML(body string) bool {
	return strings.HasPrefix(strings.TrimSpace(body), "<")
}

// Render writes the sanitized HTML for body to w.
func Render(w io.Writer, body string) error {
	if IsHTML(body) {
		_, err := policy.SanitizeReader(strings.NewReader(body)).WriteTo(w)
		return err
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return err
	}
	_, err := w.Write(policy.SanitizeBytes(buf.Bytes()))
	return err
}

// HTML returns the sanitized HTML for body, for use in html/template.
func HTML(body string) template.HTML {
	var buf bytes.Buffer
	if err := Render(&buf, body); err != nil {
		return template.HTML(template.HTMLEscapeString(body))
	}
	return template.HTML(buf.String())
}

// Component wraps Render as a templ component.
func Component(body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Render(w, body)
	})
}

// Excerpt returns the first n runes of body's text content.
func Excerpt(body string, n int) string {
	text := bluemonday.StrictPolicy().Sanitize(string(HTML(body)))
	text = html.UnescapeString(strings.Join(strings.Fields(text), " "))
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
