package showcase

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/accessx/showcase/content"
	"github.com/accessx/showcase/views"
)

var (
	worksBack    = views.BackLink{Href: "/works/", Label: "Back to Works", Title: "Case study not found"}
	insightsBack = views.BackLink{Href: "/insights/", Label: "Back to Insights", Title: "Article not found"}
)

// layout builds the shared page chrome for the current request.
func (a *App) layout(c echo.Context, meta views.PageMeta) views.Layout {
	if meta.URL == "" {
		meta.URL = BuildURL(a.Config.URL, c.Request().URL.Path)
	}
	return views.Layout{
		Site:  a.Config.View(),
		Meta:  meta,
		Path:  c.Request().URL.Path,
		Flash: popFlash(c),
		CSRF:  CsrfToken(c),
	}
}

func (a *App) handleHome(c echo.Context) error {
	l := a.layout(c, views.PageMeta{URL: BuildURL(a.Config.URL)})
	l.JSONLD = WebsiteJSONLD(a.Config)
	return Render(c, a.Views.Home(l))
}

func (a *App) handleServices(c echo.Context) error {
	return Render(c, a.Views.Services(a.layout(c, views.PageMeta{
		Title:       "Services",
		Description: content.ServicesIntro.Lede,
	})))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(a.layout(c, views.PageMeta{
		Title:       "About",
		Description: content.AboutIntro.Lede,
	})))
}

func (a *App) handleWorks(c echo.Context) error {
	return Render(c, a.Views.Works(a.layout(c, views.PageMeta{
		Title:       "Works",
		Description: content.WorksIntro.Lede,
	}), content.Works().Summaries()))
}

func (a *App) handleInsights(c echo.Context) error {
	featured, recent := views.SplitInsights(content.Insights().Summaries())
	return Render(c, a.Views.Insights(a.layout(c, views.PageMeta{
		Title:       "Insights",
		Description: content.InsightsIntro.Lede,
	}), featured, recent))
}

func (a *App) handleWork(c echo.Context) error {
	slug := c.Param("slug")
	res := resolveDetail(c.Request().Context(), a.Works, slug, a.Config.ResolveTimeout)
	switch res.State {
	case content.Found:
		w := res.Detail
		if isPartial(c, "detail") {
			return Render(c, a.Views.WorkPartial(w))
		}
		l := a.layout(c, views.PageMeta{Title: w.Title, Description: w.Description, OGType: "article"})
		l.JSONLD = CreativeWorkJSONLD(a.Config, w)
		return Render(c, a.Views.Work(l, w))
	case content.NotFound:
		return RenderStatus(c, http.StatusNotFound, a.Views.DetailNotFound(a.layout(c, views.PageMeta{Title: worksBack.Title}), worksBack))
	}
	return a.renderLoading(c, worksBack)
}

func (a *App) handleInsight(c echo.Context) error {
	slug := c.Param("slug")
	res := resolveDetail(c.Request().Context(), a.Insights, slug, a.Config.ResolveTimeout)
	switch res.State {
	case content.Found:
		in := res.Detail
		if isPartial(c, "detail") {
			return Render(c, a.Views.InsightPartial(in))
		}
		l := a.layout(c, views.PageMeta{Title: in.Title, Description: in.Description, OGType: "article"})
		l.JSONLD = ArticleJSONLD(a.Config, in)
		return Render(c, a.Views.Insight(l, in))
	case content.NotFound:
		return RenderStatus(c, http.StatusNotFound, a.Views.DetailNotFound(a.layout(c, views.PageMeta{Title: insightsBack.Title}), insightsBack))
	}
	return a.renderLoading(c, insightsBack)
}

func (a *App) renderLoading(c echo.Context, back views.BackLink) error {
	c.Response().Header().Set("Cache-Control", "no-store")
	return Render(c, a.Views.Loading(a.layout(c, views.PageMeta{Title: "Loading"}), back, a.Config.ResolveTimeout))
}

// resolveDetail drives a page lookup for slug and waits at most timeout for
// it to settle. A lookup still running at the deadline is cancelled and
// reported as Loading.
func resolveDetail[D any](ctx context.Context, r *content.Resolver[D], slug string, timeout time.Duration) content.Result[D] {
	p := content.NewPage(r)
	defer p.Close()
	p.Navigate(ctx, slug)

	wctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Wait(wctx)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, content.Works().Summaries(), content.Insights().Summaries())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, content.Insights().Summaries())
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/insights/")
}

func (a *App) handleRobots(c echo.Context) error {
	if a.staticDir != "" {
		if err := c.File(filepath.Join(a.staticDir, "robots.txt")); err == nil {
			return nil
		}
	}
	body := "User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimRight(a.Config.URL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"remote": a.Works.RemoteConfigured(),
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.layout(c, views.PageMeta{Title: "Page not found"})))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error("server error",
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
		_ = RenderStatus(c, code, a.Views.ServerError(a.layout(c, views.PageMeta{Title: "Something went wrong"})))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
