// Package showcase serves the accessX marketing site: static pages, the
// works and insights catalogs with optional remote override, a contact form,
// RSS and sitemap.
//
// Sites can replace any page through the ViewFuncs struct; showcase owns the
// handlers, middleware, content resolution and message storage.
package showcase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/accessx/showcase/content"
	"github.com/accessx/showcase/remote"
)

// App is the central showcase application. It wires together the message
// store, content resolvers, handlers, middleware and views.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Views    ViewFuncs
	Log      *zap.Logger
	Messages *MessageStore

	Works    *content.Resolver[content.WorkDetail]
	Insights *content.Resolver[content.InsightDetail]

	remote       remote.Store
	limiter      *SubmitLimiter
	customRoutes []func(*App)
	staticDir    string
	initialized  bool
}

// New creates an App with the given configuration and views. Nil view
// fields fall back to the bundled views.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:    cfg,
		Echo:      e,
		Views:     views.withDefaults(),
		Log:       zap.NewNop(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}
	if a.Log == nil {
		a.Log = zap.NewNop()
	}

	return a
}

// Init opens the message store and the remote store (if any), then
// registers middleware and routes. Start calls it; tests call it directly
// and drive a.Echo with httptest.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("showcase: SessionSecret is required")
	}

	messages, err := NewMessageStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("showcase: init message store: %w", err)
	}
	a.Messages = messages

	if a.remote == nil && a.Config.Remote.Configured() {
		a.remote = remote.Lazy(a.Config.Remote)
	}

	var (
		works    content.Lookup[content.WorkDetail]
		insights content.Lookup[content.InsightDetail]
	)
	if a.remote != nil {
		works = remote.Works(a.remote)
		insights = remote.Insights(a.remote)
		driver := a.Config.Remote.Driver
		if driver == "" {
			driver = remote.InferDriver(a.Config.Remote.DSN)
		}
		a.Log.Info("remote store enabled", zap.String("driver", driver))
	} else {
		a.Log.Info("remote store not configured, serving bundled content")
	}
	a.Works = content.NewResolver[content.WorkDetail]("works", content.Works(), works, a.Log)
	a.Insights = content.NewResolver[content.InsightDetail]("insights", content.Insights(), insights, a.Log)

	a.limiter = NewSubmitLimiter(5, 10*time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.initialized = true
	return nil
}

// Start initializes the app and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Log.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx
// ends.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded stylesheet first; the user's static dir serves the rest of /public.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", a.handleHealth)
	e.GET("/blog", handleBlogRedirect)

	e.GET("/", a.handleHome)
	e.GET("/services/", a.handleServices)
	e.GET("/about/", a.handleAbout)
	e.GET("/works/", a.handleWorks)
	e.GET("/works/:slug/", a.handleWork)
	e.GET("/insights/", a.handleInsights)
	e.GET("/insights/:slug/", a.handleInsight)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)
}

// Close releases the stores and background workers.
func (a *App) Close() error {
	var errs []error
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.Messages != nil {
		errs = append(errs, a.Messages.Close())
	}
	if a.remote != nil {
		errs = append(errs, a.remote.Close())
	}
	return errors.Join(errs...)
}
