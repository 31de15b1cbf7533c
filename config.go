package showcase

import (
	"time"

	"go.uber.org/zap"

	"github.com/accessx/showcase/remote"
	"github.com/accessx/showcase/views"
)

// SiteConfig holds all configuration for a showcase site.
type SiteConfig struct {
	Name          string `mapstructure:"name"`           // Site name (default "accessX")
	URL           string `mapstructure:"url"`            // Canonical URL (default "http://localhost:3000")
	Description   string `mapstructure:"description"`    // Site description for RSS and meta tags
	Author        string `mapstructure:"author"`         // Organization name for JSON-LD
	SchedulingURL string `mapstructure:"scheduling_url"` // "Book a call" target
	ContactEmail  string `mapstructure:"contact_email"`

	Addr         string `mapstructure:"addr"`          // Listen address (default ":3000")
	DatabasePath string `mapstructure:"database_path"` // SQLite path for contact messages (default "data/site.db")

	SessionSecret string `mapstructure:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // Set true for HTTPS

	ResolveTimeout time.Duration `mapstructure:"resolve_timeout"` // Bounded wait for a detail lookup (default 5s)

	Remote remote.Config `mapstructure:"remote"`
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "accessX"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Experience-driven. Accessibility-focused."
	}
	if c.Author == "" {
		c.Author = c.Name
	}
	if c.ContactEmail == "" {
		c.ContactEmail = "hello@accessx.eu"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.ResolveTimeout == 0 {
		c.ResolveTimeout = 5 * time.Second
	}
	// A detail page must outwait the remote, or a slow remote would keep it
	// on the loading view instead of falling back to static content.
	if c.Remote.Configured() {
		rt := c.Remote.Timeout
		if rt <= 0 {
			rt = remote.DefaultTimeout
		}
		if c.ResolveTimeout <= rt {
			c.ResolveTimeout = rt + time.Second
		}
	}
}

// View returns the subset of the config the templates see.
func (c SiteConfig) View() views.SiteConfig {
	return views.SiteConfig{
		Name:          c.Name,
		URL:           c.URL,
		Description:   c.Description,
		Author:        c.Author,
		SchedulingURL: c.SchedulingURL,
		ContactEmail:  c.ContactEmail,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *App) {
		a.Log = log
	}
}

// WithRemoteStore uses s as the remote record store instead of opening one
// from Config.Remote.
func WithRemoteStore(s remote.Store) Option {
	return func(a *App) {
		a.remote = s
	}
}
