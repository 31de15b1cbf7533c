// Package remote implements the optional external record store that can
// override the bundled content catalogs. Stores are opened through a driver
// registry keyed by name ("postgres", "sqlite", "mysql").
package remote

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/accessx/showcase/content"
)

// DefaultTimeout bounds a single lookup when Config.Timeout is zero.
const DefaultTimeout = 3 * time.Second

// ErrNotConfigured is returned by Open when the config has no DSN.
var ErrNotConfigured = errors.New("remote: not configured")

// Store reads content records by slug. A missing record is reported as
// (zero, false, nil).
type Store interface {
	Work(ctx context.Context, slug string) (content.WorkDetail, bool, error)
	Insight(ctx context.Context, slug string) (content.InsightDetail, bool, error)
	Close() error
}

// Writer is implemented by stores that accept operator writes.
type Writer interface {
	PutWork(ctx context.Context, w content.WorkDetail) error
	PutInsight(ctx context.Context, in content.InsightDetail) error
}

// Config selects and bounds the remote store.
type Config struct {
	Driver  string        `mapstructure:"driver" yaml:"driver"`
	DSN     string        `mapstructure:"dsn" yaml:"dsn"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Configured reports whether a remote store should be used at all.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.DSN) != ""
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Driver == "" {
		c.Driver = InferDriver(c.DSN)
	}
	return c
}

// InferDriver guesses the driver name from a DSN. It returns "" when the DSN
// matches no known form.
func InferDriver(dsn string) string {
	d := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(d, "postgres://"), strings.HasPrefix(d, "postgresql://"):
		return "postgres"
	case strings.HasPrefix(d, "mysql://"), strings.Contains(d, "@tcp("), strings.Contains(d, "@unix("):
		return "mysql"
	case strings.HasPrefix(d, "file:"), d == ":memory:",
		strings.HasSuffix(d, ".db"), strings.HasSuffix(d, ".sqlite"), strings.HasSuffix(d, ".sqlite3"):
		return "sqlite"
	case strings.Contains(d, "host=") && strings.Contains(d, "dbname="):
		return "postgres"
	}
	return ""
}

// Opener connects a store for one driver.
type Opener func(ctx context.Context, cfg Config) (Store, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Opener{}
)

// Register makes a driver available to Open. Registering a name twice
// replaces the previous opener.
func Register(driver string, open Opener) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[driver] = open
}

// Drivers lists the registered driver names, sorted.
func Drivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open connects the configured store. Every lookup on the returned store is
// bounded by cfg.Timeout.
func Open(ctx context.Context, cfg Config) (Store, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	cfg = cfg.withDefaults()

	registryMu.RLock()
	open, ok := registry[cfg.Driver]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("remote: unsupported driver %q (available: %v)", cfg.Driver, Drivers())
	}
	s, err := open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("remote: open %s: %w", cfg.Driver, err)
	}
	return &boundedStore{Store: s, timeout: cfg.Timeout}, nil
}

// boundedStore applies a per-lookup deadline.
type boundedStore struct {
	Store
	timeout time.Duration
}

func (b *boundedStore) Work(ctx context.Context, slug string) (content.WorkDetail, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.Store.Work(ctx, slug)
}

func (b *boundedStore) Insight(ctx context.Context, slug string) (content.InsightDetail, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.Store.Insight(ctx, slug)
}

func (b *boundedStore) PutWork(ctx context.Context, w content.WorkDetail) error {
	wr, ok := b.Store.(Writer)
	if !ok {
		return fmt.Errorf("remote: store is read-only")
	}
	return wr.PutWork(ctx, w)
}

func (b *boundedStore) PutInsight(ctx context.Context, in content.InsightDetail) error {
	wr, ok := b.Store.(Writer)
	if !ok {
		return fmt.Errorf("remote: store is read-only")
	}
	return wr.PutInsight(ctx, in)
}

// Works adapts a store to the content lookup interface for case studies.
func Works(s Store) content.Lookup[content.WorkDetail] {
	return content.LookupFunc[content.WorkDetail](s.Work)
}

// Insights adapts a store to the content lookup interface for articles.
func Insights(s Store) content.Lookup[content.InsightDetail] {
	return content.LookupFunc[content.InsightDetail](s.Insight)
}

// Seed upserts every record of both catalogs into w. Insights with a
// published date that is not YYYY-MM-DD are rejected before any write.
func Seed(ctx context.Context, w Writer, works *content.WorkCatalog, insights *content.InsightCatalog) (int, error) {
	for _, rec := range insights.Details() {
		if err := checkDate(rec.PublishedDate); err != nil {
			return 0, fmt.Errorf("remote: seed insight %s: %w", rec.Slug, err)
		}
	}
	n := 0
	for _, rec := range works.Details() {
		if err := w.PutWork(ctx, rec); err != nil {
			return n, fmt.Errorf("remote: seed work %s: %w", rec.Slug, err)
		}
		n++
	}
	for _, rec := range insights.Details() {
		if err := w.PutInsight(ctx, rec); err != nil {
			return n, fmt.Errorf("remote: seed insight %s: %w", rec.Slug, err)
		}
		n++
	}
	return n, nil
}

// checkDate accepts an empty date or one in YYYY-MM-DD form.
func checkDate(d string) error {
	if d == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, d); err != nil {
		return fmt.Errorf("published date %q is not YYYY-MM-DD", d)
	}
	return nil
}
