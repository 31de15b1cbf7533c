package content

import (
	"context"

	"go.uber.org/zap"
)

// State is the lifecycle of a single detail lookup.
type State int

const (
	Loading State = iota
	Found
	NotFound
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

// Source records where a resolved detail came from.
type Source int

const (
	SourceNone Source = iota
	SourceStatic
	SourceRemote
)

func (s Source) String() string {
	switch s {
	case SourceStatic:
		return "static"
	case SourceRemote:
		return "remote"
	}
	return "none"
}

// Result is the outcome of resolving one slug. Detail is the zero value
// unless State is Found.
type Result[D any] struct {
	State  State
	Detail D
	Source Source
}

// Lookup fetches one detail record by slug from an external store. A miss is
// (zero, false, nil).
type Lookup[D any] interface {
	LookupBySlug(ctx context.Context, slug string) (D, bool, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc[D any] func(ctx context.Context, slug string) (D, bool, error)

func (f LookupFunc[D]) LookupBySlug(ctx context.Context, slug string) (D, bool, error) {
	return f(ctx, slug)
}

// StaticSource is the read side of a Catalog.
type StaticSource[D any] interface {
	DetailBySlug(slug string) (D, bool)
}

// Resolver resolves a slug against an optional remote store, falling back to
// the static catalog.
type Resolver[D any] struct {
	family string
	static StaticSource[D]
	remote Lookup[D]
	log    *zap.Logger
}

// NewResolver returns a resolver for one content family ("works",
// "insights"). remote may be nil, in which case only the static source is
// consulted.
func NewResolver[D any](family string, static StaticSource[D], remote Lookup[D], log *zap.Logger) *Resolver[D] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver[D]{family: family, static: static, remote: remote, log: log}
}

// Family is the content family name used in logs.
func (r *Resolver[D]) Family() string { return r.family }

// RemoteConfigured reports whether lookups will consult a remote store.
func (r *Resolver[D]) RemoteConfigured() bool { return r.remote != nil }

// Resolve returns the record for slug. A remote hit is authoritative. A
// remote miss or failure falls back to the static catalog; failures are
// logged and never returned.
func (r *Resolver[D]) Resolve(ctx context.Context, slug string) Result[D] {
	if r.remote != nil {
		d, ok, err := r.remote.LookupBySlug(ctx, slug)
		switch {
		case err != nil:
			r.log.Warn("remote lookup failed",
				zap.String("family", r.family),
				zap.String("slug", slug),
				zap.Error(err))
		case ok:
			return Result[D]{State: Found, Detail: d, Source: SourceRemote}
		default:
			r.log.Debug("remote miss",
				zap.String("family", r.family),
				zap.String("slug", slug))
		}
	}
	if d, ok := r.static.DetailBySlug(slug); ok {
		return Result[D]{State: Found, Detail: d, Source: SourceStatic}
	}
	return Result[D]{State: NotFound}
}

// Get is Resolve with an error return: ErrNotFound when no source has slug.
func (r *Resolver[D]) Get(ctx context.Context, slug string) (D, error) {
	res := r.Resolve(ctx, slug)
	if res.State != Found {
		var zero D
		return zero, ErrNotFound
	}
	return res.Detail, nil
}
