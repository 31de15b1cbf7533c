package remote

import (
	"context"
	"errors"
	"sync"

	"github.com/accessx/showcase/content"
)

// Lazy returns a store that connects on first use. A failed connection is
// reported to that lookup and attempted again on the next one, so a remote
// that is down at startup does not keep the site from serving static
// content.
//
// Each lookup, connect included, is bounded by cfg.Timeout. Concurrent
// lookups share one connection attempt and stop waiting for it when their
// own deadline passes.
func Lazy(cfg Config) Store {
	return &lazyStore{cfg: cfg.withDefaults()}
}

var errClosed = errors.New("remote: store closed")

type lazyStore struct {
	cfg Config

	mu      sync.Mutex
	store   Store
	err     error         // result of the last finished attempt
	dialing chan struct{} // closed when the in-flight attempt ends
	closed  bool
}

func (l *lazyStore) get(ctx context.Context) (Store, error) {
	l.mu.Lock()
	if l.store != nil {
		s := l.store
		l.mu.Unlock()
		return s, nil
	}
	if l.closed {
		l.mu.Unlock()
		return nil, errClosed
	}
	wait := l.dialing
	if wait == nil {
		wait = make(chan struct{})
		l.dialing = wait
		go l.dial(wait)
	}
	l.mu.Unlock()

	select {
	case <-wait:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store != nil {
		return l.store, nil
	}
	return nil, l.err
}

// dial runs one connection attempt detached from any single request, so a
// lookup that gives up early does not abort the attempt for the others.
func (l *lazyStore) dial(done chan struct{}) {
	defer close(done)
	ctx, cancel := context.WithTimeout(context.Background(), l.cfg.Timeout)
	defer cancel()

	s, err := Open(ctx, l.cfg)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.dialing = nil
	if l.closed {
		if s != nil {
			s.Close()
		}
		return
	}
	l.store, l.err = s, err
}

func (l *lazyStore) Work(ctx context.Context, slug string) (content.WorkDetail, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.Timeout)
	defer cancel()
	s, err := l.get(ctx)
	if err != nil {
		return content.WorkDetail{}, false, err
	}
	return s.Work(ctx, slug)
}

func (l *lazyStore) Insight(ctx context.Context, slug string) (content.InsightDetail, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.Timeout)
	defer cancel()
	s, err := l.get(ctx)
	if err != nil {
		return content.InsightDetail{}, false, err
	}
	return s.Insight(ctx, slug)
}

func (l *lazyStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.store == nil {
		return nil
	}
	err := l.store.Close()
	l.store = nil
	return err
}
