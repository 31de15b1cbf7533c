package content

import (
	"context"
	"sync"
)

// Page tracks the lookup state of one detail page. Each Navigate starts a new
// lookup generation and cancels the previous one; results from an older
// generation are dropped.
type Page[D any] struct {
	resolver *Resolver[D]

	mu     sync.Mutex
	gen    uint64
	slug   string
	result Result[D]
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPage returns an idle page bound to resolver.
func NewPage[D any](resolver *Resolver[D]) *Page[D] {
	return &Page[D]{resolver: resolver}
}

// Navigate points the page at slug. The state becomes Loading immediately
// and the lookup runs in the background until it completes or ctx ends.
func (p *Page[D]) Navigate(ctx context.Context, slug string) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.gen++
	gen := p.gen
	lctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.slug = slug
	p.result = Result[D]{State: Loading}
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		res := p.resolver.Resolve(lctx, slug)
		p.mu.Lock()
		defer p.mu.Unlock()
		if gen != p.gen {
			return
		}
		p.result = res
	}()
}

// Slug is the slug of the current navigation.
func (p *Page[D]) Slug() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.slug
}

// Result snapshots the current state.
func (p *Page[D]) Result() Result[D] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Wait blocks until the current navigation settles or ctx ends, then returns
// the current state. If a newer navigation starts while waiting, Wait
// follows it. A page that was never navigated reports Loading.
func (p *Page[D]) Wait(ctx context.Context) Result[D] {
	for {
		p.mu.Lock()
		done, gen := p.done, p.gen
		p.mu.Unlock()
		if done == nil {
			return p.Result()
		}
		select {
		case <-done:
		case <-ctx.Done():
			return p.Result()
		}
		p.mu.Lock()
		if gen == p.gen {
			res := p.result
			p.mu.Unlock()
			return res
		}
		p.mu.Unlock()
	}
}

// Close cancels any in-flight lookup and waits for it to exit. The state of
// a cancelled navigation stays Loading.
func (p *Page[D]) Close() {
	p.mu.Lock()
	p.gen++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	done := p.done
	p.done = nil
	p.mu.Unlock()
	if done != nil {
		<-done
	}
}
