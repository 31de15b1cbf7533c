package content

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// gatedRemote blocks each lookup until its slug's gate is released or the
// lookup context ends.
type gatedRemote struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
	data  map[string]WorkDetail
}

func newGatedRemote(data map[string]WorkDetail) *gatedRemote {
	g := &gatedRemote{gates: make(map[string]chan struct{}), data: data}
	for slug := range data {
		g.gates[slug] = make(chan struct{})
	}
	return g
}

func (g *gatedRemote) release(slug string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	close(g.gates[slug])
}

func (g *gatedRemote) LookupBySlug(ctx context.Context, slug string) (WorkDetail, bool, error) {
	g.mu.Lock()
	gate, ok := g.gates[slug]
	g.mu.Unlock()
	if !ok {
		return WorkDetail{}, false, nil
	}
	select {
	case <-gate:
		d := g.data[slug]
		return d, true, nil
	case <-ctx.Done():
		return WorkDetail{}, false, ctx.Err()
	}
}

func TestPageInitialState(t *testing.T) {
	p := NewPage(NewResolver[WorkDetail]("works", Works(), nil, nil))
	if got := p.Result().State; got != Loading {
		t.Fatalf("State = %v, want loading", got)
	}
	if got := p.Wait(context.Background()).State; got != Loading {
		t.Fatalf("Wait on idle page = %v, want loading", got)
	}
}

func TestPageNavigateStatic(t *testing.T) {
	p := NewPage(NewResolver[WorkDetail]("works", Works(), nil, nil))
	defer p.Close()

	p.Navigate(context.Background(), "ecommerce-accessibility")
	res := p.Wait(context.Background())
	if res.State != Found {
		t.Fatalf("State = %v, want found", res.State)
	}
	if res.Detail.Title != "E-Commerce Platform Accessibility Overhaul" {
		t.Errorf("Title = %q", res.Detail.Title)
	}

	p.Navigate(context.Background(), "does-not-exist")
	if res := p.Wait(context.Background()); res.State != NotFound {
		t.Fatalf("State = %v, want not_found", res.State)
	}
}

func TestPageDiscardsStaleResult(t *testing.T) {
	remote := newGatedRemote(map[string]WorkDetail{
		"first":  {Slug: "first", Title: "First"},
		"second": {Slug: "second", Title: "Second"},
	})
	p := NewPage(NewResolver[WorkDetail]("works", Works(), remote, nil))
	defer p.Close()

	p.Navigate(context.Background(), "first")
	p.Navigate(context.Background(), "second")
	if got := p.Result().State; got != Loading {
		t.Fatalf("State after navigate = %v, want loading", got)
	}

	remote.release("first")
	remote.release("second")
	res := p.Wait(context.Background())
	if res.State != Found || res.Detail.Slug != "second" {
		t.Fatalf("got %v %q, want found second", res.State, res.Detail.Slug)
	}
	if p.Slug() != "second" {
		t.Errorf("Slug = %q", p.Slug())
	}
}

func TestPageWaitTimesOutWhileLoading(t *testing.T) {
	remote := newGatedRemote(map[string]WorkDetail{"slow": {Slug: "slow"}})
	p := NewPage(NewResolver[WorkDetail]("works", Works(), remote, nil))
	defer p.Close()

	p.Navigate(context.Background(), "slow")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if got := p.Wait(ctx).State; got != Loading {
		t.Fatalf("State = %v, want loading", got)
	}
}

func TestPageCloseCancelsLookup(t *testing.T) {
	remote := newGatedRemote(map[string]WorkDetail{"slow": {Slug: "slow"}})
	p := NewPage(NewResolver[WorkDetail]("works", Works(), remote, nil))

	p.Navigate(context.Background(), "slow")
	p.Close()
	if got := p.Result().State; got != Loading {
		t.Fatalf("State after close = %v, want loading", got)
	}
	if got := p.Wait(context.Background()).State; got != Loading {
		t.Fatalf("Wait after close = %v, want loading", got)
	}
}

func TestPageCancelledRemoteFallsBackToStatic(t *testing.T) {
	remote := newGatedRemote(map[string]WorkDetail{"healthcare-ux-research": {Slug: "healthcare-ux-research", Title: "Remote"}})
	p := NewPage(NewResolver[WorkDetail]("works", Works(), remote, nil))
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	p.Navigate(ctx, "healthcare-ux-research")
	cancel()
	res := p.Wait(context.Background())
	if res.State != Found || res.Source != SourceStatic {
		t.Fatalf("got %v/%v, want found/static", res.State, res.Source)
	}
	if res.Detail.Title != "Healthcare App UX Research" {
		t.Errorf("Title = %q", res.Detail.Title)
	}
}
