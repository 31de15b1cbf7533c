package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeRemote is a Lookup backed by a map that counts calls.
type fakeRemote struct {
	records map[string]InsightDetail
	err     error
	calls   int
}

func (f *fakeRemote) LookupBySlug(_ context.Context, slug string) (InsightDetail, bool, error) {
	f.calls++
	if f.err != nil {
		return InsightDetail{}, false, f.err
	}
	d, ok := f.records[slug]
	return d, ok, nil
}

func TestResolveWithoutRemote(t *testing.T) {
	r := NewResolver[InsightDetail]("insights", Insights(), nil, nil)
	if r.RemoteConfigured() {
		t.Fatal("RemoteConfigured should be false")
	}

	res := r.Resolve(context.Background(), "wcag-2-2-updates")
	if res.State != Found || res.Source != SourceStatic {
		t.Fatalf("got %v from %v, want found from static", res.State, res.Source)
	}
	if res.Detail.Title != "WCAG 2.2: What's New and Why It Matters" {
		t.Errorf("Title = %q", res.Detail.Title)
	}

	res = r.Resolve(context.Background(), "does-not-exist")
	if res.State != NotFound {
		t.Fatalf("State = %v, want not_found", res.State)
	}
	if diff := cmp.Diff(InsightDetail{}, res.Detail); diff != "" {
		t.Errorf("not-found detail must be zero (-want +got):\n%s", diff)
	}
}

func TestResolveRemote(t *testing.T) {
	remoteOnly := InsightDetail{ID: "r1", Title: "Remote only", Slug: "remote-only"}
	override := InsightDetail{ID: "r2", Title: "Remote title", Slug: "inclusive-design-thinking"}
	staticRec, _ := Insights().DetailBySlug("color-contrast-advanced")

	tests := []struct {
		name       string
		remote     *fakeRemote
		slug       string
		wantState  State
		wantSource Source
		want       InsightDetail
	}{
		{
			name:       "remote hit wins over static",
			remote:     &fakeRemote{records: map[string]InsightDetail{override.Slug: override}},
			slug:       "inclusive-design-thinking",
			wantState:  Found,
			wantSource: SourceRemote,
			want:       override,
		},
		{
			name:       "remote only record",
			remote:     &fakeRemote{records: map[string]InsightDetail{remoteOnly.Slug: remoteOnly}},
			slug:       "remote-only",
			wantState:  Found,
			wantSource: SourceRemote,
			want:       remoteOnly,
		},
		{
			name:       "remote miss falls back to static",
			remote:     &fakeRemote{records: map[string]InsightDetail{}},
			slug:       "color-contrast-advanced",
			wantState:  Found,
			wantSource: SourceStatic,
			want:       staticRec,
		},
		{
			name:       "remote error falls back to static",
			remote:     &fakeRemote{err: errors.New("connection refused")},
			slug:       "color-contrast-advanced",
			wantState:  Found,
			wantSource: SourceStatic,
			want:       staticRec,
		},
		{
			name:      "missing everywhere",
			remote:    &fakeRemote{records: map[string]InsightDetail{}},
			slug:      "does-not-exist",
			wantState: NotFound,
		},
		{
			name:      "remote error and missing static",
			remote:    &fakeRemote{err: errors.New("timeout")},
			slug:      "does-not-exist",
			wantState: NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver[InsightDetail]("insights", Insights(), tt.remote, zap.NewNop())
			res := r.Resolve(context.Background(), tt.slug)
			if tt.remote.calls != 1 {
				t.Errorf("remote calls = %d, want 1", tt.remote.calls)
			}
			if res.State != tt.wantState || res.Source != tt.wantSource {
				t.Fatalf("got %v/%v, want %v/%v", res.State, res.Source, tt.wantState, tt.wantSource)
			}
			if diff := cmp.Diff(tt.want, res.Detail); diff != "" {
				t.Errorf("detail mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveLogsRemoteFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	remote := &fakeRemote{err: errors.New("boom")}
	r := NewResolver[InsightDetail]("insights", Insights(), remote, zap.New(core))

	r.Resolve(context.Background(), "screen-reader-testing")

	entries := logs.FilterMessage("remote lookup failed").All()
	if len(entries) != 1 {
		t.Fatalf("warn entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["slug"] != "screen-reader-testing" || fields["family"] != "insights" {
		t.Errorf("fields = %v", fields)
	}
}

func TestGetReturnsErrNotFound(t *testing.T) {
	r := NewResolver[WorkDetail]("works", Works(), nil, nil)
	if _, err := r.Get(context.Background(), "does-not-exist"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	w, err := r.Get(context.Background(), "healthcare-ux-research")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if w.Category != "UX Research" {
		t.Errorf("Category = %q", w.Category)
	}
}

func TestLookupFunc(t *testing.T) {
	var seen string
	f := LookupFunc[WorkDetail](func(_ context.Context, slug string) (WorkDetail, bool, error) {
		seen = slug
		return WorkDetail{}, false, nil
	})
	r := NewResolver[WorkDetail]("works", Works(), f, nil)
	res := r.Resolve(context.Background(), "education-platform-audit")
	if seen != "education-platform-audit" {
		t.Errorf("lookup saw %q", seen)
	}
	if res.Source != SourceStatic {
		t.Errorf("Source = %v, want static", res.Source)
	}
}
