package remote

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/accessx/showcase/content"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "remote.db")
	s, err := Open(context.Background(), Config{DSN: dsn})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInferDriver(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://user:pw@localhost:5432/site", "postgres"},
		{"postgresql://localhost/site", "postgres"},
		{"host=localhost dbname=site sslmode=disable", "postgres"},
		{"user:pw@tcp(127.0.0.1:3306)/site", "mysql"},
		{"mysql://user:pw@tcp(db)/site", "mysql"},
		{"data/remote.db", "sqlite"},
		{"file:content.sqlite?cache=shared", "sqlite"},
		{":memory:", "sqlite"},
		{"redis://localhost", ""},
	}
	for _, tt := range tests {
		if got := InferDriver(tt.dsn); got != tt.want {
			t.Errorf("InferDriver(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}

func TestDriversRegistered(t *testing.T) {
	got := Drivers()
	for _, want := range []string{"mysql", "postgres", "sqlite"} {
		found := false
		for _, d := range got {
			if d == want {
				found = true
			}
		}
		if !found {
			t.Errorf("driver %q not registered (have %v)", want, got)
		}
	}
}

func TestOpenNotConfigured(t *testing.T) {
	if _, err := Open(context.Background(), Config{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if (Config{DSN: "  "}).Configured() {
		t.Error("blank DSN should not count as configured")
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle", DSN: "x"})
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := s.Work(ctx, "ecommerce-accessibility"); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	w := content.WorkDetail{
		ID:            "7",
		Title:         "Remote Case Study",
		Category:      "UX Research",
		Description:   "From the database",
		CaseStudyBody: "<p>body</p>",
		Tags:          []string{"Remote", "Test"},
		Slug:          "remote-case",
	}
	if err := s.(Writer).PutWork(ctx, w); err != nil {
		t.Fatalf("PutWork: %v", err)
	}
	got, ok, err := s.Work(ctx, "remote-case")
	if err != nil || !ok {
		t.Fatalf("Work: ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(w, got); diff != "" {
		t.Errorf("work mismatch (-want +got):\n%s", diff)
	}

	w.Title = "Updated"
	w.Tags = nil
	if err := s.(Writer).PutWork(ctx, w); err != nil {
		t.Fatalf("PutWork update: %v", err)
	}
	got, _, _ = s.Work(ctx, "remote-case")
	if diff := cmp.Diff(w, got); diff != "" {
		t.Errorf("updated work mismatch (-want +got):\n%s", diff)
	}

	in := content.InsightDetail{
		ID:            "9",
		Title:         "Remote Article",
		Description:   "desc",
		Body:          "Plain **markdown**",
		AuthorName:    "Ops",
		PublishedDate: "2025-02-01",
		Slug:          "remote-article",
	}
	if err := s.(Writer).PutInsight(ctx, in); err != nil {
		t.Fatalf("PutInsight: %v", err)
	}
	gotIn, ok, err := s.Insight(ctx, "remote-article")
	if err != nil || !ok {
		t.Fatalf("Insight: ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(in, gotIn); diff != "" {
		t.Errorf("insight mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedCopiesCatalogs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := Seed(ctx, s.(Writer), content.Works(), content.Insights())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if want := content.Works().Len() + content.Insights().Len(); n != want {
		t.Errorf("seeded %d, want %d", n, want)
	}
	for _, want := range content.Insights().Details() {
		got, ok, err := s.Insight(ctx, want.Slug)
		if err != nil || !ok {
			t.Fatalf("Insight(%q): ok=%v err=%v", want.Slug, ok, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", want.Slug, diff)
		}
	}

	// Seeding twice upserts.
	if _, err := Seed(ctx, s.(Writer), content.Works(), content.Insights()); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
}

type recordingWriter struct{ puts int }

func (w *recordingWriter) PutWork(context.Context, content.WorkDetail) error {
	w.puts++
	return nil
}

func (w *recordingWriter) PutInsight(context.Context, content.InsightDetail) error {
	w.puts++
	return nil
}

func TestSeedRejectsMalformedDate(t *testing.T) {
	insights, err := content.NewCatalog[content.InsightDetail, content.InsightSummary]([]content.InsightDetail{
		{ID: "1", Title: "Fine", Slug: "fine", PublishedDate: "2024-05-01"},
		{ID: "2", Title: "Bad", Slug: "bad", PublishedDate: "May 1st"},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	w := &recordingWriter{}
	n, err := Seed(context.Background(), w, content.Works(), insights)
	if err == nil {
		t.Fatal("Seed accepted a malformed published date")
	}
	if n != 0 || w.puts != 0 {
		t.Errorf("Seed wrote %d records (%d puts) before failing", n, w.puts)
	}
}

func TestSeedKeepsEmptyDate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	want := content.InsightDetail{ID: "9", Title: "Undated", AuthorName: "accessX", Slug: "undated"}
	insights, err := content.NewCatalog[content.InsightDetail, content.InsightSummary]([]content.InsightDetail{want})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if _, err := Seed(ctx, s.(Writer), content.Works(), insights); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	got, ok, err := s.Insight(ctx, "undated")
	if err != nil || !ok {
		t.Fatalf("Insight: ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

type slowStore struct{}

func (slowStore) Work(ctx context.Context, _ string) (content.WorkDetail, bool, error) {
	<-ctx.Done()
	return content.WorkDetail{}, false, ctx.Err()
}

func (slowStore) Insight(ctx context.Context, _ string) (content.InsightDetail, bool, error) {
	<-ctx.Done()
	return content.InsightDetail{}, false, ctx.Err()
}

func (slowStore) Close() error { return nil }

func TestLookupIsBounded(t *testing.T) {
	Register("slow", func(context.Context, Config) (Store, error) { return slowStore{}, nil })
	s, err := Open(context.Background(), Config{Driver: "slow", DSN: "slow", Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	start := time.Now()
	_, ok, err := s.Work(context.Background(), "anything")
	if ok || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ok=%v err=%v, want deadline exceeded", ok, err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("lookup took %v", elapsed)
	}
	if _, ok := s.(Writer); !ok {
		t.Fatal("bounded store should expose Writer")
	}
	if err := s.(Writer).PutWork(context.Background(), content.WorkDetail{}); err == nil {
		t.Error("writing to a read-only store should fail")
	}
}

func TestLazyStoreRecoversAfterFailure(t *testing.T) {
	attempts := 0
	Register("flaky", func(context.Context, Config) (Store, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("connection refused")
		}
		return slowStore{}, nil
	})
	s := Lazy(Config{Driver: "flaky", DSN: "flaky", Timeout: 10 * time.Millisecond})
	defer s.Close()

	if _, _, err := s.Insight(context.Background(), "a"); err == nil || errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("first lookup err = %v, want connection error", err)
	}
	if _, _, err := s.Insight(context.Background(), "a"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("second lookup err = %v, want deadline exceeded", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestLazyConnectIsBounded(t *testing.T) {
	var opens atomic.Int32
	release := make(chan struct{})
	Register("stalled", func(context.Context, Config) (Store, error) {
		opens.Add(1)
		<-release
		return nil, errors.New("gave up")
	})
	defer close(release)

	s := Lazy(Config{Driver: "stalled", DSN: "stalled", Timeout: 30 * time.Millisecond})
	defer s.Close()

	start := time.Now()
	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = s.Work(context.Background(), "ecommerce-accessibility")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("lookup %d err = %v, want deadline exceeded", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("lookups took %v while the connect hung", elapsed)
	}
	if n := opens.Load(); n != 1 {
		t.Errorf("opens = %d, want a single shared attempt", n)
	}
}

func TestResolverWithSQLiteRemote(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	override := content.InsightDetail{ID: "x", Title: "Remote override", Slug: "wcag-2-2-updates", PublishedDate: "2025-03-01"}
	if err := s.(Writer).PutInsight(ctx, override); err != nil {
		t.Fatalf("PutInsight: %v", err)
	}

	r := content.NewResolver[content.InsightDetail]("insights", content.Insights(), Insights(s), nil)
	if res := r.Resolve(ctx, "wcag-2-2-updates"); res.Source != content.SourceRemote || res.Detail.Title != "Remote override" {
		t.Errorf("got %v %q, want remote override", res.Source, res.Detail.Title)
	}
	if res := r.Resolve(ctx, "screen-reader-testing"); res.Source != content.SourceStatic {
		t.Errorf("Source = %v, want static fallback", res.Source)
	}
	if res := r.Resolve(ctx, "does-not-exist"); res.State != content.NotFound {
		t.Errorf("State = %v, want not_found", res.State)
	}
}
