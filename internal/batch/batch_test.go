package batch

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cinesift/internal/logging"
	"cinesift/internal/parser"
	"cinesift/internal/resolve"
	"cinesift/internal/resolve/tmdb"
	"cinesift/internal/resolvecache"
	"cinesift/internal/vocab"
)

type countingSearcher struct {
	mu       sync.Mutex
	inflight int32
	peak     int32
	results  map[string][]tmdb.Result
}

func (c *countingSearcher) SearchMovie(_ context.Context, query string, _ int) (*tmdb.Response, error) {
	current := atomic.AddInt32(&c.inflight, 1)
	defer atomic.AddInt32(&c.inflight, -1)
	for {
		peak := atomic.LoadInt32(&c.peak)
		if current <= peak || atomic.CompareAndSwapInt32(&c.peak, peak, current) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	c.mu.Lock()
	defer c.mu.Unlock()
	return &tmdb.Response{Results: c.results[query]}, nil
}

func (c *countingSearcher) GetMovie(context.Context, int64) (*tmdb.Result, error) {
	return &tmdb.Result{}, nil
}

func newTestRunner(t *testing.T, searcher tmdb.Searcher, concurrency int) *Runner {
	t.Helper()
	compiled, err := vocab.Compile(vocab.Default())
	if err != nil {
		t.Fatal(err)
	}
	p := parser.New(compiled, parser.Strategy{PreferOriginal: true, IncludeSubtitle: true}, nil, logging.NewNop())

	var engine *resolve.Engine
	if searcher != nil {
		engine = resolve.NewEngine(searcher, resolvecache.NewMemory(), resolve.Options{
			Strategy:            parser.Strategy{PreferOriginal: true, IncludeSubtitle: true},
			PreferLocalOriginal: true,
			TTL:                 time.Hour,
		}, logging.NewNop())
	}
	return NewRunner(p, engine, concurrency, logging.NewNop())
}

func TestRunLocalOnly(t *testing.T) {
	runner := newTestRunner(t, nil, 4)

	filenames := []string{
		"The.Matrix.1999.1080p.BluRay.x264.mkv",
		"",
		"钢铁侠.Iron.Man.2008.BluRay.2160p.x265.mkv",
	}
	report, err := runner.Run(context.Background(), filenames)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.RunID == "" {
		t.Error("missing run id")
	}
	if report.Parsed != 2 || report.Failed != 1 || report.Resolved != 0 {
		t.Errorf("report = %+v", report)
	}
	// Input order is preserved.
	if report.Results[0].Metadata.Title != "The Matrix" {
		t.Errorf("result[0] = %+v", report.Results[0])
	}
	if report.Results[1].Err == nil {
		t.Error("empty filename should fail")
	}
	if report.Results[2].Metadata.Year != 2008 {
		t.Errorf("result[2] = %+v", report.Results[2])
	}
}

func TestRunWithResolution(t *testing.T) {
	searcher := &countingSearcher{results: map[string][]tmdb.Result{
		"The Matrix": {{ID: 603, Title: "The Matrix", OriginalLanguage: "en",
			ReleaseDate: "1999-03-30", Popularity: 85, VoteAverage: 8.2}},
	}}
	runner := newTestRunner(t, searcher, 2)

	report, err := runner.Run(context.Background(), []string{
		"The.Matrix.1999.1080p.BluRay.x264.mkv",
		"Totally.Unknown.2011.1080p.WEBRip.mkv",
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Resolved != 1 || report.Parsed != 2 {
		t.Errorf("report = %+v", report)
	}
	if report.Results[0].Metadata.TMDBID != 603 {
		t.Errorf("result[0] = %+v", report.Results[0].Metadata)
	}
	if report.Results[1].Metadata.ParsingMethod != "no_match" {
		t.Errorf("result[1] method = %q", report.Results[1].Metadata.ParsingMethod)
	}
}

func TestRunHonorsConcurrencyLimit(t *testing.T) {
	searcher := &countingSearcher{results: map[string][]tmdb.Result{}}
	runner := newTestRunner(t, searcher, 2)

	filenames := make([]string, 8)
	names := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta"}
	for i, name := range names {
		filenames[i] = name + ".Movie.2020.1080p.BluRay.mkv"
	}
	if _, err := runner.Run(context.Background(), filenames); err != nil {
		t.Fatal(err)
	}
	if peak := atomic.LoadInt32(&searcher.peak); peak > 2 {
		t.Errorf("peak concurrent provider calls = %d, want <= 2", peak)
	}
}

func TestRunCancelled(t *testing.T) {
	runner := newTestRunner(t, nil, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Run(ctx, []string{"The.Matrix.1999.mkv"}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestRunEmptyInput(t *testing.T) {
	runner := newTestRunner(t, nil, 4)
	report, err := runner.Run(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Results) != 0 || report.Parsed != 0 {
		t.Errorf("report = %+v", report)
	}
}
