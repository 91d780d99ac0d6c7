// Package batch fans a list of filenames across a bounded worker pool.
// Parsing is CPU-only and embarrassingly parallel; the concurrency
// limit exists to keep external resolution within provider rate
// limits. Results come back in input order regardless of completion
// order.
package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cinesift/internal/logging"
	"cinesift/internal/parser"
	"cinesift/internal/resolve"
)

// Result is the outcome for a single filename. Err is set when the
// filename could not be parsed at all; resolution failures degrade to
// a local-only result instead.
type Result struct {
	Filename string                `json:"filename"`
	Metadata parser.ParsedMetadata `json:"metadata"`
	Err      error                 `json:"-"`
}

// Report summarizes one batch run.
type Report struct {
	RunID    string        `json:"run_id"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
	Results  []Result      `json:"results"`
	Parsed   int           `json:"parsed"`
	Resolved int           `json:"resolved"`
	Failed   int           `json:"failed"`
}

// Runner drives parse (and optionally resolve) across many filenames.
type Runner struct {
	parser      *parser.Parser
	engine      *resolve.Engine
	concurrency int
	logger      *slog.Logger
}

// NewRunner builds a runner. engine may be nil for local-only runs;
// concurrency below 1 is clamped to 1.
func NewRunner(p *parser.Parser, engine *resolve.Engine, concurrency int, logger *slog.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		parser:      p,
		engine:      engine,
		concurrency: concurrency,
		logger:      logging.NewComponentLogger(logger, "batch"),
	}
}

// Run processes every filename and reports per-file outcomes. A
// filename that fails to parse is recorded, never fatal; Run itself
// fails only when the context is cancelled.
func (r *Runner) Run(ctx context.Context, filenames []string) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Results: make([]Result, len(filenames)),
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)
	for i, filename := range filenames {
		i, filename := i, filename
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Results[i] = r.processOne(ctx, filename)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, result := range report.Results {
		switch {
		case result.Err != nil:
			report.Failed++
		default:
			report.Parsed++
			if result.Metadata.TMDBID != 0 {
				report.Resolved++
			}
		}
	}
	report.Duration = time.Since(report.Started)

	r.logger.Info("batch complete",
		logging.String("run_id", report.RunID),
		logging.Int("parsed", report.Parsed),
		logging.Int("resolved", report.Resolved),
		logging.Int("failed", report.Failed),
		logging.Duration("duration", report.Duration))
	return report, nil
}

func (r *Runner) processOne(ctx context.Context, filename string) Result {
	meta, err := r.parser.Parse(filename)
	if err != nil {
		return Result{Filename: filename, Err: err}
	}
	if r.engine != nil {
		resolved, err := r.engine.Resolve(ctx, meta)
		if err != nil {
			r.logger.Warn("resolution skipped",
				logging.String("filename", filename),
				logging.Error(err))
		} else {
			meta = resolved
		}
	}
	return Result{Filename: filename, Metadata: meta}
}
