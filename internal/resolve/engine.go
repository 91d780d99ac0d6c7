package resolve

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"cinesift/internal/language"
	"cinesift/internal/logging"
	"cinesift/internal/parser"
	"cinesift/internal/resolve/tmdb"
	"cinesift/internal/resolvecache"
	"cinesift/internal/scripts"
	"cinesift/internal/services"
)

// Options configures an Engine.
type Options struct {
	Strategy parser.Strategy
	// PreferLocalOriginal keeps the filename's native-script title
	// when the provider claims a non-CJK original language.
	PreferLocalOriginal bool
	TTL                 time.Duration
}

// Engine runs the multi-strategy provider lookup and merges the
// winning candidate into parsed metadata. Safe for concurrent use.
type Engine struct {
	searcher tmdb.Searcher
	cache    resolvecache.Store
	opts     Options
	logger   *slog.Logger
	// flight coalesces concurrent lookups for the same key so only
	// one reaches the provider.
	flight singleflight.Group
}

// outcome is what gets cached: the winning candidate (if any) and the
// strategy that found it. Misses are cached too, so a dead query does
// not hammer the provider.
type outcome struct {
	Matched   bool        `json:"matched"`
	Candidate tmdb.Result `json:"candidate,omitempty"`
	Score     float64     `json:"score,omitempty"`
	Method    string      `json:"method"`
	MatchType MatchType   `json:"match_type,omitempty"`
}

// NewEngine builds an engine. cache may be nil to disable caching.
func NewEngine(searcher tmdb.Searcher, cache resolvecache.Store, opts Options, logger *slog.Logger) *Engine {
	if opts.TTL <= 0 {
		opts.TTL = resolvecache.DefaultTTL
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		searcher: searcher,
		cache:    cache,
		opts:     opts,
		logger:   logging.NewComponentLogger(logger, "resolve"),
	}
}

// Resolve reconciles meta against the provider. The returned value is
// a new ParsedMetadata; meta itself is never modified. A lookup that
// exhausts every strategy returns the local parse tagged "no_match",
// not an error. Provider and cache failures degrade the same way.
func (e *Engine) Resolve(ctx context.Context, meta parser.ParsedMetadata) (parser.ParsedMetadata, error) {
	query := searchQuery(meta)
	if query == "" {
		return meta, services.Wrap(services.ErrInput, "resolve", "resolve", "no searchable title", nil)
	}
	key := resolvecache.Key(query, meta.Year)

	if cached, ok := e.cacheGet(ctx, key); ok {
		merged := e.merge(meta, cached)
		merged.ParsingMethod = "cache"
		return merged, nil
	}

	result, err, _ := e.flight.Do(key, func() (any, error) {
		out, definitive := e.runStrategies(ctx, query, meta.Year)
		// An outage is not a verdict: a no-match reached through
		// provider errors must stay retryable, so only definitive
		// outcomes are cached.
		if out.Matched || definitive {
			e.cachePut(ctx, key, out)
		}
		return out, nil
	})
	if err != nil {
		// Strategies never return errors; keep the local parse if
		// that ever changes.
		return meta, nil
	}
	return e.merge(meta, result.(outcome)), nil
}

// ClearCache drops every cached resolution.
func (e *Engine) ClearCache(ctx context.Context) error {
	if e.cache == nil {
		return nil
	}
	return e.cache.Clear(ctx)
}

// runStrategies walks the strategy ladder, terminal on first success.
// The second return is false when any strategy died on a provider
// error, meaning the no-match verdict is circumstantial.
func (e *Engine) runStrategies(ctx context.Context, query string, year int) (outcome, bool) {
	definitive := true
	try := func(query string, year int, method string, yearRelaxed, variation bool) (outcome, bool) {
		out, ok, failed := e.attempt(ctx, query, year, method, yearRelaxed, variation)
		if failed {
			definitive = false
		}
		return out, ok
	}

	if out, ok := try(query, year, "exact", false, false); ok {
		return out, true
	}
	if year > 0 {
		if out, ok := try(query, 0, "no_year", true, false); ok {
			return out, true
		}
	}
	cleaned := parser.StripLeadingArticle(parser.StripEditionSuffix(query))
	if !strings.EqualFold(cleaned, query) && cleaned != "" {
		if out, ok := try(cleaned, year, "cleaned_title", false, false); ok {
			return out, true
		}
	}
	for _, v := range titleVariations(query) {
		if out, ok := try(v.title, year, "variation:"+v.label, false, true); ok {
			return out, true
		}
	}
	return outcome{Method: "no_match"}, definitive
}

// attempt runs one provider query and keeps the best candidate if it
// clears the threshold. Provider errors fail the attempt only; failed
// reports them so the caller can tell an outage from a clean miss.
func (e *Engine) attempt(ctx context.Context, query string, year int, method string, yearRelaxed, variation bool) (out outcome, ok, failed bool) {
	resp, err := e.searcher.SearchMovie(ctx, query, year)
	if err != nil {
		e.logger.Warn("provider search failed",
			logging.String("method", method),
			logging.String("query", query),
			logging.Error(err))
		return outcome{}, false, true
	}
	best, score, ok := pickBest(resp.Results, query, year)
	if !ok {
		return outcome{}, false, false
	}
	e.logger.Debug("strategy matched",
		logging.String("method", method),
		logging.String("query", query),
		logging.String("title", best.Title),
		logging.Float64("score", score))
	return outcome{
		Matched:   true,
		Candidate: best,
		Score:     score,
		Method:    method,
		MatchType: classifyMatch(best, query, yearRelaxed, variation),
	}, true, false
}

// merge folds a resolution outcome into the local parse. Local
// technical fields always survive; the provider contributes identity
// (title, year, id) under language-aware rules.
func (e *Engine) merge(meta parser.ParsedMetadata, out outcome) parser.ParsedMetadata {
	merged := meta
	merged.ParsingMethod = out.Method
	if !out.Matched {
		return merged
	}

	candidate := out.Candidate
	merged.TMDBID = candidate.ID
	if year := candidate.Year(); year > 0 {
		merged.Year = year
	}

	original, latin := e.titlePair(meta, candidate)
	merged.OriginalTitle = original
	switch {
	case original == "" || strings.EqualFold(original, latin):
		merged.Title = latin
		merged.OriginalTitle = ""
	case latin == "":
		merged.Title = original
	default:
		merged.Title = parser.FormatBilingual(original, latin, e.opts.Strategy, false)
	}

	if merged.Language == "" {
		merged.Language = language.ToISO2(candidate.OriginalLanguage)
	}
	merged.Confidence = parser.Score(parser.ResolutionProfile, meta.TokenCount, parser.Components{Year: merged.Year}, merged.Title)
	return merged
}

// titlePair decides which strings play the native and Latin roles.
func (e *Engine) titlePair(meta parser.ParsedMetadata, candidate tmdb.Result) (original, latin string) {
	latin = candidate.Title
	if latin == "" {
		latin = parser.LatinPortion(meta.Title)
	}

	if language.IsCJK(candidate.OriginalLanguage) {
		// The provider knows the native title for CJK works.
		if candidate.OriginalTitle != "" {
			return candidate.OriginalTitle, latin
		}
		return meta.OriginalTitle, latin
	}

	// Non-CJK (or silent) provider claim: the filename's own script
	// decides, unless configured to trust the provider.
	if e.opts.PreferLocalOriginal && meta.OriginalTitle != "" {
		return meta.OriginalTitle, latin
	}
	if hasNonLatin(candidate.OriginalTitle) {
		return candidate.OriginalTitle, latin
	}
	return "", latin
}

func hasNonLatin(text string) bool {
	return text != "" && scripts.Classify(text).HasNonLatin()
}

// searchQuery picks the provider query: the Latin side of a bilingual
// parse, otherwise the full title.
func searchQuery(meta parser.ParsedMetadata) string {
	if latin := parser.LatinPortion(meta.Title); latin != "" {
		return latin
	}
	return strings.TrimSpace(meta.Title)
}

func (e *Engine) cacheGet(ctx context.Context, key string) (outcome, bool) {
	if e.cache == nil {
		return outcome{}, false
	}
	payload, ok, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("cache read failed, treating as miss", logging.Error(err))
		return outcome{}, false
	}
	if !ok {
		return outcome{}, false
	}
	var out outcome
	if err := json.Unmarshal(payload, &out); err != nil {
		e.logger.Warn("cache entry corrupt, treating as miss", logging.Error(err))
		return outcome{}, false
	}
	return out, true
}

func (e *Engine) cachePut(ctx context.Context, key string, out outcome) {
	if e.cache == nil {
		return
	}
	payload, err := json.Marshal(out)
	if err != nil {
		e.logger.Warn("cache entry serialization failed", logging.Error(err))
		return
	}
	if err := e.cache.Put(ctx, key, payload, e.opts.TTL); err != nil {
		e.logger.Warn("cache write failed", logging.Error(err))
	}
}
