package resolve

import (
	"strings"

	"cinesift/internal/resolve/tmdb"
	"cinesift/internal/textutil"
)

// acceptThreshold is the minimum candidate score a strategy must reach
// to win; anything below means the strategy failed and the ladder
// advances.
const acceptThreshold = 50.0

// MatchType labels how a winning candidate matched the query.
type MatchType string

const (
	MatchExact          MatchType = "exact"
	MatchFuzzy          MatchType = "fuzzy"
	MatchYearAdjusted   MatchType = "year_adjusted"
	MatchTitleVariation MatchType = "title_variation"
)

// scoreCandidate rates one provider candidate against the query.
// Title identity dominates, year proximity comes next, and provider
// popularity signals break ties between plausible matches.
func scoreCandidate(candidate tmdb.Result, query string, year int) float64 {
	var score float64

	normalizedQuery := textutil.Normalize(query)
	switch {
	case normalizedQuery != "" &&
		(textutil.Normalize(candidate.Title) == normalizedQuery ||
			textutil.Normalize(candidate.OriginalTitle) == normalizedQuery):
		score += 200
	default:
		score += textutil.Similarity(candidate.Title, query) * 1.5
		if textutil.ContainsWordwise(candidate.Title, query) || textutil.ContainsWordwise(query, candidate.Title) {
			score += 30
		}
	}

	if year > 0 {
		if candidateYear := candidate.Year(); candidateYear > 0 {
			diff := year - candidateYear
			if diff < 0 {
				diff = -diff
			}
			switch {
			case diff == 0:
				score += 100
			case diff <= 1:
				score += 50
			case diff <= 3:
				score += 25
			}
		}
	}

	popularity := candidate.Popularity
	if popularity > 30 {
		popularity = 30
	}
	score += popularity
	score += candidate.VoteAverage * 2

	return score
}

// pickBest returns the highest-scoring candidate, if any clears the
// acceptance threshold. Ties keep the earlier (provider-ranked) entry.
func pickBest(results []tmdb.Result, query string, year int) (tmdb.Result, float64, bool) {
	var best tmdb.Result
	var bestScore float64
	found := false
	for _, candidate := range results {
		score := scoreCandidate(candidate, query, year)
		if !found || score > bestScore {
			best = candidate
			bestScore = score
			found = true
		}
	}
	if !found || bestScore < acceptThreshold {
		return tmdb.Result{}, bestScore, false
	}
	return best, bestScore, true
}

// classifyMatch derives the match type for reporting.
func classifyMatch(candidate tmdb.Result, query string, yearRelaxed, variation bool) MatchType {
	switch {
	case variation:
		return MatchTitleVariation
	case yearRelaxed:
		return MatchYearAdjusted
	case strings.EqualFold(textutil.Normalize(candidate.Title), textutil.Normalize(query)):
		return MatchExact
	default:
		return MatchFuzzy
	}
}
