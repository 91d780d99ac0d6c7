package parser

import (
	"strings"
	"unicode/utf8"
)

// ScoreProfile names one of the two confidence models. The constants
// differ between the local parse and the resolution layer and must not
// drift together; downstream thresholds depend on the exact values.
type ScoreProfile uint8

const (
	// LocalProfile scores a purely local parse.
	LocalProfile ScoreProfile = iota
	// ResolutionProfile scores a parse headed into external resolution.
	ResolutionProfile
)

// Score computes a confidence value in [0,1] for an assembled parse.
func Score(profile ScoreProfile, tokenCount int, components Components, title string) float64 {
	words := len(strings.Fields(title))

	var score float64
	switch profile {
	case ResolutionProfile:
		score = 0.5
		if utf8.RuneCountInString(title) > 5 {
			score += 0.2
		}
		if components.Year != 0 {
			score += 0.2
		}
		if tokenCount >= 3 && tokenCount <= 15 {
			score += 0.1
		}
	default:
		score = 0.2
		if components.Year != 0 {
			score += 0.3
		}
		if components.Quality != "" {
			score += 0.2
		}
		if components.Source != "" {
			score += 0.2
		}
		if words >= 2 && words <= 10 {
			score += 0.1
		}
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
