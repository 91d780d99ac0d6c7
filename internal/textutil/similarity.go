package textutil

import (
	"github.com/hbollon/go-edlib"
)

// Similarity scores how close two titles are on a 0-100 scale. Both
// sides are normalized first, so case and punctuation differences do
// not count against the match. Identical normalized titles score 100.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 100
	}
	ratio, err := edlib.StringsSimilarity(na, nb, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(ratio) * 100
}
