package parser

import (
	"sort"
	"strings"
)

// Token is one normalized fragment of a filename. Offset is the byte
// position within the extension-stripped filename where the fragment
// began. HyphenLed records that the fragment was introduced by a "-",
// which the release-group heuristic needs after splitting discards the
// separator itself. Tokens are immutable once produced.
type Token struct {
	Value     string
	Offset    int
	Bracketed bool
	HyphenLed bool
}

// Tokenizer splits filenames into tokens. It is safe for concurrent
// use; construct one per vocabulary.
type Tokenizer struct {
	// protected markers, longest first, so "DDP5.1" claims its text
	// before "5.1" can.
	protected []string
}

// NewTokenizer builds a tokenizer that shields the given multi-part
// markers (channel layouts like "7.1", codec names like "H.264") from
// being split at their internal separators.
func NewTokenizer(protectedMarkers []string) *Tokenizer {
	markers := make([]string, 0, len(protectedMarkers))
	for _, m := range protectedMarkers {
		if m = strings.TrimSpace(m); m != "" {
			markers = append(markers, m)
		}
	}
	sort.Slice(markers, func(i, j int) bool { return len(markers[i]) > len(markers[j]) })
	return &Tokenizer{protected: markers}
}

// Tokenize splits a filename into ordered tokens. The final extension
// is stripped first; bracketed runs come out as single tokens ahead of
// the remaining fragments; protected markers survive intact. An empty
// or separator-only filename yields an empty slice.
func (t *Tokenizer) Tokenize(filename string) []Token {
	base := stripExtension(strings.TrimSpace(filename))
	if base == "" {
		return nil
	}

	covered := make([]bool, len(base))
	var bracketed, plain []Token

	// Bracketed runs first: each one is a single token.
	for i := 0; i < len(base); i++ {
		if base[i] != '[' {
			continue
		}
		j := strings.IndexByte(base[i+1:], ']')
		if j < 0 {
			break
		}
		j += i + 1
		inner := strings.TrimSpace(base[i+1 : j])
		if inner != "" {
			bracketed = append(bracketed, Token{Value: inner, Offset: i + 1, Bracketed: true})
		}
		for k := i; k <= j; k++ {
			covered[k] = true
		}
		i = j
	}

	// Protected markers next, so separators inside them survive.
	lower := strings.ToLower(base)
	for _, marker := range t.protected {
		needle := strings.ToLower(marker)
		for from := 0; ; {
			idx := strings.Index(lower[from:], needle)
			if idx < 0 {
				break
			}
			idx += from
			from = idx + 1
			end := idx + len(needle)
			if !regionFree(covered, idx, end) || !delimited(base, idx, end) {
				continue
			}
			plain = append(plain, Token{Value: base[idx:end], Offset: idx, HyphenLed: hyphenLed(base, idx)})
			for k := idx; k < end; k++ {
				covered[k] = true
			}
			from = end
		}
	}

	// Everything else splits on the separator set.
	start := -1
	flush := func(end int) {
		if start >= 0 {
			plain = append(plain, Token{Value: base[start:end], Offset: start, HyphenLed: hyphenLed(base, start)})
			start = -1
		}
	}
	for i := 0; i < len(base); i++ {
		if covered[i] || isSeparator(base[i]) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(base))

	sort.SliceStable(plain, func(i, j int) bool { return plain[i].Offset < plain[j].Offset })
	return append(bracketed, plain...)
}

func hyphenLed(base string, start int) bool {
	return start > 0 && base[start-1] == '-'
}

func isSeparator(b byte) bool {
	switch b {
	case '.', '_', '-', ' ', '[', ']', '(', ')':
		return true
	}
	return false
}

// delimited reports whether base[start:end] sits on separator (or
// string) boundaries, so markers never match inside larger words.
func delimited(base string, start, end int) bool {
	if start > 0 && !isSeparator(base[start-1]) {
		return false
	}
	if end < len(base) && !isSeparator(base[end]) {
		return false
	}
	return true
}

func regionFree(covered []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if covered[i] {
			return false
		}
	}
	return true
}

// stripExtension removes a trailing container extension. Only short,
// letter-bearing suffixes count: ".mkv" goes, ".1999" stays.
func stripExtension(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name
	}
	ext := name[dot+1:]
	if len(ext) < 2 || len(ext) > 4 {
		return name
	}
	hasLetter := false
	for i := 0; i < len(ext); i++ {
		c := ext[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
		default:
			return name
		}
	}
	if !hasLetter {
		return name
	}
	return name[:dot]
}
