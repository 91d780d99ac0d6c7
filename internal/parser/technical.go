package parser

import (
	"strconv"
	"strings"

	"cinesift/internal/vocab"
)

// Category labels what claimed a token during technical extraction.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryYear
	CategoryQuality
	CategorySource
	CategoryAudio
	CategoryCodec
	CategoryGroup
)

func (c Category) String() string {
	switch c {
	case CategoryYear:
		return "year"
	case CategoryQuality:
		return "quality"
	case CategorySource:
		return "source"
	case CategoryAudio:
		return "audio"
	case CategoryCodec:
		return "codec"
	case CategoryGroup:
		return "group"
	}
	return "none"
}

// Components holds the technical attributes pulled out of a filename.
// Absent attributes are zero values.
type Components struct {
	Year         int
	Quality      string
	Source       string
	Audio        string
	Codec        string
	ReleaseGroup string
}

// Extraction pairs the extracted components with a record of which
// token indexes were claimed, so title assembly can skip them.
type Extraction struct {
	Components Components
	Claims     map[int]Category
}

// Claimed reports whether the token at index was consumed by a
// technical category.
func (e Extraction) Claimed(index int) bool {
	_, ok := e.Claims[index]
	return ok
}

// ExtractTechnical scans tokens for technical attributes. Categories
// are tried in a fixed order (year, quality, source, audio, codec,
// group) and each token can satisfy at most one; within a category the
// leftmost match wins. Hyphenated sources split by the tokenizer are
// recovered by testing adjacent token pairs rejoined with a hyphen.
func ExtractTechnical(tokens []Token, v *vocab.Vocabulary) Extraction {
	ext := Extraction{Claims: make(map[int]Category)}

	for i, tok := range tokens {
		if year, ok := parseYear(tok.Value); ok {
			ext.Components.Year = year
			ext.Claims[i] = CategoryYear
			break
		}
	}

	ext.scan(tokens, CategoryQuality, v.IsQuality, func(value string) { ext.Components.Quality = value })

	// Sources first as single tokens, then as rejoined pairs.
	ext.scan(tokens, CategorySource, v.IsSource, func(value string) { ext.Components.Source = value })
	if ext.Components.Source == "" {
		for i := 0; i+1 < len(tokens); i++ {
			if ext.Claimed(i) || ext.Claimed(i+1) {
				continue
			}
			joined := tokens[i].Value + "-" + tokens[i+1].Value
			if v.IsSource(joined) {
				ext.Components.Source = joined
				ext.Claims[i] = CategorySource
				ext.Claims[i+1] = CategorySource
				break
			}
		}
	}

	ext.scan(tokens, CategoryAudio, v.IsAudio, func(value string) { ext.Components.Audio = value })
	ext.scan(tokens, CategoryCodec, v.IsCodec, func(value string) { ext.Components.Codec = value })
	ext.scan(tokens, CategoryGroup, v.IsGroup, func(value string) { ext.Components.ReleaseGroup = value })

	if ext.Components.ReleaseGroup == "" {
		ext.trailingGroup(tokens)
	}
	return ext
}

func (e *Extraction) scan(tokens []Token, cat Category, matches func(string) bool, assign func(string)) {
	for i, tok := range tokens {
		if e.Claimed(i) {
			continue
		}
		if matches(tok.Value) {
			assign(tok.Value)
			e.Claims[i] = cat
			return
		}
	}
}

// trailingGroup falls back to release-scene convention: the token
// nearest the end of the filename often carries the group after an
// "@" or "-". Bracketed tokens are reordered to the front of the
// slice, so trailing position is judged by origin offset.
func (e *Extraction) trailingGroup(tokens []Token) {
	last := -1
	for i := range tokens {
		if e.Claimed(i) {
			continue
		}
		if last < 0 || tokens[i].Offset > tokens[last].Offset {
			last = i
		}
	}
	if last < 0 {
		return
	}
	value := tokens[last].Value
	if at := strings.LastIndexByte(value, '@'); at >= 0 && at+1 < len(value) {
		e.Components.ReleaseGroup = value[at+1:]
		e.Claims[last] = CategoryGroup
	} else if dash := strings.LastIndexByte(value, '-'); dash >= 0 && dash+1 < len(value) {
		e.Components.ReleaseGroup = value[dash+1:]
		e.Claims[last] = CategoryGroup
	} else if tokens[last].HyphenLed && e.followsClaimed(tokens, last) {
		// The splitter eats the hyphen of "...x264-GROUP"; the bare
		// token still reads as a group when it trails a claimed
		// technical token.
		e.Components.ReleaseGroup = value
		e.Claims[last] = CategoryGroup
	}
}

// followsClaimed reports whether the token directly preceding index in
// the filename (separated by exactly one byte) was claimed.
func (e *Extraction) followsClaimed(tokens []Token, index int) bool {
	for i, tok := range tokens {
		if i == index || !e.Claimed(i) {
			continue
		}
		if tok.Offset+len(tok.Value)+1 == tokens[index].Offset {
			return true
		}
	}
	return false
}

// parseYear accepts exactly four digits inside the plausible release
// window.
func parseYear(token string) (int, bool) {
	if len(token) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	if year < 1900 || year > 2030 {
		return 0, false
	}
	return year, true
}
