package scripts

import "unicode"

// Script identifies a supported Unicode writing system.
type Script uint8

const (
	Latin Script = iota
	Han
	Hiragana
	Katakana
	Hangul
	Arabic
	Cyrillic
	Devanagari
	Thai
	Hebrew
	Greek
	scriptCount
)

// String returns the script name.
func (s Script) String() string {
	switch s {
	case Latin:
		return "latin"
	case Han:
		return "han"
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	case Hangul:
		return "hangul"
	case Arabic:
		return "arabic"
	case Cyrillic:
		return "cyrillic"
	case Devanagari:
		return "devanagari"
	case Thai:
		return "thai"
	case Hebrew:
		return "hebrew"
	case Greek:
		return "greek"
	}
	return "unknown"
}

var rangeTables = [scriptCount]*unicode.RangeTable{
	Latin:      unicode.Latin,
	Han:        unicode.Han,
	Hiragana:   unicode.Hiragana,
	Katakana:   unicode.Katakana,
	Hangul:     unicode.Hangul,
	Arabic:     unicode.Arabic,
	Cyrillic:   unicode.Cyrillic,
	Devanagari: unicode.Devanagari,
	Thai:       unicode.Thai,
	Hebrew:     unicode.Hebrew,
	Greek:      unicode.Greek,
}

// Profile records which scripts appear in a piece of text.
type Profile struct {
	present uint16
}

// Classify evaluates every rune of text against each supported script range.
// A script is present when any rune of the text belongs to it.
func Classify(text string) Profile {
	var p Profile
	for _, r := range text {
		for s := Script(0); s < scriptCount; s++ {
			if p.present&(1<<s) != 0 {
				continue
			}
			if unicode.Is(rangeTables[s], r) {
				p.present |= 1 << s
			}
		}
		if p.present == (1<<scriptCount)-1 {
			break
		}
	}
	return p
}

// Has reports whether the script was observed.
func (p Profile) Has(s Script) bool {
	return p.present&(1<<s) != 0
}

// HasKana reports whether Hiragana or Katakana was observed.
func (p Profile) HasKana() bool {
	return p.Has(Hiragana) || p.Has(Katakana)
}

// HasNonLatin reports whether any non-Latin script was observed.
func (p Profile) HasNonLatin() bool {
	return p.present&^(1<<Latin) != 0
}

// Bilingual reports whether Latin letters coexist with a non-Latin script.
func (p Profile) Bilingual() bool {
	return p.Has(Latin) && p.HasNonLatin()
}

// PrimaryLanguage derives an ISO 639-1 language guess from the observed
// scripts. Kana outranks Han so mixed Japanese text resolves to "ja", and a
// Latin-only profile is reported as English. Returns "" when no script
// matched at all (digits, punctuation).
func (p Profile) PrimaryLanguage() string {
	switch {
	case p.HasKana():
		return "ja"
	case p.Has(Han):
		return "zh"
	case p.Has(Hangul):
		return "ko"
	case p.Has(Arabic):
		return "ar"
	case p.Has(Cyrillic):
		return "ru"
	case p.Has(Devanagari):
		return "hi"
	case p.Has(Thai):
		return "th"
	case p.Has(Hebrew):
		return "he"
	case p.Has(Greek):
		return "el"
	case p.Has(Latin):
		return "en"
	}
	return ""
}

// CJKRatio returns the fraction of runes in text that belong to the Han,
// Hiragana, Katakana, or Hangul ranges. Used to spot tokens that are mostly
// CJK description text rather than title words.
func CJKRatio(text string) float64 {
	total := 0
	cjk := 0
	for _, r := range text {
		total++
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
			cjk++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(cjk) / float64(total)
}
