package parser

import (
	"fmt"
	"strings"

	"cinesift/internal/language"
	"cinesift/internal/scripts"
	"cinesift/internal/textutil"
	"cinesift/internal/vocab"
)

// Strategy selects how a bilingual title is rendered.
type Strategy struct {
	PreferOriginal  bool
	IncludeSubtitle bool
}

// Assembly is the assembled title pair. Original is empty when the
// filename carried no native-script fragment.
type Assembly struct {
	Display  string
	Original string
}

// AssembleTitle filters out claimed and noise tokens, partitions the
// survivors by script, and renders the final title per the strategy.
// An all-noise filename produces an empty Display; callers treat that
// as an extraction failure.
func AssembleTitle(tokens []Token, ext Extraction, v *vocab.Vocabulary, strategy Strategy) Assembly {
	var han, kana, latin []string
	var original []string
	bracketedOriginal := false

	for i, tok := range tokens {
		if ext.Claimed(i) || !keepForTitle(tok.Value, v) {
			continue
		}
		profile := scripts.Classify(tok.Value)
		switch {
		case profile.HasKana():
			kana = append(kana, tok.Value)
			original = append(original, tok.Value)
			bracketedOriginal = bracketedOriginal || tok.Bracketed
		case profile.Has(scripts.Han):
			han = append(han, tok.Value)
			original = append(original, tok.Value)
			bracketedOriginal = bracketedOriginal || tok.Bracketed
		default:
			latin = append(latin, tok.Value)
		}
	}

	originalText := strings.Join(original, " ")
	latinText := textutil.TitleCase(strings.Join(latin, " "))

	assembly := Assembly{Original: originalText}
	switch {
	case originalText == "":
		assembly.Display = latinText
	case latinText == "":
		// Native-only release: there is no Latin text for the
		// strategy to prefer, so the native title stands regardless
		// of it. An empty Display is reserved for extraction failure.
		assembly.Display = originalText
	case len(han) > 0 && len(kana) > 0:
		// Trilingual releases list all three scripts unbracketed.
		assembly.Display = strings.Join([]string{strings.Join(han, " "), strings.Join(kana, " "), latinText}, " ")
	default:
		assembly.Display = FormatBilingual(originalText, latinText, strategy, bracketedOriginal)
	}
	return assembly
}

// FormatBilingual renders a native-script/Latin title pair. When the
// source filename bracketed its native-script fragment, the legacy
// bracket-preserving form is kept.
func FormatBilingual(original, latin string, strategy Strategy, bracketedOriginal bool) string {
	switch {
	case strategy.PreferOriginal && strategy.IncludeSubtitle:
		if bracketedOriginal {
			return fmt.Sprintf("[%s] [%s]", original, latin)
		}
		return fmt.Sprintf("%s [%s]", original, latin)
	case strategy.PreferOriginal:
		return original
	case strategy.IncludeSubtitle:
		return fmt.Sprintf("%s [%s]", latin, original)
	default:
		return latin
	}
}

// keepForTitle decides whether a surviving token belongs in the title.
// Allow-listed tokens always pass; language codes, bare numbers,
// vocabulary noise, and CJK release boilerplate never do.
func keepForTitle(value string, v *vocab.Vocabulary) bool {
	if v.IsKnownTitle(value) || v.IsCommonWord(value) {
		return true
	}
	if language.IsLanguageToken(value) {
		return false
	}
	if isNumeric(value) {
		return false
	}
	if v.IsNoise(value) || v.IsQuality(value) || v.IsSource(value) ||
		v.IsAudio(value) || v.IsCodec(value) || v.IsGroup(value) {
		return false
	}
	if scripts.CJKRatio(value) > 0.5 && v.IsCJKNoisePhrase(value) {
		return false
	}
	return true
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
