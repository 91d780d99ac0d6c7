package vocab

import (
	"fmt"
	"strings"

	"cinesift/internal/services"
)

// Technical is the raw, serializable vocabulary. Each list is matched
// case-insensitively against tokens by the extractor.
type Technical struct {
	Quality          []string `toml:"quality"`
	Source           []string `toml:"source"`
	Audio            []string `toml:"audio"`
	Codec            []string `toml:"codec"`
	Groups           []string `toml:"groups"`
	Noise            []string `toml:"noise"`
	ProtectedMarkers []string `toml:"protected_markers"`
	CJKNoisePhrases  []string `toml:"cjk_noise_phrases"`
	KnownTitles      []string `toml:"known_titles"`
	CommonWords      []string `toml:"common_words"`
}

// Vocabulary is the compiled, query-ready form of Technical.
type Vocabulary struct {
	quality     map[string]struct{}
	source      map[string]struct{}
	audio       map[string]struct{}
	codec       map[string]struct{}
	groups      map[string]struct{}
	noise       map[string]struct{}
	cjkPhrases  map[string]struct{}
	knownTitles map[string]struct{}
	commonWords map[string]struct{}
	protected   []string
}

// Compile validates and indexes a Technical vocabulary. The classification
// categories must be non-empty: an engine with no quality or source markers
// cannot be trusted, so this is a configuration error that aborts startup.
func Compile(t Technical) (*Vocabulary, error) {
	required := []struct {
		name string
		list []string
	}{
		{"quality", t.Quality},
		{"source", t.Source},
		{"audio", t.Audio},
		{"codec", t.Codec},
		{"noise", t.Noise},
	}
	for _, req := range required {
		if len(req.list) == 0 {
			return nil, services.Wrap(services.ErrConfiguration, "vocab", "compile",
				fmt.Sprintf("vocabulary category %q is empty", req.name), nil)
		}
	}

	v := &Vocabulary{
		quality:     buildSet(t.Quality),
		source:      buildSet(t.Source),
		audio:       buildSet(t.Audio),
		codec:       buildSet(t.Codec),
		groups:      buildSet(t.Groups),
		noise:       buildSet(t.Noise),
		cjkPhrases:  buildSet(t.CJKNoisePhrases),
		knownTitles: buildSet(t.KnownTitles),
		commonWords: buildSet(t.CommonWords),
	}
	for _, marker := range t.ProtectedMarkers {
		marker = strings.TrimSpace(marker)
		if marker != "" {
			v.protected = append(v.protected, marker)
		}
	}
	return v, nil
}

// buildSet creates a case-insensitive lookup set from a list.
func buildSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, item := range list {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			set[item] = struct{}{}
		}
	}
	return set
}

func contains(set map[string]struct{}, token string) bool {
	_, ok := set[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

func (v *Vocabulary) IsQuality(token string) bool { return contains(v.quality, token) }

func (v *Vocabulary) IsSource(token string) bool { return contains(v.source, token) }

func (v *Vocabulary) IsAudio(token string) bool { return contains(v.audio, token) }

func (v *Vocabulary) IsCodec(token string) bool { return contains(v.codec, token) }

func (v *Vocabulary) IsGroup(token string) bool { return contains(v.groups, token) }

func (v *Vocabulary) IsNoise(token string) bool { return contains(v.noise, token) }

func (v *Vocabulary) IsCJKNoisePhrase(token string) bool { return contains(v.cjkPhrases, token) }

// IsKnownTitle reports whether the token is on the title allow-list, which
// always passes through filtering regardless of script or noise matching.
func (v *Vocabulary) IsKnownTitle(token string) bool { return contains(v.knownTitles, token) }

func (v *Vocabulary) IsCommonWord(token string) bool { return contains(v.commonWords, token) }

// ProtectedMarkers returns the multi-part markers the tokenizer must shield
// from separator splitting, e.g. "7.1" channel layouts.
func (v *Vocabulary) ProtectedMarkers() []string { return v.protected }
