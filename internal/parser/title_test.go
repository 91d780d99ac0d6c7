package parser

import (
	"strings"
	"testing"
)

func assemble(t *testing.T, filename string, strategy Strategy) Assembly {
	t.Helper()
	v := compileDefault(t)
	tokens := tokenize(t, v, filename)
	ext := ExtractTechnical(tokens, v)
	return AssembleTitle(tokens, ext, v, strategy)
}

func TestAssembleLatinOnly(t *testing.T) {
	got := assemble(t, "The.Matrix.1999.1080p.BluRay.x264.mkv", Strategy{PreferOriginal: true, IncludeSubtitle: true})
	if got.Display != "The Matrix" {
		t.Errorf("display = %q, want %q", got.Display, "The Matrix")
	}
	if got.Original != "" {
		t.Errorf("original = %q, want empty", got.Original)
	}
}

func TestAssembleBilingualStrategies(t *testing.T) {
	const filename = "钢铁侠.Iron.Man.2008.BluRay.2160p.x265.10bit.HDR.4Audio.mUHD-FRDS.mkv"

	tests := []struct {
		name     string
		strategy Strategy
		want     string
	}{
		{"original with subtitle", Strategy{PreferOriginal: true, IncludeSubtitle: true}, "钢铁侠 [Iron Man]"},
		{"original only", Strategy{PreferOriginal: true}, "钢铁侠"},
		{"latin with subtitle", Strategy{IncludeSubtitle: true}, "Iron Man [钢铁侠]"},
		{"latin only", Strategy{}, "Iron Man"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assemble(t, filename, tt.strategy)
			if got.Display != tt.want {
				t.Errorf("display = %q, want %q", got.Display, tt.want)
			}
			if got.Original != "钢铁侠" {
				t.Errorf("original = %q, want %q", got.Original, "钢铁侠")
			}
		})
	}
}

func TestAssembleBracketPreserving(t *testing.T) {
	got := assemble(t, "[英雄] [Hero] 2002.mkv", Strategy{PreferOriginal: true, IncludeSubtitle: true})
	if got.Display != "[英雄] [Hero]" {
		t.Errorf("display = %q, want %q", got.Display, "[英雄] [Hero]")
	}
}

func TestAssembleTrilingual(t *testing.T) {
	got := assemble(t, "千与千寻.千と千尋の神隠し.Spirited.Away.2001.BluRay.mkv", Strategy{PreferOriginal: true, IncludeSubtitle: true})
	for _, fragment := range []string{"千与千寻", "千と千尋の神隠し", "Spirited Away"} {
		if !strings.Contains(got.Display, fragment) {
			t.Errorf("display %q missing %q", got.Display, fragment)
		}
	}
	if strings.Contains(got.Display, "[") {
		t.Errorf("trilingual display should not use brackets: %q", got.Display)
	}
}

func TestAssembleFiltersNoise(t *testing.T) {
	got := assemble(t, "Movie.2020.1080p.BluRay.PROPER.REPACK.CHS.x264.mkv", Strategy{})
	if got.Display != "Movie" {
		t.Errorf("display = %q, want %q", got.Display, "Movie")
	}
}

func TestAssembleDropsCJKNoisePhrase(t *testing.T) {
	got := assemble(t, "钢铁侠.[国语中字].2008.BluRay.mkv", Strategy{PreferOriginal: true, IncludeSubtitle: true})
	if strings.Contains(got.Display, "国语中字") {
		t.Errorf("release boilerplate leaked into title: %q", got.Display)
	}
	if got.Original != "钢铁侠" {
		t.Errorf("original = %q, want %q", got.Original, "钢铁侠")
	}
}

func TestAssembleKnownTitlePassesThrough(t *testing.T) {
	got := assemble(t, "英雄.2002.1080p.BluRay.mkv", Strategy{PreferOriginal: true, IncludeSubtitle: true})
	if got.Display != "英雄" || got.Original != "英雄" {
		t.Errorf("assembly = %+v", got)
	}
}

func TestAssembleNativeOnlyIgnoresStrategy(t *testing.T) {
	// With no Latin text a latin-only strategy still shows the
	// native title rather than an empty display.
	got := assemble(t, "英雄.2002.1080p.BluRay.mkv", Strategy{})
	if got.Display != "英雄" || got.Original != "英雄" {
		t.Errorf("assembly = %+v", got)
	}
}

func TestAssembleLowercaseRelease(t *testing.T) {
	got := assemble(t, "the.matrix.1999.1080p.bluray.x264.mkv", Strategy{})
	if got.Display != "The Matrix" {
		t.Errorf("display = %q, want %q", got.Display, "The Matrix")
	}
}

func TestAssembleAllNoise(t *testing.T) {
	got := assemble(t, "1080p.BluRay.x264.mkv", Strategy{})
	if got.Display != "" {
		t.Errorf("display = %q, want empty", got.Display)
	}
}

func TestKeepForTitle(t *testing.T) {
	v := compileDefault(t)
	tests := []struct {
		token string
		want  bool
	}{
		{"Matrix", true},
		{"the", true},   // common word allow-list
		{"man", true},   // common word allow-list
		{"chs", false},  // language marker
		{"3", false},    // bare number
		{"hdr", false},  // noise
		{"720p", false}, // quality even when unclaimed
		{"英雄", true},    // known title allow-list
	}
	for _, tt := range tests {
		if got := keepForTitle(tt.token, v); got != tt.want {
			t.Errorf("keepForTitle(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}
