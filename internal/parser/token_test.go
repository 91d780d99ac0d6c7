package parser

import (
	"testing"
)

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	tok := NewTokenizer([]string{"7.1", "5.1", "2.0", "DDP5.1", "H.264", "H.265"})

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"plain dotted",
			"The.Matrix.1999.1080p.BluRay.x264.mkv",
			[]string{"The", "Matrix", "1999", "1080p", "BluRay", "x264"},
		},
		{
			"mixed separators",
			"Blade Runner_2049-Final.mkv",
			[]string{"Blade", "Runner", "2049", "Final"},
		},
		{
			"protected channel layout",
			"Dune.2021.2160p.DDP5.1.Atmos.mkv",
			[]string{"Dune", "2021", "2160p", "DDP5.1", "Atmos"},
		},
		{
			"protected codec",
			"Heat.1995.H.264.mkv",
			[]string{"Heat", "1995", "H.264"},
		},
		{
			"brackets come first",
			"Movie.Name.2020.[1080p].mkv",
			[]string{"1080p", "Movie", "Name", "2020"},
		},
		{
			"cjk bracket pair",
			"[英雄] [Hero] 2002.mkv",
			[]string{"英雄", "Hero", "2002"},
		},
		{
			"no extension",
			"The.Matrix.1999",
			[]string{"The", "Matrix", "1999"},
		},
		{
			"numeric suffix is not an extension",
			"Movie.2012",
			[]string{"Movie", "2012"},
		},
		{
			"empty",
			"",
			nil,
		},
		{
			"separators only",
			"...___---.mkv",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := values(tok.Tokenize(tt.input))
			if !equalStrings(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeNoEmptyTokens(t *testing.T) {
	tok := NewTokenizer([]string{"5.1"})
	inputs := []string{
		"..a..b..", "[ ] [x]", "film--name", "a.5.1.b.mkv", "[]",
	}
	for _, input := range inputs {
		for _, token := range tok.Tokenize(input) {
			if token.Value == "" {
				t.Errorf("Tokenize(%q) produced an empty token", input)
			}
		}
	}
}

func TestTokenizeOffsets(t *testing.T) {
	tok := NewTokenizer(nil)
	base := "The.Matrix.1999"
	tokens := tok.Tokenize(base + ".mkv")
	wantOffsets := []int{0, 4, 11}
	for i, token := range tokens {
		if token.Offset != wantOffsets[i] {
			t.Errorf("token %q offset = %d, want %d", token.Value, token.Offset, wantOffsets[i])
		}
		if base[token.Offset:token.Offset+len(token.Value)] != token.Value {
			t.Errorf("offset of %q does not point at its text", token.Value)
		}
	}
}

func TestTokenizeHyphenLed(t *testing.T) {
	tok := NewTokenizer(nil)
	tokens := tok.Tokenize("Movie.x264-GRP.mkv")
	want := map[string]bool{"Movie": false, "x264": false, "GRP": true}
	for _, token := range tokens {
		if token.HyphenLed != want[token.Value] {
			t.Errorf("token %q HyphenLed = %v, want %v", token.Value, token.HyphenLed, want[token.Value])
		}
	}
}

func TestProtectedMarkerNeedsBoundary(t *testing.T) {
	tok := NewTokenizer([]string{"2.0"})
	// "v2.01" must not surrender "2.0" mid-word.
	got := values(tok.Tokenize("Film.v2.01.mkv"))
	for _, v := range got {
		if v == "2.0" {
			t.Fatalf("marker matched inside a larger word: %v", got)
		}
	}
}

func TestStripExtension(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"a.mkv", "a"},
		{"a.webm", "a"},
		{"a.1999", "a.1999"},
		{"archive.tar", "archive"},
		{"noext", "noext"},
		{".hidden", ".hidden"},
	}
	for _, tt := range tests {
		if got := stripExtension(tt.input); got != tt.want {
			t.Errorf("stripExtension(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
