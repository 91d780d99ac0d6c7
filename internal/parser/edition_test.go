package parser

import "testing"

func TestStripEditionSuffix(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Blade Runner Final Cut", "Blade Runner"},
		{"Blade Runner (Final Cut)", "Blade Runner"},
		{"Alien Director's Cut", "Alien"},
		{"Terminator 2 Extended Edition", "Terminator 2"},
		{"Apocalypse Now Redux", "Apocalypse Now"},
		{"The Matrix", "The Matrix"},
		{"Dances With Wolves 25th Anniversary Edition", "Dances With Wolves"},
	}
	for _, tt := range tests {
		if got := StripEditionSuffix(tt.input); got != tt.want {
			t.Errorf("StripEditionSuffix(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripLeadingArticle(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"The Matrix", "Matrix"},
		{"A Beautiful Mind", "Beautiful Mind"},
		{"An American Tail", "American Tail"},
		{"Matrix", "Matrix"},
		{"Theory of Everything", "Theory of Everything"},
	}
	for _, tt := range tests {
		if got := StripLeadingArticle(tt.input); got != tt.want {
			t.Errorf("StripLeadingArticle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDetectEdition(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Blade Runner Final Cut", "Final Cut"},
		{"Alien Director's Cut", "Director's Cut"},
		{"Terminator 2 Extended Edition", "Extended Edition"},
		{"Apocalypse Now Redux", "Redux"},
		{"Blade.Runner.The.Final.Cut.1997.2160p.mkv", "Final Cut"},
		{"The Matrix", ""},
	}
	for _, tt := range tests {
		if got := DetectEdition(tt.input); got != tt.want {
			t.Errorf("DetectEdition(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
