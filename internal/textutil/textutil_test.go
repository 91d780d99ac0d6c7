package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dots to spaces", "The.Matrix.Reloaded", "the matrix reloaded"},
		{"mixed punctuation", "Spider-Man: No Way Home!", "spider man no way home"},
		{"collapses whitespace", "  The   Matrix  ", "the matrix"},
		{"cjk preserved", "钢铁侠 Iron Man", "钢铁侠 iron man"},
		{"empty", "", ""},
		{"only punctuation", "...---...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"The.Matrix.1999", "英雄 [Hero]", "Blade Runner 2049"}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want func(float64) bool
	}{
		{"identical", "The Matrix", "The Matrix", func(s float64) bool { return s == 100 }},
		{"identical after normalize", "The.Matrix", "the matrix", func(s float64) bool { return s == 100 }},
		{"close", "The Matrix", "The Matrix Reloaded", func(s float64) bool { return s > 40 && s < 100 }},
		{"unrelated", "The Matrix", "Finding Nemo", func(s float64) bool { return s < 40 }},
		{"empty side", "The Matrix", "", func(s float64) bool { return s == 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if !tt.want(got) {
				t.Errorf("Similarity(%q, %q) = %v", tt.a, tt.b, got)
			}
		})
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "completely different phrase here"},
		{"英雄", "Hero"},
		{"x", "y"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		if s < 0 || s > 100 {
			t.Errorf("Similarity(%q, %q) = %v out of range", p[0], p[1], s)
		}
	}
}

func TestContainsWordwise(t *testing.T) {
	tests := []struct {
		haystack, needle string
		want             bool
	}{
		{"The Matrix Reloaded", "Matrix", true},
		{"The Matrix Reloaded", "the matrix", true},
		{"The Matrix", "Reloaded", false},
		{"Iron Man 3", "iron man", true},
		{"", "anything", false},
		{"anything", "", false},
	}
	for _, tt := range tests {
		if got := ContainsWordwise(tt.haystack, tt.needle); got != tt.want {
			t.Errorf("ContainsWordwise(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"the matrix", "The Matrix"},
		{"The Matrix", "The Matrix"},
		{"McDonald", "McDonald"},
		{"iron man 2", "Iron Man 2"},
		{"英雄", "英雄"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.input); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("The.Quick-Brown_Fox")
	want := []string{"the", "quick", "brown", "fox"}
	if len(got) != len(want) {
		t.Fatalf("Words = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Words = %v, want %v", got, want)
		}
	}
}
