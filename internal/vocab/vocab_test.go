package vocab

import (
	"errors"
	"testing"

	"cinesift/internal/services"
)

func TestCompileDefaults(t *testing.T) {
	v, err := Compile(Default())
	if err != nil {
		t.Fatalf("Compile(Default()) returned error: %v", err)
	}
	if !v.IsQuality("1080p") || !v.IsQuality("2160P") {
		t.Error("expected quality markers to match case-insensitively")
	}
	if !v.IsSource("BluRay") {
		t.Error("expected BluRay to match source list")
	}
	if !v.IsCodec("x265") {
		t.Error("expected x265 to match codec list")
	}
	if !v.IsAudio("7.1") {
		t.Error("expected 7.1 to match audio list")
	}
	if !v.IsNoise("10bit") {
		t.Error("expected 10bit to match noise list")
	}
	if v.IsQuality("matrix") {
		t.Error("title words must not match quality list")
	}
	if !v.IsCJKNoisePhrase("国语中字") {
		t.Error("expected CJK noise phrase to match")
	}
	if !v.IsKnownTitle("英雄") {
		t.Error("expected known title allow-list hit")
	}
}

func TestCompileRejectsEmptyCategory(t *testing.T) {
	bad := Default()
	bad.Quality = nil
	_, err := Compile(bad)
	if err == nil {
		t.Fatal("expected error for empty quality list")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestCompileTrimsAndLowercases(t *testing.T) {
	custom := Default()
	custom.Groups = []string{"  MySub  ", ""}
	v, err := Compile(custom)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !v.IsGroup("mysub") || !v.IsGroup("MYSUB") {
		t.Error("expected trimmed, case-insensitive group match")
	}
}

func TestProtectedMarkersPreserveCase(t *testing.T) {
	v, err := Compile(Default())
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	found := false
	for _, m := range v.ProtectedMarkers() {
		if m == "DDP5.1" {
			found = true
		}
	}
	if !found {
		t.Error("protected markers must keep their literal text")
	}
}
