package overrides

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cinesift/internal/logging"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNilCatalogMisses(t *testing.T) {
	var c *Catalog
	if _, ok, err := c.Lookup("Hero"); ok || err != nil {
		t.Fatalf("nil catalog: ok=%v err=%v", ok, err)
	}
	if NewCatalog("   ", nil) != nil {
		t.Fatal("blank path should yield nil catalog")
	}
}

func TestLookupArrayForm(t *testing.T) {
	path := writeCatalog(t, `[
		{"title": "Hero", "aliases": ["英雄"], "year": 2002, "tmdb_id": 79}
	]`)
	c := NewCatalog(path, logging.NewNop())

	for _, query := range []string{"Hero", "hero", "  HERO  ", "英雄"} {
		entry, ok, err := c.Lookup(query)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", query, err)
		}
		if !ok || entry.Year != 2002 || entry.TMDBID != 79 {
			t.Fatalf("Lookup(%q) = %+v ok=%v", query, entry, ok)
		}
	}
	if _, ok, _ := c.Lookup("Villain"); ok {
		t.Fatal("unexpected match")
	}
}

func TestLookupWrapperForm(t *testing.T) {
	path := writeCatalog(t, `{"overrides": [
		{"title": "The Matrix", "year": 1999, "display_title": "The Matrix"}
	]}`)
	c := NewCatalog(path, logging.NewNop())

	entry, ok, err := c.Lookup("the  matrix")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if entry.Year != 1999 {
		t.Fatalf("entry = %+v", entry)
	}
}

func TestMissingFileIsEmptyCatalog(t *testing.T) {
	c := NewCatalog(filepath.Join(t.TempDir(), "absent.json"), logging.NewNop())
	if _, ok, err := c.Lookup("Hero"); ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
}

func TestReloadOnModTimeChange(t *testing.T) {
	path := writeCatalog(t, `[{"title": "Hero", "year": 2002}]`)
	c := NewCatalog(path, logging.NewNop())

	if _, ok, _ := c.Lookup("Hero"); !ok {
		t.Fatal("initial load failed")
	}

	if err := os.WriteFile(path, []byte(`[{"title": "Hero", "year": 2003}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	entry, ok, err := c.Lookup("Hero")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if entry.Year != 2003 {
		t.Fatalf("stale entry after rewrite: %+v", entry)
	}
}
