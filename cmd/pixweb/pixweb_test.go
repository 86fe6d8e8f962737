package main

import (
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-jagex2/jagfile"
	"badc0de.net/pkg/go-jagex2/ttesting"
)

func TestArchiveListSet(t *testing.T) {
	var l archiveList
	if err := l.Set("media=/tmp/media"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := l.Set("title=/tmp/title"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	ttesting.AssertEqualInt(t, "entries", len(l), 2)
	if l["media"] != "/tmp/media" {
		t.Errorf("media = %q", l["media"])
	}

	for _, bad := range []string{"media", "=x", "x="} {
		if err := l.Set(bad); err == nil {
			t.Errorf("Set(%q) succeeded; want error", bad)
		}
	}
}

func TestOpenArchives(t *testing.T) {
	dir := t.TempDir()
	packed, err := jagfile.Pack(map[string][]byte{"index.dat": {0}}, true)
	if err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(dir, "title")
	if err := os.WriteFile(fn, packed, 0644); err != nil {
		t.Fatal(err)
	}

	archives := openArchives(archiveList{"title": fn, "loose": dir, "broken": filepath.Join(dir, "nope")})
	ttesting.AssertEqualInt(t, "opened", len(archives), 2)
	if _, ok := archives["broken"]; ok {
		t.Errorf("broken archive should have been skipped")
	}
	if b, err := archives["title"].Read("index.dat"); err != nil || len(b) != 1 {
		t.Errorf("title index.dat = %v, %v", b, err)
	}
}
