package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindEnvDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "title"), []byte{0}, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JAGEX2_DATAFILES", dir)

	if got, want := Find("title"), filepath.Join(dir, "title"); got != want {
		t.Errorf("Find(title) = %q; want %q", got, want)
	}

	f, err := Open("title")
	if err != nil {
		t.Fatalf("Open(title): %v", err)
	}
	f.Close()
}

func TestFindMissing(t *testing.T) {
	t.Setenv("JAGEX2_DATAFILES", t.TempDir())
	if got := Find("definitely-not-here.jag"); got != "" {
		t.Errorf("Find = %q; want empty", got)
	}
	if _, err := Open("definitely-not-here.jag"); !os.IsNotExist(err) {
		t.Errorf("Open err = %v; want not-exist", err)
	}
}
