package paths

import (
	"os"
	"path/filepath"
)

// possibleDirs lists the directories searched for data files, most
// specific first.
func possibleDirs() []string {
	var dirs []string
	if d := os.Getenv("JAGEX2_DATAFILES"); d != "" {
		dirs = append(dirs, d)
	}
	if gp := os.Getenv("GOPATH"); gp != "" {
		dirs = append(dirs, filepath.Join(gp, "src", "badc0de.net", "pkg", "go-jagex2", "datafiles"))
	}
	if sd := os.Getenv("TEST_SRCDIR"); sd != "" {
		dirs = append(dirs, filepath.Join(sd, "go_jagex2", "datafiles"))
	}
	dirs = append(dirs,
		os.Args[0]+".runfiles/go_jagex2/datafiles",
		"datafiles",
	)
	return dirs
}

func possiblePaths(fileName string) []string {
	dirs := possibleDirs()
	paths := make([]string, 0, len(dirs))
	for _, d := range dirs {
		paths = append(paths, filepath.Join(d, fileName))
	}
	return paths
}
