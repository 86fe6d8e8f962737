// Package paths locates jagex2 data files (jag containers and directories
// of loose entries) on the local filesystem.
package paths

import (
	"os"

	"github.com/golang/glog"
)

// Find locates the passed datafile shortname and returns an absolute or
// relative path to find the datafile at, or an empty string.
//
// For example, for "title" it may return
// "mybinary.runfiles/go_jagex2/datafiles/title".
func Find(fileName string) string {
	for _, path := range possiblePaths(fileName) {
		if _, err := os.Stat(path); err == nil {
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations that Find would look,
// and opens it. If Find returns an empty string, an error wrapping
// os.ErrNotExist is returned.
func Open(fileName string) (*os.File, error) {
	path := Find(fileName)
	if path == "" {
		return nil, &os.PathError{Op: "find", Path: fileName, Err: os.ErrNotExist}
	}
	return os.Open(path)
}
