package jagfile

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is wrapped by errors returned for entries an archive does
	// not contain.
	ErrNotFound = errors.New("jagfile: entry not found")
	// ErrCorrupt is wrapped by errors returned for containers that cannot be
	// parsed or decompressed.
	ErrCorrupt = errors.New("jagfile: corrupt archive")
)

// Archive is a read-only store of named, already decompressed blobs.
type Archive interface {
	Read(name string) ([]byte, error)
}

// Files is an in-memory archive.
type Files map[string][]byte

func (f Files) Read(name string) ([]byte, error) {
	b, ok := f[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return b, nil
}

// Dir serves loose files from a directory on disk as an archive.
type Dir string

func (d Dir) Read(name string) ([]byte, error) {
	if name != filepath.Base(name) {
		return nil, errors.Wrapf(ErrNotFound, "%q is not a plain file name", name)
	}
	b, err := os.ReadFile(filepath.Join(string(d), name))
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "%q in %s", name, string(d))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q from %s", name, string(d))
	}
	return b, nil
}

// OpenAny opens path as a jag container, or as a Dir if path is a directory.
func OpenAny(path string) (Archive, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening archive %s", path)
	}
	if st.IsDir() {
		return Dir(path), nil
	}
	return Open(path)
}
