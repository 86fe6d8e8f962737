package jagfile

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-jagex2/packet"
)

// bzip2Magic is stripped from every compressed stream in a jag container.
var bzip2Magic = []byte("BZh1")

type entry struct {
	hash     int32
	unpacked int
	packed   int
	offset   int
}

// Jagfile is a parsed jag container.
type Jagfile struct {
	data []byte
	// wholeCompressed is set when the container was compressed as one
	// stream; the bodies in data are then stored as-is.
	wholeCompressed bool
	entries         []entry
}

// Hash returns the name hash a jag container stores instead of file names.
// Names are case insensitive.
func Hash(name string) int32 {
	var hash int32
	for _, c := range strings.ToUpper(name) {
		hash = hash*61 + int32(c) - 32
	}
	return hash
}

// Open reads and parses the jag container at path.
func Open(path string) (*Jagfile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading jag container %s", path)
	}
	j, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return j, nil
}

// Parse reads the entry table of a jag container. File bodies are only
// decompressed when read.
func Parse(src []byte) (*Jagfile, error) {
	p := packet.New(src)
	unpacked, err := p.G3()
	if err != nil {
		return nil, corrupt(err, "reading unpacked size")
	}
	packed, err := p.G3()
	if err != nil {
		return nil, corrupt(err, "reading packed size")
	}

	j := &Jagfile{}
	if packed != unpacked {
		if p.Remaining() < int(packed) {
			return nil, errors.Wrapf(ErrCorrupt, "container claims %d packed bytes, %d present", packed, p.Remaining())
		}
		data, err := decompress(src[p.Pos:p.Pos+int(packed)], int(unpacked))
		if err != nil {
			return nil, err
		}
		p = packet.New(data)
		j.wholeCompressed = true
	}
	j.data = p.Data

	count, err := p.G2()
	if err != nil {
		return nil, corrupt(err, "reading file count")
	}
	glog.V(2).Infof("jag container: %d files, whole compressed: %v", count, j.wholeCompressed)

	offset := p.Pos + int(count)*10
	j.entries = make([]entry, count)
	for i := range j.entries {
		hash, err := p.G4()
		if err != nil {
			return nil, corrupt(err, "reading entry %d hash", i)
		}
		fileUnpacked, err := p.G3()
		if err != nil {
			return nil, corrupt(err, "reading entry %d unpacked size", i)
		}
		filePacked, err := p.G3()
		if err != nil {
			return nil, corrupt(err, "reading entry %d packed size", i)
		}
		j.entries[i] = entry{
			hash:     int32(hash),
			unpacked: int(fileUnpacked),
			packed:   int(filePacked),
			offset:   offset,
		}
		offset += int(filePacked)
	}
	if offset > len(j.data) {
		return nil, errors.Wrapf(ErrCorrupt, "entries extend to %d, container has %d bytes", offset, len(j.data))
	}
	return j, nil
}

// Len returns the number of entries in the container.
func (j *Jagfile) Len() int {
	return len(j.entries)
}

// Read returns the decompressed contents of the named entry.
func (j *Jagfile) Read(name string) ([]byte, error) {
	hash := Hash(name)
	for _, e := range j.entries {
		if e.hash != hash {
			continue
		}
		body := j.data[e.offset : e.offset+e.packed]
		if j.wholeCompressed {
			out := make([]byte, len(body))
			copy(out, body)
			return out, nil
		}
		out, err := decompress(body, e.unpacked)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %q", name)
		}
		return out, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "%q (hash %d)", name, hash)
}

func decompress(headerless []byte, size int) ([]byte, error) {
	r, err := bzip2.NewReader(io.MultiReader(bytes.NewReader(bzip2Magic), bytes.NewReader(headerless)), nil)
	if err != nil {
		return nil, errors.Wrap(ErrCorrupt, err.Error())
	}
	defer r.Close()

	out := make([]byte, size)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "bzip2: %v", err)
	}
	return out, nil
}

func corrupt(err error, format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorrupt, format+": %v", append(args, err)...)
}
