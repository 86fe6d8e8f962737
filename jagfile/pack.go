package jagfile

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/dsnet/compress/bzip2"
	"github.com/pkg/errors"
)

// Pack builds a jag container from files. With whole set, the table and all
// bodies are compressed as a single stream; otherwise each body is
// compressed on its own. Entries are written in name order.
func Pack(files map[string][]byte, whole bool) ([]byte, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var table, bodies bytes.Buffer
	binary.Write(&table, binary.BigEndian, uint16(len(names)))
	for _, name := range names {
		body := files[name]
		stored := body
		if !whole {
			var err error
			if stored, err = compress(body); err != nil {
				return nil, errors.Wrapf(err, "compressing %q", name)
			}
		}
		binary.Write(&table, binary.BigEndian, Hash(name))
		table.Write(u24(len(body)))
		table.Write(u24(len(stored)))
		bodies.Write(stored)
	}

	inner := append(table.Bytes(), bodies.Bytes()...)
	stored := inner
	if whole {
		var err error
		if stored, err = compress(inner); err != nil {
			return nil, errors.Wrap(err, "compressing container")
		}
	}

	out := make([]byte, 0, 6+len(stored))
	out = append(out, u24(len(inner))...)
	out = append(out, u24(len(stored))...)
	return append(out, stored...), nil
}

func u24(v int) []byte {
	return []byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// compress returns a bzip2 stream of b without its magic header.
func compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: 9})
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes()[len(bzip2Magic):], nil
}
