package pix24

import (
	"github.com/pkg/errors"
)

// ErrMalformedArchive matches every error returned while decoding an image:
// a stream ran out during a required read, an entry is missing, the
// requested sprite does not exist or a pixel names a color outside the
// palette.
var ErrMalformedArchive = errors.New("pix24: malformed archive")

// decodeError describes which step of a decode failed and keeps the
// underlying cause reachable through errors.Is and errors.As.
type decodeError struct {
	op  string
	err error
}

func (e *decodeError) Error() string {
	return "pix24: " + e.op + ": " + e.err.Error()
}

func (e *decodeError) Unwrap() error {
	return e.err
}

func (e *decodeError) Is(target error) bool {
	return target == ErrMalformedArchive
}

func malformed(err error, op string) error {
	return &decodeError{op: op, err: err}
}
