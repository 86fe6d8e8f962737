// Package packet implements a big-endian byte cursor over an in-memory
// buffer, as used by the jagex2 data formats.
//
// Unlike a bytes.Buffer, the read position is an exported field and may be
// moved freely; formats such as the sprite index stream are read by seeking
// to an offset learned from another stream.
package packet

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrExhausted is returned when a read needs more bytes than remain after
// Pos.
var ErrExhausted = errors.New("packet: read past end of buffer")

// Packet is a read cursor over Data. The zero value is an empty packet.
type Packet struct {
	Data []byte
	Pos  int
}

// New returns a packet positioned at the start of b.
func New(b []byte) *Packet {
	return &Packet{Data: b}
}

// Remaining reports how many bytes can still be read from Pos. It is
// negative if Pos was skipped beyond the end of Data.
func (p *Packet) Remaining() int {
	return len(p.Data) - p.Pos
}

// Skip moves the cursor n bytes forward without any bounds check. Reading
// after skipping past the end fails with ErrExhausted.
func (p *Packet) Skip(n int) {
	p.Pos += n
}

func (p *Packet) take(n int) ([]byte, error) {
	if p.Pos < 0 || p.Remaining() < n {
		return nil, errors.Wrapf(ErrExhausted, "want %d bytes at %d, have %d", n, p.Pos, len(p.Data))
	}
	b := p.Data[p.Pos : p.Pos+n]
	p.Pos += n
	return b, nil
}

// G1 reads one unsigned byte.
func (p *Packet) G1() (uint8, error) {
	b, err := p.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// G2 reads a big-endian unsigned 16-bit value.
func (p *Packet) G2() (uint16, error) {
	b, err := p.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// G3 reads a big-endian unsigned 24-bit value, typically an RGB color.
func (p *Packet) G3() (uint32, error) {
	b, err := p.take(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// G4 reads a big-endian unsigned 32-bit value.
func (p *Packet) G4() (uint32, error) {
	b, err := p.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
