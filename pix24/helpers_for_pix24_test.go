package pix24

import (
	"bytes"
	"encoding/binary"
)

type testSprite struct {
	cropX, cropY uint8
	w, h         uint16
	order        uint8
	// data is stored in the .dat stream as-is, i.e. already in the
	// consumption order the sprite's pixel order implies.
	data []byte
}

// buildSprites lays out a .dat / index.dat pair. palette[0] is not stored,
// as in real archives. pad bytes are put in front of the metadata in the
// index stream so that the offset in the .dat header is exercised.
func buildSprites(cropW, cropH uint16, palette []uint32, sprites []testSprite, pad int) (dat, index []byte) {
	var d, i bytes.Buffer

	i.Write(make([]byte, pad))
	binary.Write(&i, binary.BigEndian, cropW)
	binary.Write(&i, binary.BigEndian, cropH)
	i.WriteByte(byte(len(palette)))
	for _, c := range palette[1:] {
		i.Write([]byte{byte(c >> 16), byte(c >> 8), byte(c)})
	}

	binary.Write(&d, binary.BigEndian, uint16(pad))
	for _, s := range sprites {
		i.WriteByte(s.cropX)
		i.WriteByte(s.cropY)
		binary.Write(&i, binary.BigEndian, s.w)
		binary.Write(&i, binary.BigEndian, s.h)
		i.WriteByte(s.order)
		d.Write(s.data)
	}
	return d.Bytes(), i.Bytes()
}

func repeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}
