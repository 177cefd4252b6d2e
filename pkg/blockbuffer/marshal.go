package blockbuffer

import (
	"encoding/binary"
	"errors"
)

// Binary state encoding, in the spirit of the standard library hash
// marshalers, so digest states built on a Buffer can be saved and resumed.
// Only the buffered prefix is serialized; the stale region carries no
// meaning and is not written out.

const marshalMagic = "bbuf"

var (
	errInvalidState = errors.New("blockbuf/blockbuffer: invalid buffer state")
	errSizeMismatch = errors.New("blockbuf/blockbuffer: block size mismatch")
	errShortState   = errors.New("blockbuf/blockbuffer: buffer state truncated")
)

// MarshalBinary encodes the block size, cursor and buffered bytes.
func (b *Buffer) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, len(marshalMagic)+8+b.pos)
	out = append(out, marshalMagic...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(b.buf)))
	out = binary.BigEndian.AppendUint32(out, uint32(b.pos))
	out = append(out, b.buf[:b.pos]...)
	return out, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary. The encoded
// block size must match the receiver's, except that a zero-value Buffer
// adopts the encoded size.
func (b *Buffer) UnmarshalBinary(data []byte) error {
	if len(data) < len(marshalMagic)+8 || string(data[:len(marshalMagic)]) != marshalMagic {
		return errInvalidState
	}
	data = data[len(marshalMagic):]
	size := int(binary.BigEndian.Uint32(data))
	pos := int(binary.BigEndian.Uint32(data[4:]))
	data = data[8:]

	if size <= 0 || pos < 0 || pos >= size {
		return errInvalidState
	}
	if len(data) != pos {
		return errShortState
	}
	if b.buf == nil {
		b.buf = make([]byte, size)
	} else if len(b.buf) != size {
		return errSizeMismatch
	}
	copy(b.buf, data)
	b.pos = pos
	return nil
}
