package blockbuffer

import "encoding/binary"

// Padding writes a padding pattern over block[pos:], the stale region after
// the buffered bytes. Implementations are in pkg/padding; callers may supply
// their own scheme.
type Padding interface {
	Pad(block []byte, pos int)
}

// digestPad writes the 0x80 delimiter after the buffered bytes and zero-fills
// the rest of the block. If fewer than suffixLen bytes remain after the
// delimiter, the block is emitted as-is and the buffer is left entirely
// zeroed for the suffix-carrying block that follows. The cursor is reset by
// the exported wrappers once the suffix has been written.
func (b *Buffer) digestPad(suffixLen int, compress func(block []byte)) {
	b.buf[b.pos] = 0x80
	b.pos++
	zero(b.buf[b.pos:])

	if len(b.buf)-b.pos < suffixLen {
		compress(b.buf)
		zero(b.buf[:b.pos])
	}
}

// LenPaddingBE terminates a message with 0x80, zero fill and the 64-bit
// big-endian length in the final 8 bytes, emitting one block, or two when
// fewer than 8 bytes remain after the delimiter. The cursor is reset to 0.
// The block size must be at least 8 for the suffix to fit a block at all.
func (b *Buffer) LenPaddingBE(length uint64, compress func(block []byte)) {
	b.digestPad(8, compress)
	s := len(b.buf)
	binary.BigEndian.PutUint64(b.buf[s-8:], length)
	compress(b.buf)
	b.pos = 0
}

// LenPaddingLE is LenPaddingBE with the length encoded little-endian.
func (b *Buffer) LenPaddingLE(length uint64, compress func(block []byte)) {
	b.digestPad(8, compress)
	s := len(b.buf)
	binary.LittleEndian.PutUint64(b.buf[s-8:], length)
	compress(b.buf)
	b.pos = 0
}

// LenPadding128BE terminates a message with a 128-bit big-endian length
// given as hi and lo 64-bit halves, for constructions counting past 2^64.
// The block size must be at least 16.
func (b *Buffer) LenPadding128BE(hi, lo uint64, compress func(block []byte)) {
	b.digestPad(16, compress)
	s := len(b.buf)
	binary.BigEndian.PutUint64(b.buf[s-16:], hi)
	binary.BigEndian.PutUint64(b.buf[s-8:], lo)
	compress(b.buf)
	b.pos = 0
}

// PadWith fills the stale region of the current block using p, resets the
// cursor and returns the padded block. No callback is involved: the caller
// performs the final block operation itself, as block-cipher paddings
// require.
func (b *Buffer) PadWith(p Padding) []byte {
	p.Pad(b.buf, b.pos)
	b.pos = 0
	return b.buf
}

func zero(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
