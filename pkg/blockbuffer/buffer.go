// Package blockbuffer implements the fixed-capacity staging buffer that
// turns an arbitrarily chunked byte stream into a sequence of fixed-size
// blocks for block-oriented cryptographic primitives: hash compression
// functions, block-cipher encryption and keystream application.
package blockbuffer

// A Buffer accumulates input until a full block of blockSize bytes is
// available, hands whole blocks to a caller-supplied function, and carries
// the incomplete tail between calls.
//
// The cursor pos always satisfies 0 <= pos < blockSize: a buffer that fills
// up exactly is flushed and the cursor reset before the call returns.
// buf[:pos] holds buffered input awaiting more data; buf[pos:] is stale and
// never read except by the padding operations, which overwrite it.
//
// A Buffer is owned by exactly one hash or cipher state at a time and has no
// internal locking. Block slices passed to callbacks alias buffer or caller
// storage and must not be retained after the callback returns.
type Buffer struct {
	buf []byte
	pos int
}

// New returns an empty Buffer for the given block size.
// It panics if blockSize is not positive.
func New(blockSize int) *Buffer {
	if blockSize <= 0 {
		panic("blockbuf/blockbuffer: non-positive block size")
	}
	return &Buffer{buf: make([]byte, blockSize)}
}

// Input feeds p into the buffer and calls compress once per completed block,
// in stream order. Any leftover from previous calls is completed first and
// flushed from the internal buffer; subsequent whole blocks are passed as
// subslices of p without copying. The final sub-block tail of p is retained
// for the next call.
func (b *Buffer) Input(p []byte, compress func(block []byte)) {
	// Not even one block can be completed; buffer everything.
	if len(p) < b.Remaining() {
		b.pos += copy(b.buf[b.pos:], p)
		return
	}

	// Complete and flush the leftover.
	if b.pos != 0 {
		n := copy(b.buf[b.pos:], p)
		p = p[n:]
		b.pos = 0
		compress(b.buf)
	}

	// Whole blocks come straight from p.
	for len(p) >= len(b.buf) {
		compress(p[:len(b.buf)])
		p = p[len(b.buf):]
	}

	// Less than a block remains and the buffer is empty.
	b.pos = copy(b.buf, p)
}

// Size returns the block size in bytes.
func (b *Buffer) Size() int { return len(b.buf) }

// Position returns the number of buffered bytes awaiting a full block.
func (b *Buffer) Position() int { return b.pos }

// Remaining returns the number of bytes needed to complete the current block.
func (b *Buffer) Remaining() int { return len(b.buf) - b.pos }

// Reset discards any buffered leftover without flushing it. Callers use it
// only when abandoning a message.
func (b *Buffer) Reset() { b.pos = 0 }

// Clone returns an independent deep copy of the buffer. Contents and cursor
// are copied together; the clone shares no storage with the original.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{buf: make([]byte, len(b.buf)), pos: b.pos}
	copy(c.buf, b.buf)
	return c
}
