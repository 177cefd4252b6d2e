package blockbuffer

// Blocks is a zero-copy view of a contiguous byte run as an array of
// fixed-size blocks. The underlying length is always an exact multiple of
// the block size, checked at construction, so every Block call is in bounds.
type Blocks struct {
	data []byte
	size int
}

// NewBlocks wraps data as a run of size-byte blocks.
// It panics if len(data) is not a multiple of size; splitting an unaligned
// run indicates a defect in the caller, not a recoverable condition.
func NewBlocks(data []byte, size int) Blocks {
	if size <= 0 {
		panic("blockbuf/blockbuffer: non-positive block size")
	}
	if len(data)%size != 0 {
		panic("blockbuf/blockbuffer: input not full blocks")
	}
	return Blocks{data: data, size: size}
}

// Count returns the number of blocks in the run.
func (bs Blocks) Count() int { return len(bs.data) / bs.size }

// Block returns the i-th block. The slice aliases the underlying run.
func (bs Blocks) Block(i int) []byte {
	return bs.data[i*bs.size : (i+1)*bs.size]
}

// Bytes returns the whole run as a single byte slice.
func (bs Blocks) Bytes() []byte { return bs.data }

// BlockSize returns the size of each block in the run.
func (bs Blocks) BlockSize() int { return bs.size }

// InputBlocks feeds p into the buffer like Input, but presents all whole
// blocks of p as one contiguous Blocks run in a single compress call, for
// backends that batch several blocks across SIMD lanes. A leftover completed
// from previous calls is flushed first as a run of one block. Block contents
// and order are byte-for-byte identical to calling Input with the same data.
func (b *Buffer) InputBlocks(p []byte, compress func(blocks Blocks)) {
	if len(p) < b.Remaining() {
		b.pos += copy(b.buf[b.pos:], p)
		return
	}

	if b.pos != 0 {
		n := copy(b.buf[b.pos:], p)
		p = p[n:]
		b.pos = 0
		compress(Blocks{data: b.buf, size: len(b.buf)})
	}

	// One batched call covering every whole block, straight from p.
	if n := len(p) - len(p)%len(b.buf); n > 0 {
		compress(Blocks{data: p[:n], size: len(b.buf)})
		p = p[n:]
	}

	b.pos = copy(b.buf, p)
}
