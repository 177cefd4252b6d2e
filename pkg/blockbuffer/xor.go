package blockbuffer

// XOR streaming for stream-cipher constructions. In this mode the buffer
// carries keystream material rather than accumulated input: when pos != 0,
// buf[pos:] is keystream generated on an earlier call and not yet consumed.

// XORKeyStream xors data in place against a keystream produced one block at
// a time by gen. gen must fully overwrite the block slice it is given with
// keystream bytes; it is called once per block actually needed. Residual
// keystream from a sub-block tail is retained, so a continuation call reuses
// it instead of regenerating the block. Applying the same keystream twice
// restores the original data.
func (b *Buffer) XORKeyStream(data []byte, gen func(block []byte)) {
	b.xorKeyStream(data, 1, gen, nil)
}

// XORKeyStreamGroups is XORKeyStream for lane-parallel ciphers that produce
// keystream par blocks at a time. While at least par whole blocks of data
// remain, genGroup fills a run of exactly par blocks in one call; stragglers
// and the tail fall back to gen. par must be positive; with par == 1 only
// gen is used and genGroup may be nil.
func (b *Buffer) XORKeyStreamGroups(data []byte, par int, gen func(block []byte), genGroup func(group []byte)) {
	if par <= 0 {
		panic("blockbuf/blockbuffer: non-positive group size")
	}
	b.xorKeyStream(data, par, gen, genGroup)
}

func (b *Buffer) xorKeyStream(data []byte, par int, gen func(block []byte), genGroup func(group []byte)) {
	size := len(b.buf)

	// Consume keystream retained from a previous call.
	if b.pos != 0 {
		n := xorBytes(data, data, b.buf[b.pos:])
		data = data[n:]
		b.pos += n
		if b.pos == size {
			b.pos = 0
		}
		if len(data) == 0 {
			return
		}
	}

	// Group path: par blocks of keystream per callback.
	if par > 1 && len(data) >= par*size {
		ks := make([]byte, par*size)
		for len(data) >= par*size {
			genGroup(ks)
			xorBytes(data, data, ks)
			data = data[par*size:]
		}
	}

	// Whole single blocks.
	for len(data) >= size {
		gen(b.buf)
		xorBytes(data, data, b.buf)
		data = data[size:]
	}

	// Sub-block tail: generate one more block, use a prefix of it and keep
	// the rest for the next call.
	if len(data) > 0 {
		gen(b.buf)
		b.pos = xorBytes(data, data, b.buf)
	}
}

// xorBytes sets dst[i] = a[i] ^ b[i] for i up to the shortest argument and
// returns the number of bytes written.
func xorBytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}
