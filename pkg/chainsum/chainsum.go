// Package chainsum implements a Merkle–Damgård style checksum whose
// compression function chains SHA-256 over 64-byte blocks:
//
//	h' = SHA-256(h || block)
//
// It exists as the reference consumer of pkg/blockbuffer and shows how an
// incremental digest drives the buffer; it is not a standardized algorithm.
package chainsum

import (
	"crypto/sha256"
	"hash"

	"github.com/kargakis/blockbuf/pkg/blockbuffer"
)

const (
	// Size is the checksum size in bytes.
	Size = sha256.Size
	// BlockSize is the block size the buffer accumulates.
	BlockSize = 64
)

type digest struct {
	chain  [Size]byte
	buf    *blockbuffer.Buffer
	length uint64
}

// New returns a hash.Hash computing the chained-SHA-256 checksum.
func New() hash.Hash {
	d := &digest{buf: blockbuffer.New(BlockSize)}
	d.Reset()
	return d
}

func (d *digest) compress(block []byte) {
	h := sha256.New()
	h.Write(d.chain[:])
	h.Write(block)
	h.Sum(d.chain[:0])
}

func (d *digest) Write(p []byte) (int, error) {
	d.length += uint64(len(p))
	d.buf.Input(p, d.compress)
	return len(p), nil
}

// Sum appends the checksum to in. The digest state is not changed: padding
// and the final compressions run on a clone of the buffer.
func (d *digest) Sum(in []byte) []byte {
	final := *d
	final.buf = d.buf.Clone()
	final.buf.LenPaddingBE(final.length<<3, final.compress)
	return append(in, final.chain[:]...)
}

func (d *digest) Reset() {
	d.chain = [Size]byte{}
	d.buf.Reset()
	d.length = 0
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }
