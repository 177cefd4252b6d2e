package blockbuffer_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/kargakis/blockbuf/pkg/blockbuffer"
)

// collect returns a compress callback that appends a copy of every emitted
// block to dst. Blocks must be copied: they alias storage that is reused.
func collect(dst *[][]byte) func([]byte) {
	return func(block []byte) {
		*dst = append(*dst, append([]byte(nil), block...))
	}
}

func pattern(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i * 7)
	}
	return p
}

func TestInput(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		writes    []int
		expBlocks int
		expPos    int
	}{
		{
			name:      "empty input is a no-op",
			size:      64,
			writes:    []int{0},
			expBlocks: 0,
			expPos:    0,
		},
		{
			name:      "sub-block input is buffered",
			size:      64,
			writes:    []int{63},
			expBlocks: 0,
			expPos:    63,
		},
		{
			name:      "exact fill flushes once and resets",
			size:      64,
			writes:    []int{64},
			expBlocks: 1,
			expPos:    0,
		},
		{
			name:      "leftover completed across writes",
			size:      64,
			writes:    []int{70, 58},
			expBlocks: 2,
			expPos:    0,
		},
		{
			name:      "multi-block write emits every whole block",
			size:      32,
			writes:    []int{100},
			expBlocks: 3,
			expPos:    4,
		},
		{
			name:      "exact completion of leftover",
			size:      16,
			writes:    []int{10, 6},
			expBlocks: 1,
			expPos:    0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := blockbuffer.New(test.size)
			var blocks [][]byte
			var fed []byte
			for _, w := range test.writes {
				p := pattern(w)
				fed = append(fed, p...)
				buf.Input(p, collect(&blocks))
			}
			if len(blocks) != test.expBlocks {
				t.Errorf("expected %d blocks, got %d", test.expBlocks, len(blocks))
			}
			if buf.Position() != test.expPos {
				t.Errorf("expected cursor at %d, got %d", test.expPos, buf.Position())
			}
			// Emitted blocks concatenated must be a prefix of the input.
			got := bytes.Join(blocks, nil)
			if !bytes.Equal(got, fed[:len(got)]) {
				t.Errorf("emitted blocks do not match input prefix")
			}
		})
	}
}

func TestInputSplitEquivalence(t *testing.T) {
	const size = 32
	rnd := rand.New(rand.NewSource(1))
	msg := make([]byte, 517)
	rnd.Read(msg)

	whole := blockbuffer.New(size)
	var wholeBlocks [][]byte
	whole.Input(msg, collect(&wholeBlocks))

	for trial := 0; trial < 50; trial++ {
		chunked := blockbuffer.New(size)
		var chunkedBlocks [][]byte
		rest := msg
		for len(rest) > 0 {
			n := rnd.Intn(len(rest) + 1)
			chunked.Input(rest[:n], collect(&chunkedBlocks))
			rest = rest[n:]
		}

		if !bytes.Equal(bytes.Join(wholeBlocks, nil), bytes.Join(chunkedBlocks, nil)) {
			t.Fatalf("trial %d: chunked feeding emitted different blocks", trial)
		}
		wholeState, _ := whole.MarshalBinary()
		chunkedState, _ := chunked.MarshalBinary()
		if !bytes.Equal(wholeState, chunkedState) {
			t.Fatalf("trial %d: chunked feeding left different buffer state", trial)
		}
	}
}

func TestCursorInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	sizes := []int{1, 8, 31, 64}
	for _, size := range sizes {
		buf := blockbuffer.New(size)
		lengths := []int{0, 1, size - 1, size, size + 1, 3*size + 5}
		discard := func([]byte) {}
		for i := 0; i < 500; i++ {
			n := lengths[rnd.Intn(len(lengths))]
			p := make([]byte, n)
			rnd.Read(p)
			switch rnd.Intn(4) {
			case 0:
				buf.Input(p, discard)
			case 1:
				buf.InputBlocks(p, func(blockbuffer.Blocks) {})
			case 2:
				buf.XORKeyStream(p, func(block []byte) { rnd.Read(block) })
			case 3:
				// The 8-byte suffix cannot fit blocks smaller than itself.
				if size >= 8 {
					buf.LenPaddingBE(uint64(n), discard)
				} else {
					buf.Input(p, discard)
				}
			}
			if buf.Position() < 0 || buf.Position() >= size {
				t.Fatalf("size %d: cursor %d out of range after op %d", size, buf.Position(), i)
			}
			if buf.Remaining() != size-buf.Position() {
				t.Fatalf("size %d: remaining %d inconsistent with cursor %d", size, buf.Remaining(), buf.Position())
			}
		}
	}
}

func TestClone(t *testing.T) {
	buf := blockbuffer.New(16)
	buf.Input(pattern(10), func([]byte) {})

	clone := buf.Clone()
	if clone.Position() != buf.Position() || clone.Size() != buf.Size() {
		t.Fatalf("clone state differs: pos %d vs %d", clone.Position(), buf.Position())
	}

	// Writes to the original must not leak into the clone.
	buf.Input(pattern(3), func([]byte) {})
	if clone.Position() != 10 {
		t.Errorf("expected clone cursor to stay at 10, got %d", clone.Position())
	}
	origState, _ := buf.MarshalBinary()
	cloneState, _ := clone.MarshalBinary()
	if bytes.Equal(origState, cloneState) {
		t.Error("expected diverged states after writing to the original")
	}
}

func TestReset(t *testing.T) {
	buf := blockbuffer.New(16)
	buf.Input(pattern(10), func([]byte) {})
	buf.Reset()
	if buf.Position() != 0 {
		t.Errorf("expected cursor at 0 after reset, got %d", buf.Position())
	}
	if buf.Remaining() != 16 {
		t.Errorf("expected 16 bytes remaining after reset, got %d", buf.Remaining())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	buf := blockbuffer.New(16)
	buf.Input(pattern(10), func([]byte) {})

	state, err := buf.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored blockbuffer.Buffer
	if err := restored.UnmarshalBinary(state); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.Size() != 16 || restored.Position() != 10 {
		t.Fatalf("restored wrong state: size %d pos %d", restored.Size(), restored.Position())
	}

	// Both must emit the same block when completed with the same bytes.
	var a, bb [][]byte
	buf.Input(pattern(6), collect(&a))
	restored.Input(pattern(6), collect(&bb))
	if !bytes.Equal(bytes.Join(a, nil), bytes.Join(bb, nil)) {
		t.Error("restored buffer emitted a different block")
	}

	mismatched := blockbuffer.New(32)
	if err := mismatched.UnmarshalBinary(state); err == nil {
		t.Error("expected an error restoring into a buffer of different size")
	}
	var empty blockbuffer.Buffer
	if err := empty.UnmarshalBinary([]byte("bogus")); err == nil {
		t.Error("expected an error restoring bogus state")
	}
}

func TestNewPanicsOnInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for block size %d", size)
				}
			}()
			blockbuffer.New(size)
		}()
	}
}
