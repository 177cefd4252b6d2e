// Package padding provides reversible block padding schemes for use with
// blockbuffer.PadWith: each scheme fills the trailing region of a partial
// block and can strip its own padding from a decrypted block again.
package padding

import "errors"

// ErrInvalidPadding is returned by Unpad when the trailing bytes of a block
// do not form a valid pattern for the scheme.
var ErrInvalidPadding = errors.New("blockbuf/padding: invalid padding")

// PKCS7 pads with n copies of the byte n, where n is the number of padding
// bytes. See RFC 5652, section 6.3.
type PKCS7 struct{}

func (PKCS7) Pad(block []byte, pos int) {
	n := byte(len(block) - pos)
	for i := pos; i < len(block); i++ {
		block[i] = n
	}
}

// Unpad returns the block without its PKCS#7 padding.
func (PKCS7) Unpad(block []byte) ([]byte, error) {
	if len(block) == 0 {
		return nil, ErrInvalidPadding
	}
	n := int(block[len(block)-1])
	if n == 0 || n > len(block) {
		return nil, ErrInvalidPadding
	}
	for _, c := range block[len(block)-n:] {
		if int(c) != n {
			return nil, ErrInvalidPadding
		}
	}
	return block[:len(block)-n], nil
}

// ISO7816 pads with a single 0x80 marker followed by zeros, the ISO/IEC
// 7816-4 scheme also used by libsodium.
type ISO7816 struct{}

func (ISO7816) Pad(block []byte, pos int) {
	block[pos] = 0x80
	for i := pos + 1; i < len(block); i++ {
		block[i] = 0
	}
}

// Unpad returns the block contents before the 0x80 marker. Bytes after the
// marker must all be zero.
func (ISO7816) Unpad(block []byte) ([]byte, error) {
	for i := len(block) - 1; i >= 0; i-- {
		switch block[i] {
		case 0x80:
			return block[:i], nil
		case 0x00:
			// keep scanning
		default:
			return nil, ErrInvalidPadding
		}
	}
	return nil, ErrInvalidPadding
}

// Zeros pads with zero bytes. Zero padding is not uniquely reversible when
// the message itself ends in zeros; Unpad trims every trailing zero.
type Zeros struct{}

func (Zeros) Pad(block []byte, pos int) {
	for i := pos; i < len(block); i++ {
		block[i] = 0
	}
}

// Unpad returns the block without trailing zero bytes.
func (Zeros) Unpad(block []byte) ([]byte, error) {
	i := len(block)
	for i > 0 && block[i-1] == 0 {
		i--
	}
	return block[:i], nil
}
