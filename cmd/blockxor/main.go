package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/crypto/chacha20"

	"github.com/kargakis/blockbuf/pkg/blockbuffer"
	"github.com/kargakis/blockbuf/pkg/fs"
)

var (
	filePath = flag.String("f", "", "File to encrypt or decrypt in place")
	keyHex   = flag.String("key", "", "Hex-encoded 32-byte key")
	nonceHex = flag.String("nonce", "", "Hex-encoded 12-byte nonce")
	fsType   = flag.String("fs", "os", "Filesystem to operate on (os or mem)")
)

// blockxor applies a ChaCha20 keystream to a file through the buffer's XOR
// streaming path. XOR is self-inverse, so running the command twice with the
// same key and nonce restores the file.
func main() {
	flag.Parse()

	if *filePath == "" || *keyHex == "" || *nonceHex == "" {
		fmt.Println("a file (-f), key (-key) and nonce (-nonce) are required")
		os.Exit(1)
	}

	key, err := hex.DecodeString(*keyHex)
	if err != nil || len(key) != chacha20.KeySize {
		fmt.Printf("key must be %d hex-encoded bytes\n", chacha20.KeySize)
		os.Exit(1)
	}
	nonce, err := hex.DecodeString(*nonceHex)
	if err != nil || len(nonce) != chacha20.NonceSize {
		fmt.Printf("nonce must be %d hex-encoded bytes\n", chacha20.NonceSize)
		os.Exit(1)
	}

	filesystem, err := fs.GetFs(*fsType)
	if err != nil {
		fmt.Printf("cannot set up filesystem: %v\n", err)
		os.Exit(1)
	}

	data, err := afero.ReadFile(filesystem, *filePath)
	if err != nil {
		fmt.Printf("cannot read %s: %v\n", *filePath, err)
		os.Exit(1)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		fmt.Printf("cannot set up cipher: %v\n", err)
		os.Exit(1)
	}

	// ChaCha20 produces keystream in 64-byte blocks.
	buf := blockbuffer.New(64)
	buf.XORKeyStream(data, func(block []byte) {
		// Fill the block with raw keystream bytes.
		for i := range block {
			block[i] = 0
		}
		stream.XORKeyStream(block, block)
	})

	if err := afero.WriteFile(filesystem, *filePath, data, 0644); err != nil {
		fmt.Printf("cannot write %s: %v\n", *filePath, err)
		os.Exit(1)
	}
	fmt.Printf("processed %d bytes\n", len(data))
}
