package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kargakis/blockbuf/pkg/chainsum"
	"github.com/kargakis/blockbuf/pkg/fs"
)

var (
	filePath = flag.String("f", "", "Path to the file to checksum")
	fsType   = flag.String("fs", "os", "Filesystem to read from (os or mem)")
)

func main() {
	flag.Parse()

	if *filePath == "" {
		fmt.Println("a file to checksum is required (-f)")
		os.Exit(1)
	}

	filesystem, err := fs.GetFs(*fsType)
	if err != nil {
		fmt.Printf("cannot set up filesystem: %v\n", err)
		os.Exit(1)
	}

	file, err := filesystem.Open(*filePath)
	if err != nil {
		fmt.Printf("cannot open %s: %v\n", *filePath, err)
		os.Exit(1)
	}
	defer file.Close()

	h := chainsum.New()
	if _, err := io.Copy(h, file); err != nil {
		fmt.Printf("cannot checksum %s: %v\n", *filePath, err)
		os.Exit(1)
	}

	fmt.Printf("%s  %s\n", hex.EncodeToString(h.Sum(nil)), *filePath)
}
