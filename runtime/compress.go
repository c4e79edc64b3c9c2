package nbt

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// DecompressBytes inflates b when it starts with a gzip or zlib header
// and returns it unchanged otherwise. level.dat payloads ship raw on
// Bedrock but gzip- or zlib-wrapped in other tool chains; sniffing the
// two magic prefixes lets ReadDocument accept all three without a flag.
func DecompressBytes(b []byte) ([]byte, error) {
	switch {
	case isGzip(b):
		zr, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case isZlib(b):
		zr, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return b, nil
	}
}

func isGzip(b []byte) bool {
	return len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b
}

// isZlib matches the CMF/FLG pairs produced by common deflate levels.
// 0x78 alone is not enough: a raw document whose version starts with
// 0x78 must not be inflated, so the flag byte is checked too.
func isZlib(b []byte) bool {
	if len(b) < 2 || b[0] != 0x78 {
		return false
	}
	switch b[1] {
	case 0x01, 0x5e, 0x9c, 0xda:
		return true
	}
	return false
}
