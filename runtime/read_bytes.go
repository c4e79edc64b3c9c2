package nbt

import (
	"encoding/binary"
	"math"
)

var le = binary.LittleEndian

// ReadUint8Bytes reads a single byte.
func ReadUint8Bytes(b []byte) (uint8, []byte, error) {
	if len(b) < 1 {
		return 0, b, ErrShortBytes
	}
	return b[0], b[1:], nil
}

// ReadUint16Bytes reads a little-endian uint16.
func ReadUint16Bytes(b []byte) (uint16, []byte, error) {
	if len(b) < 2 {
		return 0, b, ErrShortBytes
	}
	return le.Uint16(b), b[2:], nil
}

// ReadUint32Bytes reads a little-endian uint32.
func ReadUint32Bytes(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, b, ErrShortBytes
	}
	return le.Uint32(b), b[4:], nil
}

// ReadInt32Bytes reads a little-endian two's-complement int32.
func ReadInt32Bytes(b []byte) (int32, []byte, error) {
	v, o, err := ReadUint32Bytes(b)
	return int32(v), o, err
}

// ReadInt64Bytes reads a little-endian two's-complement int64.
func ReadInt64Bytes(b []byte) (int64, []byte, error) {
	if len(b) < 8 {
		return 0, b, ErrShortBytes
	}
	return int64(le.Uint64(b)), b[8:], nil
}

// ReadFloat32Bytes reads a little-endian IEEE-754 binary32.
func ReadFloat32Bytes(b []byte) (float32, []byte, error) {
	v, o, err := ReadUint32Bytes(b)
	return math.Float32frombits(v), o, err
}

// ReadStringBytes reads a length-prefixed string: a little-endian uint16
// byte count followed by that many bytes of nominal UTF-8. Malformed
// sequences are replaced with U+FFFD; string decoding never fails on
// content, only on truncation.
func ReadStringBytes(b []byte) (string, []byte, error) {
	n, o, err := ReadUint16Bytes(b)
	if err != nil {
		return "", b, err
	}
	if len(o) < int(n) {
		return "", b, ErrShortBytes
	}
	return lossyString(o[:n]), o[n:], nil
}

// ReadTagTypeBytes reads a single byte and maps it to a TagType. Bytes
// outside the assigned set {0,1,3,4,5,8,9,10} yield InvalidTagTypeError
// carrying the offending byte.
func ReadTagTypeBytes(b []byte) (TagType, []byte, error) {
	c, o, err := ReadUint8Bytes(b)
	if err != nil {
		return TagEnd, b, err
	}
	t := TagType(c)
	if !t.Valid() {
		return TagEnd, b, InvalidTagTypeError{Byte: c}
	}
	return t, o, nil
}
