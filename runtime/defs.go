// Package nbt decodes the little-endian, length-prefixed NBT variant used
// by Bedrock-style level.dat files into an in-memory tree of typed values.
//
// This package defines two "families" of functions:
//   - ReadXxxBytes() reads an object from a []byte and returns the remaining bytes.
//   - (*Decoder).ReadXxx() reads an object from a buffered *Decoder type,
//     which additionally carries decode policy (strictness, depth limits).
//
// A level.dat document is an 8-byte header (storage version and payload
// length, both int32) followed by a stream of tags terminated by an End
// tag. The supported tag grammar is a deliberate subset: type codes 2, 6
// and 7 (Short, Double and ByteArray in the wider NBT family) do not occur
// in this variant and are rejected as invalid.
//
// Text on the wire is nominally UTF-8 but is decoded leniently: malformed
// byte sequences are replaced with U+FFFD rather than failing the decode.
// Files in the wild carry such keys; rejecting them would change the set
// of accepted inputs.
package nbt

import "strconv"

const (
	// maxDepthDefault bounds List/Compound nesting for the package-level
	// ReadXxxBytes functions. Nesting depth in the input becomes call
	// depth during decode, so adversarial data could otherwise exhaust
	// the stack. Use (*Decoder).SetMaxDepth to tune the limit.
	maxDepthDefault = 512

	// headerSize is the fixed document header: version int32 + payload
	// length int32, both little-endian.
	headerSize = 8
)

// TagType is the one-byte discriminant identifying a tag's value shape.
type TagType byte

// Tag type codes as they appear on the wire. The gaps are real: codes
// 2, 6 and 7 are unassigned in this format variant.
const (
	TagEnd      TagType = 0  // terminator; no key, no value
	TagByte     TagType = 1  // uint8
	TagInt32    TagType = 3  // int32, little-endian
	TagInt64    TagType = 4  // int64, little-endian
	TagFloat32  TagType = 5  // IEEE-754 binary32, little-endian
	TagString   TagType = 8  // uint16 length + UTF-8 bytes (lossy)
	TagList     TagType = 9  // element type + uint32 count + bare values
	TagCompound TagType = 10 // child tags terminated by TagEnd
)

// Valid reports whether t is one of the eight assigned tag type codes.
func (t TagType) Valid() bool {
	switch t {
	case TagEnd, TagByte, TagInt32, TagInt64, TagFloat32, TagString, TagList, TagCompound:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "end"
	case TagByte:
		return "byte"
	case TagInt32:
		return "int32"
	case TagInt64:
		return "int64"
	case TagFloat32:
		return "float32"
	case TagString:
		return "string"
	case TagList:
		return "list"
	case TagCompound:
		return "compound"
	default:
		return "<invalid 0x" + strconv.FormatUint(uint64(t), 16) + ">"
	}
}
