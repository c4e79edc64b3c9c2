package nbt

// Value is the decoded payload of a tag: one variant per non-terminator
// tag type. The set is closed; external packages cannot add variants, so
// a type switch over Byte, Int32, Int64, Float32, String, List and
// Compound is exhaustive. The End terminator deliberately has no variant:
// "End has no value" is a property of the type system here, not a field
// that happens to be absent.
type Value interface {
	// Type returns the tag type code the value was decoded as.
	Type() TagType

	isValue()
}

// Byte is the payload of a TagByte.
type Byte uint8

// Int32 is the payload of a TagInt32.
type Int32 int32

// Int64 is the payload of a TagInt64.
type Int64 int64

// Float32 is the payload of a TagFloat32.
type Float32 float32

// String is the payload of a TagString. It may contain U+FFFD where the
// wire bytes were not valid UTF-8.
type String string

// List is the payload of a TagList: a homogeneous, counted sequence of
// bare values. Every element was decoded using the single declared
// element type; list elements carry no keys.
type List struct {
	Elem  TagType
	Items []Value
}

// Compound is the payload of a TagCompound: the child tags in wire
// order. The End tag that closed the compound is consumed during decode
// and never appears among the children.
type Compound []Tag

func (Byte) Type() TagType     { return TagByte }
func (Int32) Type() TagType    { return TagInt32 }
func (Int64) Type() TagType    { return TagInt64 }
func (Float32) Type() TagType  { return TagFloat32 }
func (String) Type() TagType   { return TagString }
func (List) Type() TagType     { return TagList }
func (Compound) Type() TagType { return TagCompound }

func (Byte) isValue()     {}
func (Int32) isValue()    {}
func (Int64) isValue()    {}
func (Float32) isValue()  {}
func (String) isValue()   {}
func (List) isValue()     {}
func (Compound) isValue() {}

// Tag is a keyed, typed node in the decoded tree. For the End terminator
// Key is empty and Value is nil; for every other type Value is non-nil.
// A Tag exclusively owns its Value: the decoded structure is a strict
// tree, never a graph with shared or cyclic references.
type Tag struct {
	Type  TagType
	Key   string
	Value Value
}

// IsEnd reports whether the tag is the End terminator.
func (t Tag) IsEnd() bool { return t.Type == TagEnd }

// Document is the top-level decoded unit: the fixed header fields plus
// the top-level tag sequence. A Document is built in one pass from a
// byte source and never mutated afterward.
type Document struct {
	// Version is the storage format version from the header.
	Version int32

	// PayloadLength is the payload length field from the header. It is
	// recorded as read but never validated against the bytes actually
	// consumed; files in the wild disagree with it.
	PayloadLength int32

	// Tags is the top-level tag sequence in wire order.
	Tags []Tag
}
