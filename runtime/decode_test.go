package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadValueBytesEnd(t *testing.T) {
	// The terminator has no value representation, regardless of what
	// follows in the stream.
	for _, in := range [][]byte{nil, {0x00}, {0x01, 0x02, 0x03}} {
		_, rest, err := ReadValueBytes(in, TagEnd)
		require.ErrorIs(t, err, ErrEndValue)
		require.True(t, IsFormatError(err))
		require.Equal(t, in, rest)
	}
}

func TestReadTagBytesByte(t *testing.T) {
	// type=Byte, key "a", value 5
	tag, rest, err := ReadTagBytes([]byte{0x01, 0x01, 0x00, 'a', 0x05})
	require.NoError(t, err)
	require.Equal(t, Tag{Type: TagByte, Key: "a", Value: Byte(5)}, tag)
	require.Empty(t, rest)
}

func TestReadTagBytesEnd(t *testing.T) {
	tag, rest, err := ReadTagBytes([]byte{0x00, 0xde, 0xad})
	require.NoError(t, err)
	require.True(t, tag.IsEnd())
	require.Equal(t, "", tag.Key)
	require.Nil(t, tag.Value)
	// No key or value is read for the terminator.
	require.Equal(t, []byte{0xde, 0xad}, rest)
}

func TestReadValueBytesList(t *testing.T) {
	// elem=Byte, count=3, items 1 2 3
	v, rest, err := ReadValueBytes([]byte{0x01, 0x03, 0x00, 0x00, 0x00, 1, 2, 3}, TagList)
	require.NoError(t, err)
	require.Equal(t, List{Elem: TagByte, Items: []Value{Byte(1), Byte(2), Byte(3)}}, v)
	require.Empty(t, rest)
}

func TestReadValueBytesEmptyList(t *testing.T) {
	v, _, err := ReadValueBytes([]byte{0x01, 0x00, 0x00, 0x00, 0x00}, TagList)
	require.NoError(t, err)
	require.Equal(t, List{Elem: TagByte, Items: []Value{}}, v)
}

func TestReadValueBytesListShortCount(t *testing.T) {
	// Count claims 4 items but only 2 bytes follow.
	in := []byte{0x01, 0x04, 0x00, 0x00, 0x00, 1, 2}
	_, rest, err := ReadValueBytes(in, TagList)
	require.ErrorIs(t, err, ErrShortBytes)
	require.Equal(t, in, rest)
}

func TestReadValueBytesCompound(t *testing.T) {
	b := appendTag(nil, Tag{Type: TagByte, Key: "x", Value: Byte(7)})
	b = appendTag(b, Tag{Type: TagString, Key: "y", Value: String("z")})
	b = appendEnd(b)

	v, rest, err := ReadValueBytes(b, TagCompound)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, Compound{
		{Type: TagByte, Key: "x", Value: Byte(7)},
		{Type: TagString, Key: "y", Value: String("z")},
	}, v)
}

// A decode error inside a compound child discards the partial compound
// and propagates unchanged.
func TestReadValueBytesCompoundChildError(t *testing.T) {
	b := appendTag(nil, Tag{Type: TagByte, Key: "x", Value: Byte(7)})
	b = append(b, 0x02) // unassigned type code where a child tag starts

	_, rest, err := ReadValueBytes(b, TagCompound)
	require.Equal(t, InvalidTagTypeError{Byte: 0x02}, err)
	require.Equal(t, b, rest)
}

func TestInvalidTypeByteNotCoerced(t *testing.T) {
	// 0x02 (Short elsewhere in the NBT family) is invalid here, in every
	// position a type code can occur.
	_, _, err := ReadTagBytes([]byte{0x02, 0x01, 0x00, 'a', 0x00, 0x00})
	require.Equal(t, InvalidTagTypeError{Byte: 0x02}, err)

	// As a list element type.
	_, _, err = ReadValueBytes([]byte{0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, TagList)
	require.Equal(t, InvalidTagTypeError{Byte: 0x02}, err)
}

func TestRoundTripLeafValues(t *testing.T) {
	leaves := []Value{
		Byte(0), Byte(255),
		Int32(0), Int32(-1), Int32(2147483647), Int32(-2147483648),
		Int64(0), Int64(-1), Int64(9007199254740993),
		Float32(0), Float32(-1.5), Float32(3.14159),
		String(""), String("foo"), String("héllo wörld"),
	}
	for _, want := range leaves {
		b := appendValue(nil, want)
		got, rest, err := ReadValueBytes(b, want.Type())
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, want, got)
	}
}

func TestDecoderMaxDepth(t *testing.T) {
	// A list nested 8 levels deep: each level declares one TagList item.
	b := []byte{}
	for i := 0; i < 8; i++ {
		b = append(b, byte(TagList))
		b = le.AppendUint32(b, 1)
	}
	b = append(b, byte(TagByte))
	b = le.AppendUint32(b, 0)

	dec := NewDecoderBytes(b)
	dec.SetMaxDepth(4)
	_, err := dec.ReadValue(TagList)
	require.ErrorIs(t, err, ErrMaxDepthExceeded)
	require.True(t, IsFormatError(err))

	dec = NewDecoderBytes(b)
	dec.SetMaxDepth(16)
	_, err = dec.ReadValue(TagList)
	require.NoError(t, err)
}

func TestDefaultMaxDepth(t *testing.T) {
	// Nesting just past the package default must fail rather than grow
	// the call stack with the input.
	depth := maxDepthDefault + 8
	b := []byte{}
	for i := 0; i < depth; i++ {
		b = append(b, byte(TagList))
		b = le.AppendUint32(b, 1)
	}
	b = append(b, byte(TagByte))
	b = le.AppendUint32(b, 0)

	_, _, err := ReadValueBytes(b, TagList)
	require.ErrorIs(t, err, ErrMaxDepthExceeded)
}
