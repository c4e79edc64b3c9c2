package nbt

import "math"

// Test-only encoders. The package deliberately ships no serializer, but
// round-trip tests and fixtures need one; any future public encoder must
// satisfy decode(encode(v)) == v, which TestRoundTripLeafValues pins down
// for these helpers.

func appendHeader(b []byte, version, length int32) []byte {
	b = le.AppendUint32(b, uint32(version))
	return le.AppendUint32(b, uint32(length))
}

func appendValue(b []byte, v Value) []byte {
	switch x := v.(type) {
	case Byte:
		return append(b, byte(x))
	case Int32:
		return le.AppendUint32(b, uint32(x))
	case Int64:
		return le.AppendUint64(b, uint64(x))
	case Float32:
		return le.AppendUint32(b, math.Float32bits(float32(x)))
	case String:
		return appendString(b, string(x))
	case List:
		b = append(b, byte(x.Elem))
		b = le.AppendUint32(b, uint32(len(x.Items)))
		for _, item := range x.Items {
			b = appendValue(b, item)
		}
		return b
	case Compound:
		for _, child := range x {
			b = appendTag(b, child)
		}
		return appendEnd(b)
	default:
		panic("appendValue: unhandled value")
	}
}

func appendTag(b []byte, t Tag) []byte {
	b = append(b, byte(t.Type))
	if t.Type == TagEnd {
		return b
	}
	b = appendString(b, t.Key)
	return appendValue(b, t.Value)
}

func appendString(b []byte, s string) []byte {
	b = le.AppendUint16(b, uint16(len(s)))
	return append(b, s...)
}

func appendEnd(b []byte) []byte { return append(b, byte(TagEnd)) }

// worldFixture builds a small but representative level.dat image: a few
// scalar tags plus a nested compound and a list, the shape real world
// metadata takes.
func worldFixture() (*Document, []byte) {
	doc := &Document{
		Version:       8,
		PayloadLength: 0x200,
		Tags: []Tag{
			{Type: TagString, Key: "LevelName", Value: String("My World")},
			{Type: TagInt32, Key: "GameType", Value: Int32(1)},
			{Type: TagInt64, Key: "Time", Value: Int64(1234567890123)},
			{Type: TagFloat32, Key: "rainLevel", Value: Float32(0.25)},
			{Type: TagByte, Key: "spawnMobs", Value: Byte(1)},
			{Type: TagCompound, Key: "abilities", Value: Compound{
				{Type: TagByte, Key: "flying", Value: Byte(0)},
				{Type: TagFloat32, Key: "walkSpeed", Value: Float32(0.1)},
			}},
			{Type: TagList, Key: "lastOpenedPacks", Value: List{Elem: TagString, Items: []Value{
				String("vanilla"),
				String("chemistry"),
			}}},
		},
	}

	b := appendHeader(nil, doc.Version, doc.PayloadLength)
	for _, t := range doc.Tags {
		b = appendTag(b, t)
	}
	b = appendEnd(b)
	return doc, b
}
