package nbt

import (
	"strconv"
)

// Diag renders a document in a human-readable diagnostic notation: the
// two header fields followed by one line per top-level tag, with nested
// compounds and lists indented. The notation is for humans and logs; it
// is not meant to be parsed back.
func Diag(doc *Document) string {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	bb.WriteString("version: ")
	bb.WriteString(strconv.FormatInt(int64(doc.Version), 10))
	bb.WriteString("\npayload length: ")
	bb.WriteString(strconv.FormatInt(int64(doc.PayloadLength), 10))
	bb.WriteByte('\n')
	for _, tag := range doc.Tags {
		diagTag(bb, tag, 0)
	}
	return bb.String()
}

// DiagTag renders a single tag (and its subtree) in diagnostic notation.
func DiagTag(tag Tag) string {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	diagTag(bb, tag, 0)
	return bb.String()
}

func diagTag(bb *ByteBuffer, tag Tag, indent int) {
	writeIndent(bb, indent)
	bb.WriteString(tag.Type.String())
	bb.WriteByte(' ')
	bb.WriteString(strconv.Quote(tag.Key))
	switch v := tag.Value.(type) {
	case Compound:
		bb.WriteString(" {\n")
		for _, child := range v {
			diagTag(bb, child, indent+1)
		}
		writeIndent(bb, indent)
		bb.WriteString("}\n")
	default:
		bb.WriteString(" = ")
		diagValue(bb, tag.Value, indent)
		bb.WriteByte('\n')
	}
}

func diagValue(bb *ByteBuffer, v Value, indent int) {
	switch x := v.(type) {
	case Byte:
		bb.WriteString(strconv.FormatUint(uint64(x), 10))
	case Int32:
		bb.WriteString(strconv.FormatInt(int64(x), 10))
	case Int64:
		bb.WriteString(strconv.FormatInt(int64(x), 10))
	case Float32:
		bb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case String:
		bb.WriteString(strconv.Quote(string(x)))
	case List:
		bb.WriteString(x.Elem.String())
		bb.WriteByte('[')
		for i, item := range x.Items {
			if i > 0 {
				bb.WriteString(", ")
			}
			diagValue(bb, item, indent)
		}
		bb.WriteByte(']')
	case Compound:
		// A compound inside a list has no key line of its own.
		bb.WriteString("{\n")
		for _, child := range x {
			diagTag(bb, child, indent+1)
		}
		writeIndent(bb, indent)
		bb.WriteByte('}')
	case nil:
		bb.WriteString("<none>")
	}
}

func writeIndent(bb *ByteBuffer, n int) {
	for i := 0; i < n; i++ {
		bb.WriteString("  ")
	}
}
