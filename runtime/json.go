package nbt

import (
	"encoding/json"
	"math"
	"strconv"
)

// AppendJSON appends a JSON rendering of the document to b. Compounds
// become objects with their keys in wire order; a compound with repeated
// keys renders an object with repeated members, which is legal JSON but
// ambiguous to most readers, exactly as it is on the wire. Non-finite
// floats have no JSON representation and render as null.
func AppendJSON(b []byte, doc *Document) []byte {
	b = append(b, `{"version":`...)
	b = strconv.AppendInt(b, int64(doc.Version), 10)
	b = append(b, `,"payloadLength":`...)
	b = strconv.AppendInt(b, int64(doc.PayloadLength), 10)
	b = append(b, `,"tags":`...)
	b = appendJSONTags(b, doc.Tags)
	return append(b, '}')
}

// MarshalJSON implements json.Marshaler.
func (doc *Document) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, doc), nil
}

// MarshalJSON implements json.Marshaler. The End terminator, which has
// no value, renders as null.
func (t Tag) MarshalJSON() ([]byte, error) {
	b := []byte{'{'}
	b = appendJSONString(b, t.Key)
	b = append(b, ':')
	b = appendJSONValue(b, t.Value)
	return append(b, '}'), nil
}

func appendJSONTags(b []byte, tags []Tag) []byte {
	b = append(b, '{')
	for i, t := range tags {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendJSONString(b, t.Key)
		b = append(b, ':')
		b = appendJSONValue(b, t.Value)
	}
	return append(b, '}')
}

func appendJSONValue(b []byte, v Value) []byte {
	switch x := v.(type) {
	case Byte:
		return strconv.AppendUint(b, uint64(x), 10)
	case Int32:
		return strconv.AppendInt(b, int64(x), 10)
	case Int64:
		return strconv.AppendInt(b, int64(x), 10)
	case Float32:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(b, "null"...)
		}
		return strconv.AppendFloat(b, f, 'g', -1, 32)
	case String:
		return appendJSONString(b, string(x))
	case List:
		b = append(b, '[')
		for i, item := range x.Items {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendJSONValue(b, item)
		}
		return append(b, ']')
	case Compound:
		return appendJSONTags(b, x)
	default:
		return append(b, "null"...)
	}
}

// appendJSONString defers to encoding/json for escaping; the strings
// here may contain U+FFFD and control bytes from lossy decoding.
func appendJSONString(b []byte, s string) []byte {
	enc, err := json.Marshal(s)
	if err != nil {
		// Marshalling a string cannot fail; keep the output well formed
		// if it somehow does.
		return append(b, `""`...)
	}
	return append(b, enc...)
}
