package nbt

// Interface converts the document to plain Go values suitable for
// re-encoding with generic serializers (CBOR, msgpack, ...): compounds
// become map[string]any, lists []any, leaves their underlying Go types.
//
// Maps do not preserve wire order and collapse repeated keys (the last
// occurrence wins). Use the Document itself, or the JSON renderer, when
// order matters.
func (doc *Document) Interface() map[string]any {
	return map[string]any{
		"version":       doc.Version,
		"payloadLength": doc.PayloadLength,
		"tags":          tagsInterface(doc.Tags),
	}
}

// ValueInterface converts a single value to plain Go values; see
// (*Document).Interface for the mapping and its caveats.
func ValueInterface(v Value) any {
	switch x := v.(type) {
	case Byte:
		return uint8(x)
	case Int32:
		return int32(x)
	case Int64:
		return int64(x)
	case Float32:
		return float32(x)
	case String:
		return string(x)
	case List:
		items := make([]any, len(x.Items))
		for i, item := range x.Items {
			items[i] = ValueInterface(item)
		}
		return items
	case Compound:
		return tagsInterface(x)
	default:
		return nil
	}
}

func tagsInterface(tags []Tag) map[string]any {
	m := make(map[string]any, len(tags))
	for _, t := range tags {
		m[t.Key] = ValueInterface(t.Value)
	}
	return m
}
