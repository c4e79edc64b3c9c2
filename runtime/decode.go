package nbt

// ReadValueBytes reads the payload of a tag of type t and returns the
// decoded Value along with the remaining bytes. List and Compound
// payloads recurse; nesting is capped at the package default depth limit
// (use a Decoder to tune it). Reading a value for TagEnd always fails
// with ErrEndValue: the terminator has no payload on the wire.
func ReadValueBytes(b []byte, t TagType) (Value, []byte, error) {
	return readValue(b, t, maxDepthDefault)
}

// ReadTagBytes reads one complete tag: a type code, then (unless the
// type is End) a key and a payload. Nesting is capped at the package
// default depth limit.
func ReadTagBytes(b []byte) (Tag, []byte, error) {
	return readTag(b, maxDepthDefault)
}

// readValue decodes a payload of type t. depth is the remaining nesting
// budget; it is spent entering Lists and Compounds so that input nesting
// cannot translate into unbounded call-stack depth.
func readValue(b []byte, t TagType, depth int) (Value, []byte, error) {
	switch t {
	case TagEnd:
		return nil, b, ErrEndValue

	case TagByte:
		v, o, err := ReadUint8Bytes(b)
		if err != nil {
			return nil, b, err
		}
		return Byte(v), o, nil

	case TagInt32:
		v, o, err := ReadInt32Bytes(b)
		if err != nil {
			return nil, b, err
		}
		return Int32(v), o, nil

	case TagInt64:
		v, o, err := ReadInt64Bytes(b)
		if err != nil {
			return nil, b, err
		}
		return Int64(v), o, nil

	case TagFloat32:
		v, o, err := ReadFloat32Bytes(b)
		if err != nil {
			return nil, b, err
		}
		return Float32(v), o, nil

	case TagString:
		v, o, err := ReadStringBytes(b)
		if err != nil {
			return nil, b, err
		}
		return String(v), o, nil

	case TagList:
		if depth <= 0 {
			return nil, b, ErrMaxDepthExceeded
		}
		elem, o, err := ReadTagTypeBytes(b)
		if err != nil {
			return nil, b, err
		}
		count, o, err := ReadUint32Bytes(o)
		if err != nil {
			return nil, b, err
		}
		// The count field is taken verbatim; lists have no terminator
		// to cross-check it against. Capacity is not preallocated from
		// it so a forged count cannot demand memory the input does not
		// back with bytes.
		items := []Value{}
		for i := uint32(0); i < count; i++ {
			var v Value
			v, o, err = readValue(o, elem, depth-1)
			if err != nil {
				return nil, b, err
			}
			items = append(items, v)
		}
		return List{Elem: elem, Items: items}, o, nil

	case TagCompound:
		if depth <= 0 {
			return nil, b, ErrMaxDepthExceeded
		}
		children := Compound{}
		o := b
		for {
			var child Tag
			var err error
			child, o, err = readTag(o, depth-1)
			if err != nil {
				// A partially built compound is discarded, not
				// returned; errors inside a tag propagate unchanged.
				return nil, b, err
			}
			if child.IsEnd() {
				return children, o, nil
			}
			children = append(children, child)
		}

	default:
		return nil, b, InvalidTagTypeError{Byte: uint8(t)}
	}
}

func readTag(b []byte, depth int) (Tag, []byte, error) {
	t, o, err := ReadTagTypeBytes(b)
	if err != nil {
		return Tag{}, b, err
	}
	if t == TagEnd {
		// The terminator has no key or value on the wire.
		return Tag{Type: TagEnd}, o, nil
	}
	key, o, err := ReadStringBytes(o)
	if err != nil {
		return Tag{}, b, err
	}
	v, o, err := readValue(o, t, depth)
	if err != nil {
		return Tag{}, b, err
	}
	return Tag{Type: t, Key: key, Value: v}, o, nil
}
