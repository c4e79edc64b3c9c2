package nbt

// SkipValueBytes advances past the payload of a tag of type t without
// building a Value, returning the remaining bytes. It applies the same
// grammar (and the same depth limit) as ReadValueBytes.
func SkipValueBytes(b []byte, t TagType) ([]byte, error) {
	return skipValue(b, t, maxDepthDefault)
}

// SkipTagBytes advances past one complete tag without building it.
func SkipTagBytes(b []byte) ([]byte, error) {
	return skipTag(b, maxDepthDefault)
}

// ValidDocument reports whether b is a structurally complete document:
// a full header and a top-level tag stream that reaches an End tag (or
// the end of the buffer) without a decode fault. It never allocates the
// tree. Note that the default document reader accepts more than this:
// its lenient policy turns trailing faults into silent truncation.
func ValidDocument(b []byte) bool {
	if len(b) < headerSize {
		return false
	}
	b = b[headerSize:]
	for len(b) > 0 {
		t, rest, err := ReadTagTypeBytes(b)
		if err != nil {
			return false
		}
		if t == TagEnd {
			return true
		}
		b, err = skipNamedTag(rest, t, maxDepthDefault)
		if err != nil {
			return false
		}
	}
	return true
}

func skipValue(b []byte, t TagType, depth int) ([]byte, error) {
	switch t {
	case TagEnd:
		return b, ErrEndValue
	case TagByte:
		if len(b) < 1 {
			return b, ErrShortBytes
		}
		return b[1:], nil
	case TagInt32, TagFloat32:
		if len(b) < 4 {
			return b, ErrShortBytes
		}
		return b[4:], nil
	case TagInt64:
		if len(b) < 8 {
			return b, ErrShortBytes
		}
		return b[8:], nil
	case TagString:
		n, o, err := ReadUint16Bytes(b)
		if err != nil {
			return b, err
		}
		if len(o) < int(n) {
			return b, ErrShortBytes
		}
		return o[n:], nil
	case TagList:
		if depth <= 0 {
			return b, ErrMaxDepthExceeded
		}
		elem, o, err := ReadTagTypeBytes(b)
		if err != nil {
			return b, err
		}
		count, o, err := ReadUint32Bytes(o)
		if err != nil {
			return b, err
		}
		for i := uint32(0); i < count; i++ {
			o, err = skipValue(o, elem, depth-1)
			if err != nil {
				return b, err
			}
		}
		return o, nil
	case TagCompound:
		if depth <= 0 {
			return b, ErrMaxDepthExceeded
		}
		o := b
		for {
			t, rest, err := ReadTagTypeBytes(o)
			if err != nil {
				return b, err
			}
			if t == TagEnd {
				return rest, nil
			}
			o, err = skipNamedTag(rest, t, depth-1)
			if err != nil {
				return b, err
			}
		}
	default:
		return b, InvalidTagTypeError{Byte: uint8(t)}
	}
}

func skipTag(b []byte, depth int) ([]byte, error) {
	t, o, err := ReadTagTypeBytes(b)
	if err != nil {
		return b, err
	}
	if t == TagEnd {
		return o, nil
	}
	return skipNamedTag(o, t, depth)
}

// skipNamedTag skips the key and payload of a tag whose type byte has
// already been consumed.
func skipNamedTag(b []byte, t TagType, depth int) ([]byte, error) {
	n, o, err := ReadUint16Bytes(b)
	if err != nil {
		return b, err
	}
	if len(o) < int(n) {
		return b, ErrShortBytes
	}
	return skipValue(o[n:], t, depth)
}
