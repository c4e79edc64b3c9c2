package nbt

import (
	"io"
)

// Decoder provides a minimal slice-based decoder over an in-memory
// buffer. Unlike the package-level ReadXxxBytes functions, it carries
// configurable decode policy: the nesting depth limit and the top-level
// error policy for documents.
type Decoder struct {
	buf      []byte
	strict   bool
	maxDepth int
}

// NewDecoderBytes constructs a Decoder over the provided buffer.
func NewDecoderBytes(b []byte) *Decoder {
	return &Decoder{buf: b, maxDepth: maxDepthDefault}
}

// SetStrictDecode controls the top-level error policy of ReadDocument.
//
// Readers of this format have historically treated any decode failure
// in the top-level tag loop as a normal end of input: truncated or
// corrupted files decode to whatever tags were read before the fault,
// with no error. That leniency is the default here for compatibility.
// With strict decoding enabled, top-level failures propagate to the
// caller instead.
func (d *Decoder) SetStrictDecode(strict bool) { d.strict = strict }

// SetMaxDepth configures the List/Compound nesting limit. A value of
// zero or less restores the package default. When exceeded,
// ErrMaxDepthExceeded is returned.
func (d *Decoder) SetMaxDepth(max int) {
	if max <= 0 {
		max = maxDepthDefault
	}
	d.maxDepth = max
}

// Remaining returns the unread portion of the underlying buffer.
func (d *Decoder) Remaining() []byte { return d.buf }

// ReadTagType reads a tag type code and advances the buffer.
func (d *Decoder) ReadTagType() (TagType, error) {
	t, rest, err := ReadTagTypeBytes(d.buf)
	if err != nil {
		return TagEnd, err
	}
	d.buf = rest
	return t, nil
}

// ReadValue reads the payload of a tag of type t and advances the buffer.
func (d *Decoder) ReadValue(t TagType) (Value, error) {
	v, rest, err := readValue(d.buf, t, d.maxDepth)
	if err != nil {
		return nil, err
	}
	d.buf = rest
	return v, nil
}

// ReadTag reads one complete tag and advances the buffer.
func (d *Decoder) ReadTag() (Tag, error) {
	tag, rest, err := readTag(d.buf, d.maxDepth)
	if err != nil {
		return Tag{}, err
	}
	d.buf = rest
	return tag, nil
}

// ReadDocument reads the 8-byte header and then the top-level tag
// stream. The loop ends on an End tag; under the default lenient policy
// it also ends, without error, on any decode failure (see
// SetStrictDecode). Header reads always propagate errors: a file too
// short for its header is broken under either policy.
func (d *Decoder) ReadDocument() (*Document, error) {
	version, rest, err := ReadInt32Bytes(d.buf)
	if err != nil {
		return nil, err
	}
	length, rest, err := ReadInt32Bytes(rest)
	if err != nil {
		return nil, err
	}
	d.buf = rest

	doc := &Document{Version: version, PayloadLength: length, Tags: []Tag{}}
	for {
		tag, err := d.ReadTag()
		if err != nil {
			if d.strict {
				return nil, err
			}
			return doc, nil
		}
		if tag.IsEnd() {
			break
		}
		doc.Tags = append(doc.Tags, tag)
	}
	return doc, nil
}

// DecodeDocumentBytes decodes a complete document from b under the
// default lenient policy.
func DecodeDocumentBytes(b []byte) (*Document, error) {
	return NewDecoderBytes(b).ReadDocument()
}

// ReadDocument reads a complete document from r. Gzip- and
// zlib-compressed inputs are detected by their magic bytes and
// decompressed transparently; anything else is decoded as a raw stream.
func ReadDocument(r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b, err = DecompressBytes(b)
	if err != nil {
		return nil, err
	}
	return DecodeDocumentBytes(b)
}
