package nbt

import (
	"errors"
	"strconv"
)

var (
	// ErrShortBytes is returned when the slice being decoded is too
	// short to contain the object being read.
	ErrShortBytes error = errShort{}

	// ErrEndValue is returned when a value decode is requested for the
	// End tag type. The terminator has no value representation on the
	// wire; asking for one always indicates a malformed stream or a
	// caller bug.
	ErrEndValue error = errEndValue{}

	// ErrMaxDepthExceeded is returned when List/Compound nesting exceeds
	// the configured depth limit. This should only realistically be seen
	// on adversarial data trying to exhaust the stack.
	ErrMaxDepthExceeded error = errDepth{}
)

// Error is the interface satisfied by all errors that originate from
// this package.
type Error interface {
	error

	// Format reports whether the error describes malformed input
	// (an unassigned tag type code, a value decode for End, a depth
	// violation) as opposed to an underlying I/O shortfall such as a
	// truncated buffer.
	Format() bool
}

// IsFormatError reports whether err is a format violation rather than
// an I/O shortfall. Truncation (ErrShortBytes and wrapped read errors)
// is not a format error: the bytes present were well-formed, there were
// just not enough of them.
func IsFormatError(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Format()
	}
	return false
}

type errShort struct{}

func (e errShort) Error() string { return "nbt: too few bytes left to read object" }
func (e errShort) Format() bool  { return false }

type errEndValue struct{}

func (e errEndValue) Error() string { return "nbt: End tag has no value" }
func (e errEndValue) Format() bool  { return true }

// InvalidTagTypeError is returned when a byte read where a tag type code
// is expected is not one of the eight assigned codes. The offending byte
// is carried so callers can report the exact wire content.
type InvalidTagTypeError struct {
	Byte uint8
}

// Error implements the error interface.
func (e InvalidTagTypeError) Error() string {
	return "nbt: invalid tag type 0x" + strconv.FormatUint(uint64(e.Byte), 16)
}

// Format reports 'true' for InvalidTagTypeError.
func (e InvalidTagTypeError) Format() bool { return true }

type errDepth struct{}

func (e errDepth) Error() string { return "nbt: max depth exceeded" }
func (e errDepth) Format() bool  { return true }
