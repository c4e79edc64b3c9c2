package nbt

import (
	"strings"
	"unicode/utf8"
)

// lossyString decodes b as UTF-8, substituting U+FFFD for each byte that
// is not part of a valid encoding. This mirrors the lenient policy the
// format has always had: keys and strings with broken encodings are
// displayed degraded, not rejected.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.WriteRune(r)
		}
		b = b[size:]
	}
	return sb.String()
}
