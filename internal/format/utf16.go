package format

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

const (
	utf16HighSurrogateStart = 0xD800
	utf16HighSurrogateEnd   = 0xDBFF
)

// PutUTF16 encodes s as NUL-terminated UTF-16LE into dst, zero-filling the
// remainder. dst must hold an even number of bytes; at most len(dst)/2-1 code
// units are stored. A surrogate pair that would be split by the limit is
// dropped whole. It reports whether s had to be truncated.
func PutUTF16(dst []byte, s string) (bool, error) {
	units := len(dst) / 2
	if units == 0 {
		return s != "", nil
	}
	enc, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return false, fmt.Errorf("format: encode name: %w", err)
	}
	limit := (units - 1) * 2
	truncated := false
	if len(enc) > limit {
		enc = enc[:limit]
		truncated = true
		if n := len(enc); n >= 2 {
			last := uint16(enc[n-2]) | uint16(enc[n-1])<<8
			if last >= utf16HighSurrogateStart && last <= utf16HighSurrogateEnd {
				enc = enc[:n-2]
			}
		}
	}
	n := copy(dst, enc)
	clear(dst[n:])
	return truncated, nil
}

// UTF16 decodes a NUL-terminated UTF-16LE field.
func UTF16(b []byte) string {
	end := len(b) &^ 1
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			end = i
			break
		}
	}
	if end == 0 {
		return ""
	}
	dec, err := utf16le.NewDecoder().Bytes(b[:end])
	if err != nil {
		return ""
	}
	return string(dec)
}

// EqualUTF16 reports whether the field b holds exactly s, comparing the
// encoded forms so that no decode is needed on the lookup path.
func EqualUTF16(b []byte, s string) bool {
	tmp := make([]byte, len(b))
	if _, err := PutUTF16(tmp, s); err != nil {
		return false
	}
	return bytes.Equal(tmp, b)
}
