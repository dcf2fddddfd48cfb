package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnknownLayout indicates the stored sizes match no known schema version.
	ErrUnknownLayout = errors.New("format: unknown layout")
)
