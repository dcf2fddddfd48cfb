package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on
// overflow or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SlotOffset returns base + index*size, the byte offset of slot index in an
// array of fixed-size slots that starts at base.
func SlotOffset(base, index, size int) (int, bool) {
	span, ok := MulOverflowSafe(index, size)
	if !ok {
		return 0, false
	}
	return AddOverflowSafe(base, span)
}

// CheckArray validates that count slots of slotSize bytes starting at base fit
// in a buffer of bufLen bytes. It returns the end offset of the array.
//
//	end, err := buf.CheckArray(len(data), headerSize, count, recordSize)
//	if err != nil {
//	    return fmt.Errorf("records: %w", err)
//	}
func CheckArray(bufLen, base, count, slotSize int) (int, error) {
	if base < 0 {
		return 0, fmt.Errorf("negative base: %d", base)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if slotSize <= 0 {
		return 0, fmt.Errorf("invalid slot size: %d", slotSize)
	}
	end, ok := SlotOffset(base, count, slotSize)
	if !ok {
		return 0, fmt.Errorf("overflow: base=%d + count=%d * size=%d", base, count, slotSize)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
