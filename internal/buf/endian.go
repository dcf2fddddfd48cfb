// Package buf contains bounds and little-endian helpers for the cache file.
package buf

import "encoding/binary"

// U32 reads a little-endian uint32 at off. Returns 0 when b is too short.
func U32(b []byte, off int) uint32 {
	if !Has(b, off, 4) {
		return 0
	}
	return binary.LittleEndian.Uint32(b[off:])
}

// I32 reads a little-endian int32 at off. Returns 0 when b is too short.
func I32(b []byte, off int) int32 {
	return int32(U32(b, off))
}

// I64 reads a little-endian int64 at off. Returns 0 when b is too short.
func I64(b []byte, off int) int64 {
	if !Has(b, off, 8) {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b[off:]))
}

// U16 reads a little-endian uint16 at off. Returns 0 when b is too short.
func U16(b []byte, off int) uint16 {
	if !Has(b, off, 2) {
		return 0
	}
	return binary.LittleEndian.Uint16(b[off:])
}

// PutU32 writes v at off. The caller guarantees the range is in bounds.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// PutI32 writes v at off. The caller guarantees the range is in bounds.
func PutI32(b []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(b[off:off+4], uint32(v))
}

// PutI64 writes v at off. The caller guarantees the range is in bounds.
func PutI64(b []byte, off int, v int64) {
	binary.LittleEndian.PutUint64(b[off:off+8], uint64(v))
}

// PutU16 writes v at off. The caller guarantees the range is in bounds.
func PutU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:off+2], v)
}

// Zero clears b.
func Zero(b []byte) {
	clear(b)
}
