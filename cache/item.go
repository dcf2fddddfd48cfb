package cache

import (
	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

// Item is a view of the record at a fixed index. It resolves against the
// store's current buffer on every call, so it stays safe across growth, but
// it follows the slot and not the record: after a move or delete it sees
// whichever record now occupies its index. Accessors on an index past the
// end return zero values and mutators return false.
type Item struct {
	s     *Store
	index int
}

// Index returns the slot this view reads.
func (it Item) Index() int { return it.index }

// Valid reports whether the slot currently holds a record.
func (it Item) Valid() bool {
	return it.s != nil && it.index >= 0 && it.index < it.s.count()
}

func (it Item) rec() []byte {
	if !it.Valid() {
		return nil
	}
	return it.s.record(it.index)
}

// ID returns the stored id, which equals Index for a well-formed store.
func (it Item) ID() int32 {
	return buf.I32(it.rec(), format.RecIDOffset)
}

// Fingerprint returns the content fingerprint. Zero in path mode.
func (it Item) Fingerprint() Fingerprint {
	var fp Fingerprint
	if r := it.rec(); r != nil {
		copy(fp[:], r[format.RecFingerprintOffset:])
	}
	return fp
}

// DisplayName returns the stored display name.
func (it Item) DisplayName() string {
	r := it.rec()
	if r == nil {
		return ""
	}
	return format.UTF16(r[format.RecNameOffset : format.RecNameOffset+format.RecNameSize])
}

// SetDisplayName replaces the display name, truncating it to fit. It
// reports whether the name was stored whole.
func (it Item) SetDisplayName(name string) bool {
	r := it.rec()
	if r == nil {
		return false
	}
	truncated, err := format.PutUTF16(r[format.RecNameOffset:format.RecNameOffset+format.RecNameSize], name)
	return err == nil && !truncated
}

// Key returns the record's key under the store's key mode.
func (it Item) Key() Key {
	if it.s != nil && it.s.mode == KeyPath {
		return PathKey(it.DisplayName())
	}
	return FingerprintKey(it.Fingerprint(), it.DisplayName())
}

// Position returns the last reading offset.
func (it Item) Position() int64 {
	return buf.I64(it.rec(), format.RecPositionOffset)
}

// SetPosition stores the last reading offset.
func (it Item) SetPosition(pos int64) bool {
	r := it.rec()
	if r == nil {
		return false
	}
	buf.PutI64(r, format.RecPositionOffset, pos)
	return true
}

// MarkCount returns the number of marks.
func (it Item) MarkCount() int {
	return int(buf.I32(it.rec(), format.RecMarkCountOffset))
}

// Marks returns a copy of the marks in insertion order.
func (it Item) Marks() []int32 {
	r := it.rec()
	if r == nil {
		return nil
	}
	n := it.MarkCount()
	out := make([]int32, n)
	for i := range out {
		out[i] = buf.I32(r, markOffset(i))
	}
	return out
}

// AddMark appends v. It fails when the mark list is full or already holds v.
func (it Item) AddMark(v int32) bool {
	r := it.rec()
	if r == nil {
		return false
	}
	n := it.MarkCount()
	if n >= format.MaxMarks {
		return false
	}
	for i := 0; i < n; i++ {
		if buf.I32(r, markOffset(i)) == v {
			return false
		}
	}
	buf.PutI32(r, markOffset(n), v)
	buf.PutI32(r, format.RecMarkCountOffset, int32(n+1))
	return true
}

// RemoveMark removes the mark at index i, shifting later marks left and
// zeroing the freed slot.
func (it Item) RemoveMark(i int) bool {
	r := it.rec()
	if r == nil {
		return false
	}
	n := it.MarkCount()
	if n <= 0 || i < 0 || i >= n {
		return false
	}
	copy(r[markOffset(i):markOffset(n-1)], r[markOffset(i+1):markOffset(n)])
	buf.PutI32(r, markOffset(n-1), 0)
	buf.PutI32(r, format.RecMarkCountOffset, int32(n-1))
	return true
}

func markOffset(i int) int {
	return format.RecMarksOffset + i*format.MarkSize
}
