package cache

import (
	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

// RecordOffset returns the byte offset of record i under the current layout.
func RecordOffset(i int) int {
	return format.Current.RecordOffset(i)
}

// Len returns the number of records.
func (s *Store) Len() int { return s.count() }

// Selected returns the index stored by the last Open, if any.
func (s *Store) Selected() (int, bool) {
	if s.mem.data == nil {
		return 0, false
	}
	sel := buf.I32(s.mem.data, format.HdrSelectedOffset)
	if sel == format.NoSelection {
		return 0, false
	}
	return int(sel), true
}

// Entry is a decoded copy of one record.
type Entry struct {
	Index       int     `json:"index"`
	ID          int32   `json:"id"`
	Fingerprint string  `json:"fingerprint,omitempty"`
	Name        string  `json:"name"`
	Position    int64   `json:"position"`
	Marks       []int32 `json:"marks"`
}

// Items returns a snapshot of every record in index order.
func (s *Store) Items() []Entry {
	n := s.count()
	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		it := Item{s: s, index: i}
		e := Entry{
			Index:    i,
			ID:       it.ID(),
			Name:     it.DisplayName(),
			Position: it.Position(),
			Marks:    it.Marks(),
		}
		if fp := it.Fingerprint(); !fp.IsZero() {
			e.Fingerprint = fp.String()
		}
		out = append(out, e)
	}
	return out
}

// Item returns a view of record i.
func (s *Store) Item(i int) (Item, bool) {
	if i < 0 || i >= s.count() {
		return Item{}, false
	}
	return Item{s: s, index: i}, true
}

// Find scans the records in order and returns the first whose key matches.
//
// With fingerprint keys a match whose stored display name differs from
// k.Name() has its name rewritten in place. An empty name leaves the stored
// one alone. A key of the other variant never matches.
func (s *Store) Find(k Key) (Item, bool) {
	if k.mode != s.mode {
		return Item{}, false
	}
	n := s.count()
	for i := 0; i < n; i++ {
		rec := s.record(i)
		name := rec[format.RecNameOffset : format.RecNameOffset+format.RecNameSize]
		if s.mode == KeyPath {
			if format.EqualUTF16(name, k.name) {
				return Item{s: s, index: i}, true
			}
			continue
		}
		if Fingerprint(rec[format.RecFingerprintOffset:format.RecFingerprintOffset+format.FingerprintSize]) != k.fp {
			continue
		}
		if k.name != "" && !format.EqualUTF16(name, k.name) {
			if _, err := format.PutUTF16(name, k.name); err == nil {
				s.log.Debug("cache display name refreshed", "index", i, "name", k.name)
			}
		}
		return Item{s: s, index: i}, true
	}
	return Item{}, false
}

// Insert adds a record for k and promotes it to position 0. ok is false
// when a record with the same key already exists; the store is unchanged
// in that case. A key of the other variant fails with ErrKeyMode, and a
// buffer that cannot grow fails with ErrAllocation.
func (s *Store) Insert(k Key) (Item, bool, error) {
	if s.mem.data == nil {
		return Item{}, false, ErrNotInitialized
	}
	if k.mode != s.mode {
		return Item{}, false, ErrKeyMode
	}
	if _, found := s.Find(k); found {
		return Item{}, false, nil
	}

	var name [format.RecNameSize]byte
	truncated, err := format.PutUTF16(name[:], k.name)
	if err != nil {
		return Item{}, false, err
	}

	n := s.count()
	if err := s.mem.resize(format.Current.Size(n + 1)); err != nil {
		s.log.Warn("cache insert failed", "records", n, "error", err)
		return Item{}, false, err
	}
	rec := s.record(n)
	clear(rec)
	buf.PutI32(rec, format.RecIDOffset, int32(n))
	copy(rec[format.RecFingerprintOffset:], k.fp[:])
	copy(rec[format.RecNameOffset:], name[:])
	s.setCount(n + 1)
	s.move(n, 0)

	if truncated {
		s.log.Warn("cache display name truncated", "name", k.name)
	}
	return Item{s: s, index: 0}, true, nil
}

// Open promotes record i to position 0 and records i as the selected
// index. The stored selection is the index passed in, not the new position.
func (s *Store) Open(i int) (Item, bool) {
	if i < 0 || i >= s.count() {
		return Item{}, false
	}
	s.move(i, 0)
	buf.PutI32(s.mem.data, format.HdrSelectedOffset, int32(i))
	return Item{s: s, index: 0}, true
}

// Delete removes record i and shifts every later record down one slot.
// A selection of i is cleared and a selection past i follows its record.
func (s *Store) Delete(i int) bool {
	n := s.count()
	if i < 0 || i >= n {
		return false
	}
	d := s.mem.data
	copy(d[RecordOffset(i):RecordOffset(n-1)], d[RecordOffset(i+1):RecordOffset(n)])
	s.renumber(i, n-1)
	s.setCount(n - 1)
	// shrinking only reslices
	_ = s.mem.resize(format.Current.Size(n - 1))

	if sel, ok := s.Selected(); ok {
		switch {
		case sel == i || sel >= n:
			buf.PutI32(s.mem.data, format.HdrSelectedOffset, format.NoSelection)
		case sel > i:
			buf.PutI32(s.mem.data, format.HdrSelectedOffset, int32(sel-1))
		}
	}
	return true
}

// DeleteAll drops every record and clears the selection. The allocation is
// kept until the next Save.
func (s *Store) DeleteAll() {
	if s.mem.data == nil {
		return
	}
	s.setCount(0)
	buf.PutI32(s.mem.data, format.HdrSelectedOffset, format.NoSelection)
	_ = s.mem.resize(format.HeaderSize)
}

// Move places record from at index to, preserving the relative order of
// every other record. Both indexes must be in range.
func (s *Store) Move(from, to int) bool {
	n := s.count()
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	s.move(from, to)
	return true
}

// move assumes both indexes are valid.
func (s *Store) move(from, to int) {
	if from == to {
		return
	}
	d := s.mem.data
	var tmp [format.RecordSize]byte
	copy(tmp[:], s.record(from))
	if from > to {
		copy(d[RecordOffset(to+1):RecordOffset(from+1)], d[RecordOffset(to):RecordOffset(from)])
		copy(s.record(to), tmp[:])
		s.renumber(to, from+1)
		return
	}
	copy(d[RecordOffset(from):RecordOffset(to)], d[RecordOffset(from+1):RecordOffset(to+1)])
	copy(s.record(to), tmp[:])
	s.renumber(from, to+1)
}

// renumber sets the id of records [lo, hi) to their index.
func (s *Store) renumber(lo, hi int) {
	for i := lo; i < hi; i++ {
		buf.PutI32(s.record(i), format.RecIDOffset, int32(i))
	}
}

func (s *Store) count() int {
	return int(buf.I32(s.mem.data, format.HdrRecordCountOffset))
}

func (s *Store) setCount(n int) {
	buf.PutI32(s.mem.data, format.HdrRecordCountOffset, int32(n))
}

// record returns the bytes of record i in the current buffer. The slice is
// only valid until the next resize.
func (s *Store) record(i int) []byte {
	off := RecordOffset(i)
	return s.mem.data[off : off+format.RecordSize : off+format.RecordSize]
}
