package repair

import (
	"fmt"

	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

// CopyFields copies the header and count records from src (written with
// layout sl) into dst (sized for layout dl), matching fields by name.
//
// A field present in both layouts is copied up to the smaller of the two
// sizes, rounded down to a whole element; scalars keep their little-endian
// low-order bytes. Fields only in dl are left untouched so they keep
// whatever defaults dst already holds. Fields only in sl are dropped and
// reported once.
func CopyFields(dst []byte, dl *format.Layout, src []byte, sl *format.Layout, count int, r *Report) error {
	for _, df := range dl.Header {
		sf, ok := sl.HeaderField(df.Name)
		if !ok {
			r.defaulted(structHeader, df)
			continue
		}
		if err := copyField(dst, 0, df, src, 0, sf); err != nil {
			return err
		}
	}
	for _, sf := range sl.Header {
		if _, ok := dl.HeaderField(sf.Name); !ok {
			r.dropped(structHeader, sf)
		}
	}

	for _, df := range dl.Record {
		if _, ok := sl.RecordField(df.Name); !ok {
			r.defaulted(structRecord, df)
		}
	}
	for _, sf := range sl.Record {
		if _, ok := dl.RecordField(sf.Name); !ok {
			r.dropped(structRecord, sf)
		}
	}
	for i := 0; i < count; i++ {
		dOff := dl.RecordOffset(i)
		sOff := sl.RecordOffset(i)
		for _, df := range dl.Record {
			sf, ok := sl.RecordField(df.Name)
			if !ok {
				continue
			}
			if err := copyField(dst, dOff, df, src, sOff, sf); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyField(dst []byte, dBase int, df format.Field, src []byte, sBase int, sf format.Field) error {
	if df.Elem != sf.Elem {
		return &Error{
			Phase:   "copy",
			Offset:  int64(sBase + sf.Off),
			Message: fmt.Sprintf("field %s changed element width %d -> %d", df.Name, sf.Elem, df.Elem),
		}
	}
	n := min(df.Size, sf.Size)
	n -= n % df.Elem
	d, ok := buf.Slice(dst, dBase+df.Off, n)
	if !ok {
		return &Error{
			Phase:   "copy",
			Offset:  int64(dBase + df.Off),
			Message: fmt.Sprintf("field %s outside destination", df.Name),
			Cause:   format.ErrTruncated,
		}
	}
	s, ok := buf.Slice(src, sBase+sf.Off, n)
	if !ok {
		return &Error{
			Phase:   "copy",
			Offset:  int64(sBase + sf.Off),
			Message: fmt.Sprintf("field %s outside source", sf.Name),
			Cause:   format.ErrTruncated,
		}
	}
	copy(d, s)
	return nil
}

// CopyPrefix is the layout-agnostic fallback: the header and every record
// are copied as raw byte prefixes truncated to the smaller size. It is only
// correct when newer layouts append fields and never reorder them.
func CopyPrefix(dst []byte, dl *format.Layout, src []byte, srcHeaderSize, srcRecordSize, count int) error {
	n := min(dl.HeaderSize, srcHeaderSize)
	d, okD := buf.Slice(dst, 0, n)
	s, okS := buf.Slice(src, 0, n)
	if !okD || !okS {
		return &Error{Phase: "copy", Message: "header prefix out of bounds", Cause: format.ErrTruncated}
	}
	copy(d, s)

	n = min(dl.RecordSize, srcRecordSize)
	for i := 0; i < count; i++ {
		sOff, ok := buf.SlotOffset(srcHeaderSize, i, srcRecordSize)
		if !ok {
			return &Error{Phase: "copy", Offset: int64(srcHeaderSize), Message: "record offset overflow"}
		}
		d, okD := buf.Slice(dst, dl.RecordOffset(i), n)
		s, okS := buf.Slice(src, sOff, n)
		if !okD || !okS {
			return &Error{
				Phase:   "copy",
				Offset:  int64(sOff),
				Message: fmt.Sprintf("record %d out of bounds", i),
				Cause:   format.ErrTruncated,
			}
		}
		copy(d, s)
	}
	return nil
}

func (r *Report) defaulted(structure string, f format.Field) {
	if r == nil {
		return
	}
	r.add(Diagnostic{
		Severity:  SevInfo,
		Category:  CatLayout,
		Offset:    int64(f.Off),
		Structure: structure,
		Issue:     fmt.Sprintf("field %s not in stored layout, using default", f.Name),
	})
}

func (r *Report) dropped(structure string, f format.Field) {
	if r == nil {
		return
	}
	r.add(Diagnostic{
		Severity:  SevWarning,
		Category:  CatLayout,
		Offset:    int64(f.Off),
		Structure: structure,
		Issue:     fmt.Sprintf("field %s no longer exists, dropped", f.Name),
	})
}
