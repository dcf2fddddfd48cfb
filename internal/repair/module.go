package repair

import (
	"fmt"

	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

// Module restores one invariant of a buffer that already has layout l.
// Modules run after the keep-or-migrate decision and record every change
// they make in the report.
type Module interface {
	// Name returns the module identifier used in logs.
	Name() string

	// Repair checks the invariant and fixes data in place.
	Repair(data []byte, l *format.Layout, r *Report)
}

// DefaultModules run in order by Normalize.
var DefaultModules = []Module{
	stampModule{},
	idModule{},
	markModule{},
	selectionModule{},
}

// Normalize checks that data is exactly sized for its record count under
// layout l and then runs DefaultModules over it.
func Normalize(data []byte, l *format.Layout, r *Report) error {
	if len(data) < l.HeaderSize {
		return &Error{Phase: "normalize", Message: "buffer smaller than header", Cause: format.ErrTruncated}
	}
	count := int(buf.I32(data, format.HdrRecordCountOffset))
	if count < 0 || l.Size(count) != len(data) {
		return &Error{
			Phase:   "normalize",
			Offset:  format.HdrRecordCountOffset,
			Message: fmt.Sprintf("buffer of %d bytes does not hold %d records", len(data), count),
		}
	}
	for _, m := range DefaultModules {
		m.Repair(data, l, r)
	}
	return nil
}

// stampModule marks the header as written by layout l.
type stampModule struct{}

func (stampModule) Name() string { return "stamp" }

func (stampModule) Repair(data []byte, l *format.Layout, r *Report) {
	fix := func(off int, want uint32, what string) {
		if got := buf.U32(data, off); got != want {
			buf.PutU32(data, off, want)
			r.add(Diagnostic{
				Severity:  SevInfo,
				Category:  CatLayout,
				Offset:    int64(off),
				Structure: structHeader,
				Issue:     what + " restamped",
				Expected:  want,
				Actual:    got,
			})
		}
	}
	fix(format.HdrStatusOffset, format.StatusActive, "status")
	fix(format.HdrHeaderSizeOffset, uint32(l.HeaderSize), "header size")
	fix(format.HdrRecordSizeOffset, uint32(l.RecordSize), "record size")
	fix(format.HdrSchemaVersionOffset, l.Version, "schema version")
}

// idModule re-derives every record id from its position.
type idModule struct{}

func (idModule) Name() string { return "ids" }

func (idModule) Repair(data []byte, l *format.Layout, r *Report) {
	count := int(buf.I32(data, format.HdrRecordCountOffset))
	for i := 0; i < count; i++ {
		off := l.RecordOffset(i) + format.RecIDOffset
		if got := buf.I32(data, off); int(got) != i {
			buf.PutI32(data, off, int32(i))
			r.add(Diagnostic{
				Severity:  SevWarning,
				Category:  CatIntegrity,
				Offset:    int64(off),
				Structure: structRecord,
				Index:     i,
				Issue:     "record id does not match position",
				Expected:  i,
				Actual:    got,
			})
		}
	}
}

// markModule clamps mark counts to the layout's bound and clears unused slots.
type markModule struct{}

func (markModule) Name() string { return "marks" }

func (markModule) Repair(data []byte, l *format.Layout, r *Report) {
	cf, ok := l.RecordField(format.FieldMarkCount)
	if !ok {
		return
	}
	mf, _ := l.RecordField(format.FieldMarks)
	count := int(buf.I32(data, format.HdrRecordCountOffset))
	for i := 0; i < count; i++ {
		base := l.RecordOffset(i)
		got := buf.I32(data, base+cf.Off)
		if got >= 0 && int(got) <= l.MaxMarks {
			continue
		}
		n := int32(0)
		if got > 0 {
			n = int32(l.MaxMarks)
		}
		buf.PutI32(data, base+cf.Off, n)
		clear(data[base+mf.Off+int(n)*format.MarkSize : base+mf.End()])
		r.add(Diagnostic{
			Severity:  SevError,
			Category:  CatIntegrity,
			Offset:    int64(base + cf.Off),
			Structure: structRecord,
			Index:     i,
			Issue:     "mark count out of range, clamped",
			Expected:  n,
			Actual:    got,
		})
	}
}

// selectionModule clears a selected index that points past the records.
type selectionModule struct{}

func (selectionModule) Name() string { return "selection" }

func (selectionModule) Repair(data []byte, _ *format.Layout, r *Report) {
	count := buf.I32(data, format.HdrRecordCountOffset)
	sel := buf.I32(data, format.HdrSelectedOffset)
	if sel == format.NoSelection || (sel >= 0 && sel < count) {
		return
	}
	buf.PutI32(data, format.HdrSelectedOffset, format.NoSelection)
	r.add(Diagnostic{
		Severity:  SevWarning,
		Category:  CatIntegrity,
		Offset:    format.HdrSelectedOffset,
		Structure: structHeader,
		Issue:     "selected index out of range, cleared",
		Expected:  format.NoSelection,
		Actual:    sel,
	})
}
