package repair

import (
	"fmt"

	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

// Inspect classifies a freshly loaded cache file without modifying it.
//
// Decision procedure:
//  1. status Removed, an unknown status, or a structurally impossible header
//     (too short, header smaller than the core, zero record size, negative
//     count, fewer bytes than the records need) resets the store.
//  2. status Active with the current header and record sizes keeps the
//     buffer as is, minus any trailing slack.
//  3. status Active with any other sizes migrates. The source layout comes
//     from format.Lookup; when nothing matches, the common-prefix copy is used.
func Inspect(data []byte) *Report {
	r := &Report{}

	h, err := format.ParseHeader(data)
	if err != nil {
		r.Action = ActionReset
		r.add(Diagnostic{
			Severity:  SevCritical,
			Category:  CatStructure,
			Structure: structHeader,
			Issue:     "file shorter than header core",
			Expected:  format.HeaderCoreSize,
			Actual:    len(data),
		})
		return r
	}
	r.Stored = h

	switch h.Status {
	case format.StatusActive:
	case format.StatusRemoved:
		r.Action = ActionReset
		r.add(Diagnostic{
			Severity:  SevInfo,
			Category:  CatStructure,
			Offset:    format.HdrStatusOffset,
			Structure: structHeader,
			Issue:     "cache marked removed",
		})
		return r
	default:
		r.Action = ActionReset
		r.add(Diagnostic{
			Severity:  SevCritical,
			Category:  CatStructure,
			Offset:    format.HdrStatusOffset,
			Structure: structHeader,
			Issue:     "unknown status",
			Actual:    fmt.Sprintf("0x%08X", h.Status),
		})
		return r
	}

	if int(h.HeaderSize) < format.HeaderCoreSize || h.RecordSize == 0 || h.RecordCount < 0 {
		r.Action = ActionReset
		r.add(Diagnostic{
			Severity:  SevCritical,
			Category:  CatStructure,
			Offset:    format.HdrHeaderSizeOffset,
			Structure: structHeader,
			Issue: fmt.Sprintf("impossible sizes: header=%d record=%d count=%d",
				h.HeaderSize, h.RecordSize, h.RecordCount),
		})
		return r
	}

	end, err := buf.CheckArray(len(data), int(h.HeaderSize), int(h.RecordCount), int(h.RecordSize))
	if err != nil {
		r.Action = ActionReset
		r.add(Diagnostic{
			Severity:  SevCritical,
			Category:  CatStructure,
			Offset:    int64(len(data)),
			Structure: structHeader,
			Issue:     "records exceed file: " + err.Error(),
		})
		return r
	}
	r.Size = end
	if end < len(data) {
		r.add(Diagnostic{
			Severity:  SevWarning,
			Category:  CatStructure,
			Offset:    int64(end),
			Structure: structHeader,
			Issue:     fmt.Sprintf("%d bytes of trailing slack trimmed", len(data)-end),
		})
	}

	cur := format.Current
	if int(h.HeaderSize) == cur.HeaderSize && int(h.RecordSize) == cur.RecordSize {
		r.Action = ActionKept
		r.Source = cur
		return r
	}

	r.Action = ActionMigrated
	if l, ok := format.Lookup(h.SchemaVersion, int(h.HeaderSize), int(h.RecordSize)); ok {
		r.Source = l
		r.add(Diagnostic{
			Severity:  SevInfo,
			Category:  CatLayout,
			Offset:    format.HdrSchemaVersionOffset,
			Structure: structHeader,
			Issue:     fmt.Sprintf("layout v%d migrated to v%d", l.Version, cur.Version),
		})
		return r
	}
	r.Fallback = true
	r.add(Diagnostic{
		Severity:  SevWarning,
		Category:  CatLayout,
		Offset:    format.HdrHeaderSizeOffset,
		Structure: structHeader,
		Issue: fmt.Sprintf("%v: header=%d record=%d version=%d, copied by common prefix",
			format.ErrUnknownLayout, h.HeaderSize, h.RecordSize, h.SchemaVersion),
	})
	return r
}
