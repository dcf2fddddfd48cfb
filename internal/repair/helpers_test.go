package repair

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

// --- small file builder (keeps tests readable) ---

type rec struct {
	name  string
	fp    byte // fills the fingerprint
	pos   int64
	marks []int32
}

func buildFile(t *testing.T, l *format.Layout, status uint32, recs []rec) []byte {
	t.Helper()

	data := make([]byte, l.Size(len(recs)))
	format.PutHeader(data, format.Header{
		Status:        status,
		HeaderSize:    uint32(l.HeaderSize),
		RecordSize:    uint32(l.RecordSize),
		RecordCount:   int32(len(recs)),
		Selected:      format.NoSelection,
		SchemaVersion: l.Version,
	})
	settings := l.Settings(data)
	for i := range settings {
		settings[i] = byte(i)
	}

	for i, r := range recs {
		base := l.RecordOffset(i)
		buf.PutI32(data, base+format.RecIDOffset, int32(i))
		for j := 0; j < format.FingerprintSize; j++ {
			data[base+format.RecFingerprintOffset+j] = r.fp
		}
		_, err := format.PutUTF16(data[base+format.RecNameOffset:base+format.RecNameOffset+format.RecNameSize], r.name)
		require.NoError(t, err)
		if f, ok := l.RecordField(format.FieldPosition); ok {
			buf.PutI64(data, base+f.Off, r.pos)
		}
		cf, _ := l.RecordField(format.FieldMarkCount)
		mf, _ := l.RecordField(format.FieldMarks)
		buf.PutI32(data, base+cf.Off, int32(len(r.marks)))
		for j, m := range r.marks {
			buf.PutI32(data, base+mf.Off+j*format.MarkSize, m)
		}
	}
	return data
}

func recordName(l *format.Layout, data []byte, i int) string {
	base := l.RecordOffset(i) + format.RecNameOffset
	return format.UTF16(data[base : base+format.RecNameSize])
}

func recordMarks(l *format.Layout, data []byte, i int) []int32 {
	cf, _ := l.RecordField(format.FieldMarkCount)
	mf, _ := l.RecordField(format.FieldMarks)
	base := l.RecordOffset(i)
	n := int(buf.I32(data, base+cf.Off))
	out := make([]int32, 0, n)
	for j := 0; j < n; j++ {
		out = append(out, buf.I32(data, base+mf.Off+j*format.MarkSize))
	}
	return out
}

func hasIssue(r *Report, sev Severity, substr string) bool {
	for _, d := range r.Diagnostics {
		if d.Severity == sev && strings.Contains(d.Issue, substr) {
			return true
		}
	}
	return false
}
