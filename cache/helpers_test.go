package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

// newStore returns an initialized store backed by a file in a temp dir.
func newStore(t *testing.T, mode KeyMode) *Store {
	t.Helper()
	s := New(Options{Path: filepath.Join(t.TempDir(), DefaultFileName), KeyMode: mode})
	require.NoError(t, s.Init())
	return s
}

func fp(b byte) Fingerprint {
	var f Fingerprint
	for i := range f {
		f[i] = b
	}
	return f
}

// names returns the display names in index order.
func names(s *Store) []string {
	out := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		it, _ := s.Item(i)
		out = append(out, it.DisplayName())
	}
	return out
}

// requireIDs checks that every record's id equals its index.
func requireIDs(t *testing.T, s *Store) {
	t.Helper()
	for i := 0; i < s.Len(); i++ {
		it, ok := s.Item(i)
		require.True(t, ok)
		require.Equal(t, int32(i), it.ID(), "record %d", i)
	}
	require.Equal(t, format.Current.Size(s.Len()), s.Size())
}

type oldRecord struct {
	name  string
	fp    byte
	marks []int32
}

// writeLayoutFile writes a cache file as a build using layout l would.
// The settings payload is filled with byte(i).
func writeLayoutFile(t *testing.T, path string, l *format.Layout, status uint32, recs []oldRecord) []byte {
	t.Helper()
	data := make([]byte, l.Size(len(recs)))
	format.PutHeader(data, format.Header{
		Status:        status,
		HeaderSize:    uint32(l.HeaderSize),
		RecordSize:    uint32(l.RecordSize),
		RecordCount:   int32(len(recs)),
		Selected:      int32(len(recs) - 1),
		SchemaVersion: l.Version,
	})
	settings := l.Settings(data)
	for i := range settings {
		settings[i] = byte(i)
	}
	cf, _ := l.RecordField(format.FieldMarkCount)
	mf, _ := l.RecordField(format.FieldMarks)
	for i, r := range recs {
		base := l.RecordOffset(i)
		buf.PutI32(data, base+format.RecIDOffset, int32(i))
		for j := 0; j < format.FingerprintSize; j++ {
			data[base+format.RecFingerprintOffset+j] = r.fp
		}
		_, err := format.PutUTF16(data[base+format.RecNameOffset:base+format.RecNameOffset+format.RecNameSize], r.name)
		require.NoError(t, err)
		buf.PutI32(data, base+cf.Off, int32(len(r.marks)))
		for j, m := range r.marks {
			buf.PutI32(data, base+mf.Off+j*format.MarkSize, m)
		}
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return data
}

// countingRebaser records every header it is rebased to.
type countingRebaser struct {
	calls int
	last  []byte
}

func (c *countingRebaser) Rebase(header []byte) {
	c.calls++
	c.last = header
}
