package repair

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

func TestNormalizeCleanFileIsUntouched(t *testing.T) {
	data := buildFile(t, format.Current, format.StatusActive, []rec{{name: "a", marks: []int32{1}}})
	before := append([]byte(nil), data...)
	r := &Report{}
	require.NoError(t, Normalize(data, format.Current, r))
	require.Equal(t, before, data)
	require.Empty(t, r.Diagnostics)
}

func TestNormalizeFixes(t *testing.T) {
	l := format.Current
	data := buildFile(t, l, format.StatusActive, []rec{{name: "a"}, {name: "b", marks: []int32{1, 2}}, {name: "c"}})
	buf.PutU32(data, format.HdrHeaderSizeOffset, format.HeaderSizeV1)
	buf.PutU32(data, format.HdrSchemaVersionOffset, 1)
	buf.PutI32(data, l.RecordOffset(1)+format.RecIDOffset, 17)
	buf.PutI32(data, l.RecordOffset(1)+format.RecMarkCountOffset, 999)
	buf.PutI32(data, l.RecordOffset(2)+format.RecMarkCountOffset, -4)
	buf.PutI32(data, format.HdrSelectedOffset, 3)

	r := &Report{}
	require.NoError(t, Normalize(data, l, r))

	h, err := format.ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint32(l.HeaderSize), h.HeaderSize)
	require.Equal(t, uint32(l.RecordSize), h.RecordSize)
	require.Equal(t, l.Version, h.SchemaVersion)
	require.Equal(t, int32(format.NoSelection), h.Selected)

	require.Equal(t, int32(1), buf.I32(data, l.RecordOffset(1)+format.RecIDOffset))
	require.Equal(t, int32(l.MaxMarks), buf.I32(data, l.RecordOffset(1)+format.RecMarkCountOffset))
	require.Equal(t, int32(0), buf.I32(data, l.RecordOffset(2)+format.RecMarkCountOffset))

	require.True(t, hasIssue(r, SevWarning, "record id does not match position"))
	require.True(t, hasIssue(r, SevError, "mark count out of range"))
	require.True(t, hasIssue(r, SevWarning, "selected index out of range"))
	require.Equal(t, 2, r.Count(SevError))
	require.Equal(t, SevError, r.Worst())
}

func TestNormalizeRejectsMissizedBuffer(t *testing.T) {
	data := buildFile(t, format.Current, format.StatusActive, []rec{{name: "a"}})
	err := Normalize(append(data, 0), format.Current, &Report{})
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, "normalize", rerr.Phase)

	err = Normalize(data[:10], format.Current, &Report{})
	require.ErrorIs(t, err, format.ErrTruncated)
}

func TestModuleNames(t *testing.T) {
	var names []string
	for _, m := range DefaultModules {
		names = append(names, m.Name())
	}
	require.Equal(t, []string{"stamp", "ids", "marks", "selection"}, names)
}
