package format

import (
	"fmt"

	"github.com/leextar/readercache/internal/buf"
)

// Header is the decoded header core. It is a copy; writes go through the
// Put* helpers on the raw buffer.
type Header struct {
	Status        uint32
	HeaderSize    uint32
	RecordSize    uint32
	RecordCount   int32
	Selected      int32
	SchemaVersion uint32
}

// ParseHeader extracts the header core from the start of a cache file.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderCoreSize {
		return Header{}, fmt.Errorf("header core: %w", ErrTruncated)
	}
	return Header{
		Status:        buf.U32(b, HdrStatusOffset),
		HeaderSize:    buf.U32(b, HdrHeaderSizeOffset),
		RecordSize:    buf.U32(b, HdrRecordSizeOffset),
		RecordCount:   buf.I32(b, HdrRecordCountOffset),
		Selected:      buf.I32(b, HdrSelectedOffset),
		SchemaVersion: buf.U32(b, HdrSchemaVersionOffset),
	}, nil
}

// PutHeader writes the header core into b.
func PutHeader(b []byte, h Header) {
	buf.PutU32(b, HdrStatusOffset, h.Status)
	buf.PutU32(b, HdrHeaderSizeOffset, h.HeaderSize)
	buf.PutU32(b, HdrRecordSizeOffset, h.RecordSize)
	buf.PutI32(b, HdrRecordCountOffset, h.RecordCount)
	buf.PutI32(b, HdrSelectedOffset, h.Selected)
	buf.PutU32(b, HdrSchemaVersionOffset, h.SchemaVersion)
}

// Settings returns the settings payload of a header written with layout l.
func (l *Layout) Settings(b []byte) []byte {
	f, _ := l.HeaderField(FieldSettings)
	s, ok := buf.Slice(b, f.Off, f.Size)
	if !ok {
		return nil
	}
	return s
}
