package format

// Field is one named, fixed-width region of a header or record.
//
// Elem is the width of one element for array fields (marks, UTF-16 names)
// and equals Size for scalars. When a field changes size between versions,
// migration copies min(old, new) bytes rounded down to a whole element.
type Field struct {
	Name string
	Off  int
	Size int
	Elem int
}

// End returns the offset just past the field.
func (f Field) End() int { return f.Off + f.Size }

// Field names shared by all layouts.
const (
	FieldStatus        = "status"
	FieldHeaderSize    = "header_size"
	FieldRecordSize    = "record_size"
	FieldRecordCount   = "record_count"
	FieldSelected      = "selected_index"
	FieldSchemaVersion = "schema_version"
	FieldSettings      = "settings"

	FieldID          = "id"
	FieldFingerprint = "fingerprint"
	FieldName        = "display_name"
	FieldPosition    = "position"
	FieldMarkCount   = "mark_count"
	FieldMarks       = "marks"
)

// Layout is the complete description of one schema version.
type Layout struct {
	Version    uint32
	HeaderSize int
	RecordSize int
	MaxMarks   int
	Header     []Field
	Record     []Field
}

// RecordOffset returns the byte offset of record i in a buffer written with
// this layout.
func (l *Layout) RecordOffset(i int) int {
	return l.HeaderSize + i*l.RecordSize
}

// Size returns the total buffer size for count records.
func (l *Layout) Size(count int) int {
	return l.HeaderSize + count*l.RecordSize
}

// HeaderField looks up a header field by name.
func (l *Layout) HeaderField(name string) (Field, bool) {
	return findField(l.Header, name)
}

// RecordField looks up a record field by name.
func (l *Layout) RecordField(name string) (Field, bool) {
	return findField(l.Record, name)
}

func findField(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func headerCore(settingsSize int) []Field {
	return []Field{
		{FieldStatus, HdrStatusOffset, 4, 4},
		{FieldHeaderSize, HdrHeaderSizeOffset, 4, 4},
		{FieldRecordSize, HdrRecordSizeOffset, 4, 4},
		{FieldRecordCount, HdrRecordCountOffset, 4, 4},
		{FieldSelected, HdrSelectedOffset, 4, 4},
		{FieldSchemaVersion, HdrSchemaVersionOffset, 4, 4},
		// the payload is opaque, so it migrates as a byte prefix
		{FieldSettings, HdrSettingsOffset, settingsSize, 1},
	}
}

// V1 is the first layout: 10 marks, no reading position.
var V1 = &Layout{
	Version:    1,
	HeaderSize: HeaderSizeV1,
	RecordSize: RecordSizeV1,
	MaxMarks:   MaxMarksV1,
	Header:     headerCore(SettingsSizeV1),
	Record: []Field{
		{FieldID, RecIDOffset, 4, 4},
		{FieldFingerprint, RecFingerprintOffset, FingerprintSize, FingerprintSize},
		{FieldName, RecNameOffset, RecNameSize, 2},
		{FieldMarkCount, RecV1MarkCountOffset, 4, 4},
		{FieldMarks, RecV1MarksOffset, MaxMarksV1 * MarkSize, MarkSize},
	},
}

// V2 adds the reading position and raises the mark limit to 32.
var V2 = &Layout{
	Version:    2,
	HeaderSize: HeaderSizeV2,
	RecordSize: RecordSizeV2,
	MaxMarks:   MaxMarksV2,
	Header:     headerCore(SettingsSizeV2),
	Record: []Field{
		{FieldID, RecIDOffset, 4, 4},
		{FieldFingerprint, RecFingerprintOffset, FingerprintSize, FingerprintSize},
		{FieldName, RecNameOffset, RecNameSize, 2},
		{FieldPosition, RecV2PositionOffset, 8, 8},
		{FieldMarkCount, RecV2MarkCountOffset, 4, 4},
		{FieldMarks, RecV2MarksOffset, MaxMarksV2 * MarkSize, MarkSize},
	},
}

// Current is the layout this build reads and writes.
var Current = V2

// Layouts lists every known layout, oldest first.
var Layouts = []*Layout{V1, V2}

// Lookup finds the layout a file was written with. The stored version is
// matched first; when it is unknown or disagrees with the stored sizes the
// sizes alone decide. ok is false when nothing matches.
func Lookup(version uint32, headerSize, recordSize int) (*Layout, bool) {
	for _, l := range Layouts {
		if l.Version == version && l.HeaderSize == headerSize && l.RecordSize == recordSize {
			return l, true
		}
	}
	for _, l := range Layouts {
		if l.HeaderSize == headerSize && l.RecordSize == recordSize {
			return l, true
		}
	}
	return nil, false
}
