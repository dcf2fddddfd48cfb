// Package format describes the on-disk layout of the cache file: the header
// core, the record shapes of every schema version the store knows how to
// read, and the encoders for the fixed-width fields. Higher-level packages
// address the buffer exclusively through these tables.
package format

// Status tags stored at the start of the header.
const (
	StatusActive  uint32 = 1
	StatusRemoved uint32 = 2
)

// NoSelection is the selected_index value meaning "nothing selected".
const NoSelection = -1

// ============================================================================
// Header core (identical in every schema version)
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------
//	 0x00    4    status (1 = active, 2 = removed)
//	 0x04    4    header size used by the writer
//	 0x08    4    record size used by the writer
//	 0x0C    4    record count (int32)
//	 0x10    4    selected record index (int32, -1 = none)
//	 0x14    4    schema version of the writer
//	 0x18    n    settings payload (opaque)
const (
	HdrStatusOffset        = 0x00
	HdrHeaderSizeOffset    = 0x04
	HdrRecordSizeOffset    = 0x08
	HdrRecordCountOffset   = 0x0C
	HdrSelectedOffset      = 0x10
	HdrSchemaVersionOffset = 0x14
	HdrSettingsOffset      = 0x18

	// HeaderCoreSize is the smallest header any schema version can have.
	HeaderCoreSize = HdrSettingsOffset
)

// Settings payload sizes per schema version. Version 2 appends the proxy
// block to version 1.
const (
	SettingsSizeV1 = 0x128
	SettingsSizeV2 = 0x1B0
)

// ============================================================================
// Item record
// ============================================================================

// MaxPath is the number of UTF-16 code units reserved for a display name,
// including the terminating NUL.
const MaxPath = 260

// FingerprintSize is the size of the 128-bit content fingerprint.
const FingerprintSize = 16

// Record fields shared by every version.
const (
	RecIDOffset          = 0x000 // int32
	RecFingerprintOffset = 0x004 // [16]byte
	RecNameOffset        = 0x014 // [MaxPath]uint16
	RecNameSize          = MaxPath * 2
)

// Version 1 record: no reading position, 10 marks.
const (
	RecV1MarkCountOffset = 0x21C
	RecV1MarksOffset     = 0x220
	MaxMarksV1           = 10
	RecordSizeV1         = RecV1MarksOffset + MaxMarksV1*4 // 0x248
)

// Version 2 record: reading position inserted before the marks, 32 marks.
const (
	RecV2PositionOffset  = 0x21C // int64
	RecV2MarkCountOffset = 0x224
	RecV2MarksOffset     = 0x228
	MaxMarksV2           = 32
	RecordSizeV2         = RecV2MarksOffset + MaxMarksV2*4 // 0x2A8
)

// Header sizes per version.
const (
	HeaderSizeV1 = HeaderCoreSize + SettingsSizeV1
	HeaderSizeV2 = HeaderCoreSize + SettingsSizeV2
)

// Current layout constants. Code outside this package should prefer these
// over the versioned names.
const (
	CurrentVersion     = 2
	HeaderSize         = HeaderSizeV2
	RecordSize         = RecordSizeV2
	SettingsSize       = SettingsSizeV2
	MaxMarks           = MaxMarksV2
	RecPositionOffset  = RecV2PositionOffset
	RecMarkCountOffset = RecV2MarkCountOffset
	RecMarksOffset     = RecV2MarksOffset
	MarkSize           = 4
)
