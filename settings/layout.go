// Package settings interprets the settings payload the cache carries in its
// header: the reader window's font, geometry and colors, the hotkey table,
// and the update proxy. The cache itself treats the payload as opaque bytes.
//
// Offsets below are relative to the start of the payload.
package settings

import "github.com/leextar/readercache/internal/format"

// ============================================================================
// Font descriptor (92 bytes)
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------
//	 0x00    4    height (int32)
//	 0x04    4    width (int32)
//	 0x08    4    escapement (int32)
//	 0x0C    4    orientation (int32)
//	 0x10    4    weight (int32)
//	 0x14    1    italic
//	 0x15    1    underline
//	 0x16    1    strikeout
//	 0x17    1    charset
//	 0x18    1    output precision
//	 0x19    1    clip precision
//	 0x1A    1    quality
//	 0x1B    1    pitch and family
//	 0x1C   64    face name (32 UTF-16 units, NUL terminated)
const (
	FontHeightOffset         = 0x00
	FontWidthOffset          = 0x04
	FontEscapementOffset     = 0x08
	FontOrientationOffset    = 0x0C
	FontWeightOffset         = 0x10
	FontItalicOffset         = 0x14
	FontUnderlineOffset      = 0x15
	FontStrikeOutOffset      = 0x16
	FontCharSetOffset        = 0x17
	FontOutPrecisionOffset   = 0x18
	FontClipPrecisionOffset  = 0x19
	FontQualityOffset        = 0x1A
	FontPitchAndFamilyOffset = 0x1B
	FontFaceOffset           = 0x1C
	FontFaceSize             = 64
	FontSize                 = FontFaceOffset + FontFaceSize // 0x5C
)

// Window and behavior fields, one uint32 each.
const (
	FontColorOffset      = 0x5C
	RectLeftOffset       = 0x60
	RectTopOffset        = 0x64
	RectRightOffset      = 0x68
	RectBottomOffset     = 0x6C
	BgColorOffset        = 0x70
	AlphaOffset          = 0x74
	LineGapOffset        = 0x78
	InternalBorderOffset = 0x7C
	WheelSpeedOffset     = 0x80
	PageModeOffset       = 0x84
	AutoPageModeOffset   = 0x88
	AutoPageElapseOffset = 0x8C
	BgImageEnableOffset  = 0x90
	DisableLRHideOffset  = 0x94
	ShowSystrayOffset    = 0x98
	HideTaskbarOffset    = 0x9C
	IsDefaultOffset      = 0xA0
	ChapterRuleOffset    = 0xA4
)

// Hotkey table: HotkeyCount packed uint32 entries.
const (
	HotkeysOffset = 0xA8
	HotkeyCount   = 32
	HotkeysSize   = HotkeyCount * 4
)

// Proxy block, present from schema version 2.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------
//	 0x128   4    enable (uint32)
//	 0x12C   4    port (uint32)
//	 0x130  64    host (NUL-terminated bytes)
//	 0x170  32    user
//	 0x190  32    password
const (
	ProxyOffset         = 0x128
	ProxyEnableOffset   = 0x00
	ProxyPortOffset     = 0x04
	ProxyHostOffset     = 0x08
	ProxyHostSize       = 64
	ProxyUserOffset     = 0x48
	ProxyUserSize       = 32
	ProxyPasswordOffset = 0x68
	ProxyPasswordSize   = 32
	ProxySize           = ProxyPasswordOffset + ProxyPasswordSize // 0x88
)

// Payload sizes per schema version.
const (
	SizeV1 = HotkeysOffset + HotkeysSize // 0x128
	SizeV2 = ProxyOffset + ProxySize     // 0x1B0
)

// Header offsets of the regions the views cache, relative to the start of
// the cache header.
const (
	headerHotkeysOffset = format.HdrSettingsOffset + HotkeysOffset
	headerProxyOffset   = format.HdrSettingsOffset + ProxyOffset
)
