package settings

import (
	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

// Font weights and pitch flags used by the defaults.
const (
	WeightThin   = 100
	CharSetANSI  = 0
	QualityProof = 2
	PitchDefault = 0
	FamilySwiss  = 0x20
)

// Default font and window size.
const (
	DefaultFontFace     = "Consolas"
	DefaultFontHeight   = 20
	DefaultWindowWidth  = 300
	DefaultWindowHeight = 500
)

// Defaults is the default-configuration factory for a fresh cache header.
// Zero fields fall back to a 1920x1080 screen and a 20px Consolas font.
type Defaults struct {
	ScreenWidth  int
	ScreenHeight int
	FontFace     string
	FontHeight   int32
}

// Font returns the default font descriptor.
func (d Defaults) Font() Font {
	face := d.FontFace
	if face == "" {
		face = DefaultFontFace
	}
	height := d.FontHeight
	if height == 0 {
		height = DefaultFontHeight
	}
	return Font{
		Height:         height,
		Weight:         WeightThin,
		CharSet:        CharSetANSI,
		Quality:        QualityProof,
		PitchAndFamily: PitchDefault | FamilySwiss,
		Face:           face,
	}
}

// Rect returns the default window rectangle, centered on the screen.
func (d Defaults) Rect() Rect {
	sw, sh := d.ScreenWidth, d.ScreenHeight
	if sw <= 0 {
		sw = 1920
	}
	if sh <= 0 {
		sh = 1080
	}
	left := int32((sw - DefaultWindowWidth) / 2)
	top := int32((sh - DefaultWindowHeight) / 2)
	return Rect{Left: left, Top: top, Right: left + DefaultWindowWidth, Bottom: top + DefaultWindowHeight}
}

// Encode writes the default payload into p. Regions that do not fit in p
// are skipped, so a version 1 sized payload gets no proxy block.
func (d Defaults) Encode(p []byte) {
	if len(p) < SizeV1 {
		return
	}
	putFont(p, d.Font())
	putRect(p, d.Rect())
	buf.PutU32(p, FontColorOffset, 0x000000)
	buf.PutU32(p, BgColorOffset, 0xFFFFFF)
	buf.PutU32(p, AlphaOffset, 0xFF)
	buf.PutU32(p, LineGapOffset, 5)
	buf.PutU32(p, InternalBorderOffset, 0)
	buf.PutU32(p, WheelSpeedOffset, 1)
	buf.PutU32(p, PageModeOffset, 1)
	buf.PutU32(p, AutoPageModeOffset, 0)
	buf.PutU32(p, AutoPageElapseOffset, 3000)
	buf.PutU32(p, BgImageEnableOffset, 0)
	buf.PutU32(p, DisableLRHideOffset, 1)
	buf.PutU32(p, ShowSystrayOffset, 0)
	buf.PutU32(p, HideTaskbarOffset, 0)
	buf.PutU32(p, IsDefaultOffset, 1)
	buf.PutU32(p, ChapterRuleOffset, 0)

	for i, hk := range DefaultHotkeys {
		buf.PutU32(p, HotkeysOffset+i*4, hk.Pack())
	}
	if len(p) >= SizeV2 {
		clear(p[ProxyOffset : ProxyOffset+ProxySize])
	}
}

func putFont(p []byte, f Font) {
	buf.PutI32(p, FontHeightOffset, f.Height)
	buf.PutI32(p, FontWidthOffset, f.Width)
	buf.PutI32(p, FontEscapementOffset, f.Escapement)
	buf.PutI32(p, FontOrientationOffset, f.Orientation)
	buf.PutI32(p, FontWeightOffset, f.Weight)
	p[FontItalicOffset] = boolByte(f.Italic)
	p[FontUnderlineOffset] = boolByte(f.Underline)
	p[FontStrikeOutOffset] = boolByte(f.StrikeOut)
	p[FontCharSetOffset] = f.CharSet
	p[FontOutPrecisionOffset] = f.OutPrecision
	p[FontClipPrecisionOffset] = f.ClipPrecision
	p[FontQualityOffset] = f.Quality
	p[FontPitchAndFamilyOffset] = f.PitchAndFamily
	// a face that does not fit is truncated
	_, _ = format.PutUTF16(p[FontFaceOffset:FontFaceOffset+FontFaceSize], f.Face)
}

func putRect(p []byte, r Rect) {
	buf.PutI32(p, RectLeftOffset, r.Left)
	buf.PutI32(p, RectTopOffset, r.Top)
	buf.PutI32(p, RectRightOffset, r.Right)
	buf.PutI32(p, RectBottomOffset, r.Bottom)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
