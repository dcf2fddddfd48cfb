package settings

import (
	"fmt"

	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

// Font is a decoded font descriptor.
type Font struct {
	Height         int32  `json:"height"`
	Width          int32  `json:"width"`
	Escapement     int32  `json:"escapement"`
	Orientation    int32  `json:"orientation"`
	Weight         int32  `json:"weight"`
	Italic         bool   `json:"italic"`
	Underline      bool   `json:"underline"`
	StrikeOut      bool   `json:"strikeout"`
	CharSet        uint8  `json:"charset"`
	OutPrecision   uint8  `json:"out_precision"`
	ClipPrecision  uint8  `json:"clip_precision"`
	Quality        uint8  `json:"quality"`
	PitchAndFamily uint8  `json:"pitch_and_family"`
	Face           string `json:"face"`
}

// Rect is a window rectangle in screen coordinates.
type Rect struct {
	Left   int32 `json:"left"`
	Top    int32 `json:"top"`
	Right  int32 `json:"right"`
	Bottom int32 `json:"bottom"`
}

// View is a decoded copy of the payload for display. Edits go through the
// Hotkeys and Proxy views.
type View struct {
	Font           Font         `json:"font"`
	FontColor      uint32       `json:"font_color"`
	Rect           Rect         `json:"rect"`
	BgColor        uint32       `json:"bg_color"`
	Alpha          uint32       `json:"alpha"`
	LineGap        uint32       `json:"line_gap"`
	InternalBorder uint32       `json:"internal_border"`
	WheelSpeed     uint32       `json:"wheel_speed"`
	PageMode       uint32       `json:"page_mode"`
	AutoPageMode   uint32       `json:"autopage_mode"`
	AutoPageMillis uint32       `json:"autopage_elapse_ms"`
	BgImage        bool         `json:"bg_image"`
	DisableLRHide  bool         `json:"disable_lrhide"`
	ShowSystray    bool         `json:"show_systray"`
	HideTaskbar    bool         `json:"hide_taskbar"`
	IsDefault      bool         `json:"is_default"`
	ChapterRule    uint32       `json:"chapter_rule"`
	Hotkeys        []Hotkey     `json:"hotkeys"`
	Proxy          *ProxyConfig `json:"proxy,omitempty"`
}

// Decode reads a payload of at least SizeV1 bytes. The proxy block is only
// decoded when the payload is large enough to hold it.
func Decode(p []byte) (View, error) {
	if len(p) < SizeV1 {
		return View{}, fmt.Errorf("settings: payload of %d bytes: %w", len(p), format.ErrTruncated)
	}
	v := View{
		Font: Font{
			Height:         buf.I32(p, FontHeightOffset),
			Width:          buf.I32(p, FontWidthOffset),
			Escapement:     buf.I32(p, FontEscapementOffset),
			Orientation:    buf.I32(p, FontOrientationOffset),
			Weight:         buf.I32(p, FontWeightOffset),
			Italic:         p[FontItalicOffset] != 0,
			Underline:      p[FontUnderlineOffset] != 0,
			StrikeOut:      p[FontStrikeOutOffset] != 0,
			CharSet:        p[FontCharSetOffset],
			OutPrecision:   p[FontOutPrecisionOffset],
			ClipPrecision:  p[FontClipPrecisionOffset],
			Quality:        p[FontQualityOffset],
			PitchAndFamily: p[FontPitchAndFamilyOffset],
			Face:           format.UTF16(p[FontFaceOffset : FontFaceOffset+FontFaceSize]),
		},
		FontColor: buf.U32(p, FontColorOffset),
		Rect: Rect{
			Left:   buf.I32(p, RectLeftOffset),
			Top:    buf.I32(p, RectTopOffset),
			Right:  buf.I32(p, RectRightOffset),
			Bottom: buf.I32(p, RectBottomOffset),
		},
		BgColor:        buf.U32(p, BgColorOffset),
		Alpha:          buf.U32(p, AlphaOffset),
		LineGap:        buf.U32(p, LineGapOffset),
		InternalBorder: buf.U32(p, InternalBorderOffset),
		WheelSpeed:     buf.U32(p, WheelSpeedOffset),
		PageMode:       buf.U32(p, PageModeOffset),
		AutoPageMode:   buf.U32(p, AutoPageModeOffset),
		AutoPageMillis: buf.U32(p, AutoPageElapseOffset),
		BgImage:        buf.U32(p, BgImageEnableOffset) != 0,
		DisableLRHide:  buf.U32(p, DisableLRHideOffset) != 0,
		ShowSystray:    buf.U32(p, ShowSystrayOffset) != 0,
		HideTaskbar:    buf.U32(p, HideTaskbarOffset) != 0,
		IsDefault:      buf.U32(p, IsDefaultOffset) != 0,
		ChapterRule:    buf.U32(p, ChapterRuleOffset),
	}
	v.Hotkeys = make([]Hotkey, HotkeyCount)
	for i := range v.Hotkeys {
		v.Hotkeys[i] = UnpackHotkey(buf.U32(p, HotkeysOffset+i*4))
	}
	if len(p) >= SizeV2 {
		cfg := decodeProxy(p[ProxyOffset : ProxyOffset+ProxySize])
		v.Proxy = &cfg
	}
	return v, nil
}
