package settings

import (
	"fmt"
	"strings"

	"github.com/leextar/readercache/internal/buf"
)

// Modifier flags, as passed to RegisterHotKey.
const (
	ModAlt     uint16 = 0x1
	ModControl uint16 = 0x2
	ModShift   uint16 = 0x4
	ModWin     uint16 = 0x8
)

// Hotkey is one packed table entry: modifiers in the high word, virtual
// key code in the low word. The zero value is "unbound".
type Hotkey struct {
	Mod uint16
	Key uint16
}

// Pack returns the stored form.
func (h Hotkey) Pack() uint32 {
	return uint32(h.Mod)<<16 | uint32(h.Key)
}

// UnpackHotkey decodes a stored table entry.
func UnpackHotkey(v uint32) Hotkey {
	return Hotkey{Mod: uint16(v >> 16), Key: uint16(v)}
}

func (h Hotkey) String() string {
	if h == (Hotkey{}) {
		return "-"
	}
	var parts []string
	if h.Mod&ModControl != 0 {
		parts = append(parts, "Ctrl")
	}
	if h.Mod&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if h.Mod&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if h.Mod&ModWin != 0 {
		parts = append(parts, "Win")
	}
	parts = append(parts, keyName(h.Key))
	return strings.Join(parts, "+")
}

func keyName(vk uint16) string {
	switch {
	case vk >= '0' && vk <= '9', vk >= 'A' && vk <= 'Z':
		return string(rune(vk))
	case vk >= 0x70 && vk <= 0x87:
		return fmt.Sprintf("F%d", vk-0x70+1)
	}
	if n, ok := vkNames[vk]; ok {
		return n
	}
	return fmt.Sprintf("0x%02X", vk)
}

var vkNames = map[uint16]string{
	0x08: "Backspace",
	0x0D: "Enter",
	0x1B: "Esc",
	0x20: "Space",
	0x21: "PageUp",
	0x22: "PageDown",
	0x23: "End",
	0x24: "Home",
	0x25: "Left",
	0x26: "Up",
	0x27: "Right",
	0x28: "Down",
	0x6B: "Num+",
	0x6D: "Num-",
}

// Action indexes into the hotkey table.
const (
	ActionHide = iota
	ActionPageUp
	ActionPageDown
	ActionLineUp
	ActionLineDown
	ActionFontGrow
	ActionFontShrink
	ActionOpenFile
	ActionFullScreen
	ActionTopmost
	ActionAutoPage
	ActionJump
	ActionBookmark
)

// ActionNames names the bound actions for display.
var ActionNames = []string{
	ActionHide:       "hide",
	ActionPageUp:     "page-up",
	ActionPageDown:   "page-down",
	ActionLineUp:     "line-up",
	ActionLineDown:   "line-down",
	ActionFontGrow:   "font-grow",
	ActionFontShrink: "font-shrink",
	ActionOpenFile:   "open-file",
	ActionFullScreen: "full-screen",
	ActionTopmost:    "topmost",
	ActionAutoPage:   "auto-page",
	ActionJump:       "jump",
	ActionBookmark:   "bookmark",
}

// DefaultHotkeys is the factory hotkey table. Slots past the list are unbound.
var DefaultHotkeys = []Hotkey{
	ActionHide:       {ModControl | ModAlt, 'H'},
	ActionPageUp:     {0, 0x25},
	ActionPageDown:   {0, 0x27},
	ActionLineUp:     {0, 0x26},
	ActionLineDown:   {0, 0x28},
	ActionFontGrow:   {ModControl, 0x6B},
	ActionFontShrink: {ModControl, 0x6D},
	ActionOpenFile:   {ModControl, 'O'},
	ActionFullScreen: {0, 0x7A},
	ActionTopmost:    {ModControl, 'T'},
	ActionAutoPage:   {0, 0x20},
	ActionJump:       {ModControl, 'G'},
	ActionBookmark:   {ModControl, 'M'},
}

// Hotkeys is a live view of the hotkey table inside a cache header. It
// caches the table slice, so it must be attached to the store to be
// rebased whenever the buffer moves.
type Hotkeys struct {
	table []byte
}

// Rebase points the view at the table inside header. A nil or short header
// detaches the view.
func (h *Hotkeys) Rebase(header []byte) {
	h.table, _ = buf.Slice(header, headerHotkeysOffset, HotkeysSize)
}

// Attached reports whether the view currently points at a buffer.
func (h *Hotkeys) Attached() bool { return h.table != nil }

// Get returns the hotkey bound to action.
func (h *Hotkeys) Get(action int) (Hotkey, bool) {
	if h.table == nil || action < 0 || action >= HotkeyCount {
		return Hotkey{}, false
	}
	return UnpackHotkey(buf.U32(h.table, action*4)), true
}

// Set binds action to hk.
func (h *Hotkeys) Set(action int, hk Hotkey) bool {
	if h.table == nil || action < 0 || action >= HotkeyCount {
		return false
	}
	buf.PutU32(h.table, action*4, hk.Pack())
	return true
}

// All returns a copy of the whole table.
func (h *Hotkeys) All() []Hotkey {
	if h.table == nil {
		return nil
	}
	out := make([]Hotkey, HotkeyCount)
	for i := range out {
		out[i] = UnpackHotkey(buf.U32(h.table, i*4))
	}
	return out
}
