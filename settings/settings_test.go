package settings

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leextar/readercache/cache"
	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
)

func TestPayloadSizesMatchFormat(t *testing.T) {
	require.Equal(t, format.SettingsSizeV1, SizeV1)
	require.Equal(t, format.SettingsSizeV2, SizeV2)
	require.Equal(t, 0x5C, FontSize)
	require.Equal(t, FontSize, FontColorOffset)
}

func TestDefaultsEncode(t *testing.T) {
	p := make([]byte, SizeV2)
	Defaults{ScreenWidth: 1280, ScreenHeight: 1024}.Encode(p)

	v, err := Decode(p)
	require.NoError(t, err)
	require.Equal(t, "Consolas", v.Font.Face)
	require.Equal(t, int32(20), v.Font.Height)
	require.Equal(t, int32(WeightThin), v.Font.Weight)
	require.Equal(t, uint8(FamilySwiss), v.Font.PitchAndFamily)
	require.Equal(t, Rect{Left: 490, Top: 262, Right: 790, Bottom: 762}, v.Rect)
	require.Equal(t, uint32(0), v.FontColor)
	require.Equal(t, uint32(0xFFFFFF), v.BgColor)
	require.Equal(t, uint32(0xFF), v.Alpha)
	require.Equal(t, uint32(5), v.LineGap)
	require.Equal(t, uint32(1), v.WheelSpeed)
	require.Equal(t, uint32(1), v.PageMode)
	require.Equal(t, uint32(3000), v.AutoPageMillis)
	require.True(t, v.DisableLRHide)
	require.True(t, v.IsDefault)
	require.False(t, v.ShowSystray)
	require.Equal(t, DefaultHotkeys[ActionHide], v.Hotkeys[ActionHide])
	require.Equal(t, Hotkey{}, v.Hotkeys[HotkeyCount-1])
	require.NotNil(t, v.Proxy)
	require.False(t, v.Proxy.Enabled)
}

func TestDefaultsCustomFont(t *testing.T) {
	p := make([]byte, SizeV2)
	Defaults{FontFace: "Noto Sans Mono", FontHeight: 28}.Encode(p)
	v, err := Decode(p)
	require.NoError(t, err)
	require.Equal(t, "Noto Sans Mono", v.Font.Face)
	require.Equal(t, int32(28), v.Font.Height)
	// 1920x1080 fallback screen
	require.Equal(t, int32(810), v.Rect.Left)
}

func TestDecodeV1PayloadHasNoProxy(t *testing.T) {
	p := make([]byte, SizeV1)
	Defaults{}.Encode(p)
	v, err := Decode(p)
	require.NoError(t, err)
	require.Nil(t, v.Proxy)

	_, err = Decode(p[:SizeV1-1])
	require.ErrorIs(t, err, format.ErrTruncated)
}

func TestHotkeyPacking(t *testing.T) {
	hk := Hotkey{Mod: ModControl | ModShift, Key: 'K'}
	require.Equal(t, uint32(0x0006004B), hk.Pack())
	require.Equal(t, hk, UnpackHotkey(hk.Pack()))
	require.Equal(t, "Ctrl+Shift+K", hk.String())
	require.Equal(t, "F11", Hotkey{Key: 0x7A}.String())
	require.Equal(t, "Ctrl+Num+", DefaultHotkeys[ActionFontGrow].String())
	require.Equal(t, "-", Hotkey{}.String())
	require.Len(t, ActionNames, len(DefaultHotkeys))
}

func TestViewsDetached(t *testing.T) {
	var hk Hotkeys
	_, ok := hk.Get(0)
	require.False(t, ok)
	require.False(t, hk.Set(0, Hotkey{Key: 'A'}))
	require.Nil(t, hk.All())

	var px Proxy
	_, ok = px.Config()
	require.False(t, ok)
	require.Error(t, px.Set(ProxyConfig{}))

	// a version 1 sized header has no proxy block
	px.Rebase(make([]byte, format.HeaderSizeV1))
	require.False(t, px.Attached())
}

func TestProxySet(t *testing.T) {
	header := make([]byte, format.HeaderSize)
	var px Proxy
	px.Rebase(header)
	require.True(t, px.Attached())

	cfg := ProxyConfig{Enabled: true, Port: 8080, Host: "proxy.local", User: "reader", Password: "secret"}
	require.NoError(t, px.Set(cfg))
	got, ok := px.Config()
	require.True(t, ok)
	require.Equal(t, cfg, got)
	require.Equal(t, uint32(8080), buf.U32(header, headerProxyOffset+ProxyPortOffset))

	long := make([]byte, ProxyUserSize)
	for i := range long {
		long[i] = 'u'
	}
	err := px.Set(ProxyConfig{User: string(long)})
	require.ErrorIs(t, err, ErrFieldTooLong)
	got, _ = px.Config()
	require.Equal(t, cfg, got, "failed Set must not write")
}

// The views hold slices into the header; growing the store relocates the
// buffer and they must follow it.
func TestViewsFollowStoreRelocation(t *testing.T) {
	s := cache.New(cache.Options{
		Path:     filepath.Join(t.TempDir(), ".readercache"),
		KeyMode:  cache.KeyPath,
		Defaults: Defaults{},
	})
	require.NoError(t, s.Init())

	var hk Hotkeys
	var px Proxy
	s.Attach(&hk)
	s.Attach(&px)
	require.True(t, hk.Attached())

	for i := 0; i < 50; i++ {
		_, ok, err := s.Insert(cache.PathKey(fmt.Sprintf("book-%02d.txt", i)))
		require.NoError(t, err)
		require.True(t, ok)

		want := Hotkey{Mod: ModAlt, Key: uint16('A' + i%26)}
		require.True(t, hk.Set(ActionJump, want))
		require.NoError(t, px.Set(ProxyConfig{Port: uint16(i)}))

		v, err := Decode(s.Settings())
		require.NoError(t, err)
		require.Equal(t, want, v.Hotkeys[ActionJump], "write through view after insert %d", i)
		require.Equal(t, uint16(i), v.Proxy.Port)
	}

	require.NoError(t, s.Shutdown())
	require.False(t, hk.Attached())
	require.False(t, px.Attached())

	reopened := cache.New(cache.Options{Path: s.Path(), KeyMode: cache.KeyPath})
	require.NoError(t, reopened.Init())
	reopened.Attach(&hk)
	got, ok := hk.Get(ActionJump)
	require.True(t, ok)
	require.Equal(t, Hotkey{Mod: ModAlt, Key: 'A' + 49%26}, got)
}
