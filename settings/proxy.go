package settings

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/leextar/readercache/internal/buf"
)

// ErrFieldTooLong is returned when a proxy string does not fit its field.
var ErrFieldTooLong = errors.New("settings: value too long for field")

// ProxyConfig is the decoded proxy block.
type ProxyConfig struct {
	Enabled  bool   `json:"enabled"`
	Port     uint16 `json:"port"`
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"-"`
}

// Proxy is a live view of the proxy block inside a cache header. Like
// Hotkeys it caches a slice and must be attached to the store.
type Proxy struct {
	block []byte
}

// Rebase points the view at the proxy block inside header. Headers without
// the block detach the view.
func (p *Proxy) Rebase(header []byte) {
	p.block, _ = buf.Slice(header, headerProxyOffset, ProxySize)
}

// Attached reports whether the view currently points at a buffer.
func (p *Proxy) Attached() bool { return p.block != nil }

// Config decodes the block.
func (p *Proxy) Config() (ProxyConfig, bool) {
	if p.block == nil {
		return ProxyConfig{}, false
	}
	return decodeProxy(p.block), true
}

// Set encodes cfg into the block. Nothing is written when a string does
// not fit.
func (p *Proxy) Set(cfg ProxyConfig) error {
	if p.block == nil {
		return errors.New("settings: proxy view not attached")
	}
	for _, f := range []struct {
		name string
		val  string
		size int
	}{
		{"host", cfg.Host, ProxyHostSize},
		{"user", cfg.User, ProxyUserSize},
		{"password", cfg.Password, ProxyPasswordSize},
	} {
		if len(f.val) >= f.size {
			return fmt.Errorf("%w: proxy %s is %d bytes, max %d", ErrFieldTooLong, f.name, len(f.val), f.size-1)
		}
	}
	var enable uint32
	if cfg.Enabled {
		enable = 1
	}
	buf.PutU32(p.block, ProxyEnableOffset, enable)
	buf.PutU32(p.block, ProxyPortOffset, uint32(cfg.Port))
	putCString(p.block[ProxyHostOffset:ProxyHostOffset+ProxyHostSize], cfg.Host)
	putCString(p.block[ProxyUserOffset:ProxyUserOffset+ProxyUserSize], cfg.User)
	putCString(p.block[ProxyPasswordOffset:ProxyPasswordOffset+ProxyPasswordSize], cfg.Password)
	return nil
}

func decodeProxy(b []byte) ProxyConfig {
	return ProxyConfig{
		Enabled:  buf.U32(b, ProxyEnableOffset) != 0,
		Port:     uint16(buf.U32(b, ProxyPortOffset)),
		Host:     cString(b[ProxyHostOffset : ProxyHostOffset+ProxyHostSize]),
		User:     cString(b[ProxyUserOffset : ProxyUserOffset+ProxyUserSize]),
		Password: cString(b[ProxyPasswordOffset : ProxyPasswordOffset+ProxyPasswordSize]),
	}
}

func putCString(dst []byte, s string) {
	n := copy(dst, s)
	clear(dst[n:])
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
