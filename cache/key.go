package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/leextar/readercache/internal/format"
)

// KeyMode selects how records are identified. It is fixed when the store
// is constructed.
type KeyMode int

const (
	// KeyFingerprint identifies records by a 128-bit content fingerprint.
	// The display name is a label refreshed on lookup.
	KeyFingerprint KeyMode = iota
	// KeyPath identifies records by their display name string.
	KeyPath
)

func (m KeyMode) String() string {
	switch m {
	case KeyFingerprint:
		return "fingerprint"
	case KeyPath:
		return "path"
	default:
		return fmt.Sprintf("KeyMode(%d)", int(m))
	}
}

// ParseKeyMode parses the names produced by KeyMode.String.
func ParseKeyMode(s string) (KeyMode, error) {
	switch s {
	case "fingerprint", "":
		return KeyFingerprint, nil
	case "path":
		return KeyPath, nil
	default:
		return 0, fmt.Errorf("cache: unknown key mode %q", s)
	}
}

// Fingerprint is the content fingerprint stored in every record.
type Fingerprint [format.FingerprintSize]byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// IsZero reports whether f is all zero bytes.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// Key identifies a record. Build one with FingerprintKey or PathKey.
type Key struct {
	mode KeyMode
	fp   Fingerprint
	name string
}

// FingerprintKey returns a key matched by fp. name is the display name
// stored on insert and refreshed when a lookup finds the record under a
// different name.
func FingerprintKey(fp Fingerprint, name string) Key {
	return Key{mode: KeyFingerprint, fp: fp, name: name}
}

// PathKey returns a key matched by exact display name.
func PathKey(path string) Key {
	return Key{mode: KeyPath, name: path}
}

// Mode returns the key variant.
func (k Key) Mode() KeyMode { return k.mode }

// Fingerprint returns the fingerprint. Zero for path keys.
func (k Key) Fingerprint() Fingerprint { return k.fp }

// Name returns the display name carried by the key.
func (k Key) Name() string { return k.name }

func (k Key) String() string {
	if k.mode == KeyFingerprint {
		return k.fp.String() + " " + k.name
	}
	return k.name
}

// FingerprintReader computes the content fingerprint of everything read from r.
func FingerprintReader(r io.Reader) (Fingerprint, error) {
	var fp Fingerprint
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return fp, fmt.Errorf("cache: fingerprint: %w", err)
	}
	copy(fp[:], h.Sum(nil))
	return fp, nil
}

// FingerprintFile computes the content fingerprint of the file at path.
func FingerprintFile(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("cache: fingerprint: %w", err)
	}
	defer f.Close()
	return FingerprintReader(f)
}
