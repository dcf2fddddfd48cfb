package cache

import (
	"fmt"

	"github.com/leextar/readercache/internal/format"
)

// DefaultMaxSize is the arena cap used when Options.MaxSize is zero.
const DefaultMaxSize = 64 << 20

// Rebaser is implemented by collaborators that keep slices into the header,
// such as the hotkey table and proxy settings views. Rebase is called with
// the header bytes of the new buffer every time the buffer moves, and with
// nil when the store releases it. Slices obtained before the call must not
// be used afterwards.
type Rebaser interface {
	Rebase(header []byte)
}

// arena owns the single byte buffer backing the header and records.
//
// The logical length is always exactly the requested size. Growth past the
// capacity relocates into a new slice; shrinking only reslices. compact
// gives back capacity that shrinking left behind.
type arena struct {
	data  []byte
	max   int
	moved func(data []byte)
}

// resize makes the logical length exactly n. Bytes exposed by growth are zero.
// On failure the arena is left unchanged.
func (a *arena) resize(n int) error {
	if n < 0 || n > a.max {
		return fmt.Errorf("%w: %d bytes requested, limit %d", ErrAllocation, n, a.max)
	}
	old := len(a.data)
	if n <= cap(a.data) {
		a.data = a.data[:n]
		if n > old {
			clear(a.data[old:n])
		}
		return nil
	}
	next := make([]byte, n)
	copy(next, a.data)
	a.data = next
	a.notify()
	return nil
}

// replace swaps in a buffer built elsewhere (load, migration, reset).
func (a *arena) replace(data []byte) error {
	if len(data) > a.max {
		return fmt.Errorf("%w: %d bytes requested, limit %d", ErrAllocation, len(data), a.max)
	}
	a.data = data
	a.notify()
	return nil
}

// compact relocates into a right-sized slice when at least half the
// capacity is unused.
func (a *arena) compact() {
	if a.data == nil || cap(a.data) < 2*len(a.data) {
		return
	}
	next := make([]byte, len(a.data))
	copy(next, a.data)
	a.data = next
	a.notify()
}

// release drops the buffer.
func (a *arena) release() {
	a.data = nil
	a.notify()
}

func (a *arena) notify() {
	if a.moved != nil {
		a.moved(a.data)
	}
}

// header returns the header bytes of data, or nil when data holds none.
func header(data []byte) []byte {
	if len(data) < format.HeaderSize {
		return nil
	}
	return data[:format.HeaderSize:format.HeaderSize]
}
