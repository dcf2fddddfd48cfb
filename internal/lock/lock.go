// Package lock guards a cache file against a second process using it at
// the same time. The store itself never locks; commands that load, mutate
// and save take the lock around the whole cycle.
package lock

import (
	"errors"
	"fmt"
	"os"
)

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("lock: cache file in use by another instance")

// Suffix is appended to the cache path to name the lock file.
const Suffix = ".lock"

// Lock is an acquired instance lock. The lock file stays open until Release.
type Lock struct {
	f *os.File
}

// Acquire takes an exclusive, non-blocking lock on path+Suffix.
func Acquire(path string) (*Lock, error) {
	name := path + Suffix
	f, err := os.OpenFile(name, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("lock: open %s: %w", name, err)
	}
	if err := lockFile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Lock{f: f}, nil
}

// Release drops the lock. The lock file is left on disk so that a waiting
// process never locks an unlinked inode.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := unlockFile(l.f)
	if cerr := l.f.Close(); err == nil {
		err = cerr
	}
	l.f = nil
	return err
}
