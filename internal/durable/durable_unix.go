//go:build linux || freebsd

package durable

import (
	"os"

	"golang.org/x/sys/unix"
)

// Sync flushes the file's data with fdatasync.
func Sync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}

// SyncDir fsyncs the directory so a completed rename survives a crash.
func SyncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return unix.Fsync(int(d.Fd()))
}

// Hide is a no-op; the default file name is already a dotfile.
func Hide(string) error { return nil }
