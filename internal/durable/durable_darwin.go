//go:build darwin

package durable

import (
	"os"

	"golang.org/x/sys/unix"
)

// Sync flushes the file with F_FULLFSYNC so the data reaches the platter and
// not just the drive cache. Filesystems that reject it fall back to fsync.
func Sync(f *os.File) error {
	if _, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0); err == nil {
		return nil
	}
	return unix.Fsync(int(f.Fd()))
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
