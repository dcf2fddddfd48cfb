//go:build !linux && !freebsd && !darwin && !windows

package durable

import "os"

// Sync flushes the file with os.File.Sync.
func Sync(f *os.File) error {
	return f.Sync()
}

// SyncDir is a no-op on this platform.
func SyncDir(string) error { return nil }

// Hide is a no-op on this platform.
func Hide(string) error { return nil }
