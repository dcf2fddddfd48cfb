//go:build windows

package durable

import (
	"os"

	"golang.org/x/sys/windows"
)

// Sync flushes the file with FlushFileBuffers.
func Sync(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}

// SyncDir is a no-op; directory handles cannot be flushed on Windows.
func SyncDir(string) error { return nil }

// Hide sets FILE_ATTRIBUTE_HIDDEN on path, keeping its other attributes.
func Hide(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	if attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0 {
		return nil
	}
	return windows.SetFileAttributes(p, attrs|windows.FILE_ATTRIBUTE_HIDDEN)
}
