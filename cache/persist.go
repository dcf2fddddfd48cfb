package cache

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/leextar/readercache/internal/durable"
)

// loadFile reads the whole backing file in one read. A missing file yields
// an error matching fs.ErrNotExist. A file larger than limit fails with
// ErrAllocation before anything is read.
func loadFile(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Cause: err}
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Cause: err}
	}
	if !st.Mode().IsRegular() {
		return nil, &IOError{Op: "read", Path: path, Cause: fmt.Errorf("not a regular file: %s", st.Mode())}
	}
	size := st.Size()
	if size > int64(limit) {
		return nil, fmt.Errorf("%w: file of %d bytes exceeds limit %d", ErrAllocation, size, limit)
	}

	data := make([]byte, size)
	n, err := io.ReadFull(f, data)
	if err != nil {
		return nil, &IOError{
			Op:    "read",
			Path:  path,
			Cause: fmt.Errorf("read %d of %d bytes: %w", n, size, err),
		}
	}
	return data, nil
}

// storeFile replaces the backing file with data. The bytes go to a temp
// file in the same directory which is synced and renamed over path, so a
// failed store leaves the previous file in place.
func storeFile(path string, data []byte) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return &IOError{Op: "write", Path: path, Cause: err}
	}
	tmpPath := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	n, err := tmp.Write(data)
	if err != nil {
		return &IOError{Op: "write", Path: path, Cause: err}
	}
	if n != len(data) {
		return &IOError{Op: "write", Path: path, Cause: fmt.Errorf("wrote %d of %d bytes", n, len(data))}
	}
	if err := durable.Sync(tmp); err != nil {
		return &IOError{Op: "write", Path: path, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Cause: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &IOError{Op: "write", Path: path, Cause: err}
	}
	renamed = true

	// directory sync and the hidden attribute are best effort
	_ = durable.SyncDir(dir)
	_ = durable.Hide(path)
	return nil
}

// removeFile deletes the backing file. A missing file is not an error.
func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &IOError{Op: "remove", Path: path, Cause: err}
	}
	return nil
}
