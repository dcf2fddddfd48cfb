package cache

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation indicates the buffer could not grow to the requested size.
	ErrAllocation = errors.New("cache: allocation failed")
	// ErrKeyMode indicates a key of the other variant was passed to the store.
	ErrKeyMode = errors.New("cache: key variant does not match store key mode")
	// ErrNotInitialized indicates an operation before Init or after Shutdown.
	ErrNotInitialized = errors.New("cache: store not initialized")
	// ErrInitialized indicates Init was called on a store that already holds a buffer.
	ErrInitialized = errors.New("cache: store already initialized")
)

// IOError is returned when the backing file cannot be read or written.
type IOError struct {
	Op    string // "read", "write", or "remove"
	Path  string // Backing file path
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("cache: %s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *IOError) Unwrap() error {
	return e.Cause
}
