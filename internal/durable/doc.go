// Package durable provides the platform-specific pieces of writing the cache
// file: flushing file data to stable storage, syncing the parent directory
// after a rename, and marking the file hidden where the platform has such
// an attribute.
package durable
