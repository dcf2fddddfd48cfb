// Package cache implements a single-file record store for a reader's list
// of recently opened documents.
//
// # Overview
//
// The whole store is one byte buffer: a fixed-layout header followed by a
// contiguous array of fixed-size item records. It is read from disk in one
// read, mutated in memory, and written back in one write.
//
//	[header: core + settings payload] [record 0] [record 1] ... [record n-1]
//
// Record i lives at RecordOffset(i). Every record carries an id equal to its
// index, a key (content fingerprint or path, see KeyMode), a UTF-16 display
// name, the last reading position, and a bounded list of bookmarks.
//
// # Lifecycle
//
//	s := cache.New(cache.Options{Path: path, Defaults: settings.Defaults{}})
//	if err := s.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Shutdown()
//
//	it, ok, err := s.Insert(cache.PathKey(`C:\books\a.txt`))
//
// Insert and Open move their record to index 0, so the records are kept in
// most-recently-used order.
//
// # Reconciling old files
//
// Init classifies the stored header. A removed, unrecognized, or broken file
// is deleted and the store starts empty. A file written with other header or
// record sizes is migrated into the current layout field by field, using the
// layout tables in internal/format. LastReport describes what was found.
//
// # Buffer relocation
//
// Growing the store can move the buffer. Item views hold an index and
// resolve it on every call. Collaborators that keep slices into the header
// implement Rebaser and are registered with Attach; they are rebased
// before the operation that moved the buffer returns.
package cache
