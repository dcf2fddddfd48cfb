package cache

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leextar/readercache/internal/buf"
	"github.com/leextar/readercache/internal/format"
	"github.com/leextar/readercache/internal/logger"
	"github.com/leextar/readercache/internal/repair"
)

// DefaultFileName is the backing file name used when Options.Path is empty.
const DefaultFileName = ".readercache"

// Defaults fills the settings payload of a freshly initialized header.
// payload is zeroed and sized for the current layout.
type Defaults interface {
	Encode(payload []byte)
}

// Options configures a Store.
type Options struct {
	// Path of the backing file. Empty means DefaultPath().
	Path string
	// KeyMode selects fingerprint or path keys for the store's lifetime.
	KeyMode KeyMode
	// Defaults produces the settings payload for new and reset stores.
	// Nil leaves the payload zeroed.
	Defaults Defaults
	// MaxSize caps the buffer in bytes. Zero means DefaultMaxSize.
	MaxSize int
	// Logger receives lifecycle events, tagged with the path. Nil means
	// logger.For("cache").
	Logger *slog.Logger
}

// Store is a single-file record store. It is not safe for concurrent use.
type Store struct {
	path     string
	mode     KeyMode
	defaults Defaults
	log      *slog.Logger

	mem      arena
	rebasers []Rebaser
	report   *repair.Report
}

// DefaultPath returns DefaultFileName next to the running executable,
// falling back to the working directory.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

// New returns an uninitialized store. Call Init before anything else.
func New(opts Options) *Store {
	s := &Store{
		path:     opts.Path,
		mode:     opts.KeyMode,
		defaults: opts.Defaults,
		log:      opts.Logger,
	}
	if s.path == "" {
		s.path = DefaultPath()
	}
	if s.log == nil {
		s.log = logger.For("cache")
	}
	s.log = s.log.With("path", s.path)
	s.mem.max = opts.MaxSize
	if s.mem.max <= 0 {
		s.mem.max = DefaultMaxSize
	}
	s.mem.moved = s.rebase
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// KeyMode returns the key variant the store was constructed with.
func (s *Store) KeyMode() KeyMode { return s.mode }

// Init loads and reconciles the backing file, or starts an empty store when
// the file does not exist. A failed Init leaves the store unusable.
func (s *Store) Init() error {
	if s.mem.data != nil {
		return ErrInitialized
	}
	raw, err := loadFile(s.path, s.mem.max)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.log.Info("cache file absent, starting empty")
		s.report = nil
		return s.fresh()
	case err != nil:
		s.log.Error("cache load failed", "error", err)
		return err
	}
	return s.reconcile(raw)
}

// Save writes the whole buffer to the backing file.
func (s *Store) Save() error {
	if s.mem.data == nil {
		return ErrNotInitialized
	}
	s.mem.compact()
	if err := storeFile(s.path, s.mem.data); err != nil {
		s.log.Error("cache save failed", "error", err)
		return err
	}
	s.log.Debug("cache saved", "records", s.count(), "bytes", len(s.mem.data))
	return nil
}

// Shutdown saves the buffer if one is held and then releases it. The buffer
// is released even when the save fails. Shutdown on a store without a
// buffer is a no-op.
func (s *Store) Shutdown() error {
	if s.mem.data == nil {
		return nil
	}
	err := storeFile(s.path, s.mem.data)
	if err != nil {
		s.log.Error("cache flush on shutdown failed", "error", err)
	}
	s.mem.release()
	return err
}

// Attach registers a collaborator that holds slices into the header and
// rebases it against the current buffer immediately.
func (s *Store) Attach(r Rebaser) {
	s.rebasers = append(s.rebasers, r)
	r.Rebase(header(s.mem.data))
}

// LastReport returns what Init found and repaired. It is nil before Init
// and when Init found no backing file.
func (s *Store) LastReport() *repair.Report { return s.report }

// Settings returns the raw settings payload of the current buffer. The
// slice is invalidated by any operation that grows the store.
func (s *Store) Settings() []byte {
	if s.mem.data == nil {
		return nil
	}
	return format.Current.Settings(s.mem.data)
}

// SchemaVersion returns the schema version stamped in the header.
func (s *Store) SchemaVersion() uint32 {
	return buf.U32(s.mem.data, format.HdrSchemaVersionOffset)
}

// Size returns the buffer size in bytes.
func (s *Store) Size() int { return len(s.mem.data) }

func (s *Store) rebase(data []byte) {
	h := header(data)
	for _, r := range s.rebasers {
		r.Rebase(h)
	}
}

// fresh installs a default header with no records.
func (s *Store) fresh() error {
	data, err := s.defaultBuffer(0)
	if err != nil {
		return err
	}
	return s.mem.replace(data)
}

// defaultBuffer allocates a buffer for count zeroed records under the
// current layout with a default header.
func (s *Store) defaultBuffer(count int) ([]byte, error) {
	l := format.Current
	n, ok := buf.SlotOffset(l.HeaderSize, count, l.RecordSize)
	if !ok || n > s.mem.max {
		return nil, ErrAllocation
	}
	data := make([]byte, n)
	format.PutHeader(data, format.Header{
		Status:        format.StatusActive,
		HeaderSize:    uint32(l.HeaderSize),
		RecordSize:    uint32(l.RecordSize),
		RecordCount:   int32(count),
		Selected:      format.NoSelection,
		SchemaVersion: l.Version,
	})
	if s.defaults != nil {
		s.defaults.Encode(l.Settings(data))
	}
	return data, nil
}
