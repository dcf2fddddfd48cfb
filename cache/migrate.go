package cache

import (
	"context"
	"log/slog"

	"github.com/leextar/readercache/internal/format"
	"github.com/leextar/readercache/internal/repair"
)

// reconcile turns a freshly loaded file into a buffer with the current
// layout, or discards it.
//
//   - Removed, unknown status or a structurally broken file: the backing
//     file is deleted and the store starts empty with defaults.
//   - Current sizes: the loaded bytes are used as is.
//   - Other sizes: a default buffer for the stored record count is built and
//     the stored header and records are copied into it field by field, or by
//     common prefix when the stored layout is unknown.
//
// Every kept or migrated buffer then goes through repair.Normalize.
func (s *Store) reconcile(raw []byte) error {
	r := repair.Inspect(raw)
	s.report = r

	var data []byte
	switch r.Action {
	case repair.ActionReset:
		s.logReport("cache discarded", r)
		if err := removeFile(s.path); err != nil {
			s.log.Warn("cache file not removed", "error", err)
		}
		return s.fresh()

	case repair.ActionKept:
		data = raw[:r.Size:r.Size]

	case repair.ActionMigrated:
		count := int(r.Stored.RecordCount)
		next, err := s.defaultBuffer(count)
		if err != nil {
			s.log.Error("cache migration allocation failed", "records", count)
			return err
		}
		if r.Fallback {
			err = repair.CopyPrefix(next, format.Current, raw,
				int(r.Stored.HeaderSize), int(r.Stored.RecordSize), count)
		} else {
			err = repair.CopyFields(next, format.Current, raw, r.Source, count, r)
		}
		if err != nil {
			s.log.Error("cache migration failed", "error", err)
			return err
		}
		data = next
	}

	if err := repair.Normalize(data, format.Current, r); err != nil {
		s.log.Error("cache normalize failed", "error", err)
		return err
	}
	if err := s.mem.replace(data); err != nil {
		return err
	}
	s.logReport("cache loaded", r)
	return nil
}

func (s *Store) logReport(msg string, r *repair.Report) {
	level := slog.LevelInfo
	if r.Worst() >= repair.SevWarning {
		level = slog.LevelWarn
	}
	s.log.Log(context.Background(), level, msg,
		"action", r.Action.String(),
		"records", r.Stored.RecordCount,
		"stored_version", r.Stored.SchemaVersion,
		"diagnostics", len(r.Diagnostics),
	)
	for _, d := range r.Diagnostics {
		s.log.Debug("cache diagnostic", "detail", d.String())
	}
}
