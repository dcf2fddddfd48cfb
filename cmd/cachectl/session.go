package main

import (
	"fmt"

	"github.com/leextar/readercache/cache"
	"github.com/leextar/readercache/internal/lock"
	"github.com/leextar/readercache/internal/logger"
	"github.com/leextar/readercache/settings"
)

// storeOptions merges flags over the configuration.
func storeOptions() (cache.Options, error) {
	path := cachePath
	if path == "" {
		path = cfg.Cache.Path
	}
	modeName := keyModeFlag
	if modeName == "" {
		modeName = cfg.Cache.KeyMode
	}
	mode, err := cache.ParseKeyMode(modeName)
	if err != nil {
		return cache.Options{}, err
	}
	return cache.Options{
		Path:    path,
		KeyMode: mode,
		MaxSize: cfg.Cache.MaxSize,
		Defaults: settings.Defaults{
			ScreenWidth:  cfg.Display.ScreenWidth,
			ScreenHeight: cfg.Display.ScreenHeight,
			FontFace:     cfg.Display.FontFace,
			FontHeight:   cfg.Display.FontHeight,
		},
		Logger: logger.For("cachectl"),
	}, nil
}

// withStore loads the cache and runs fn on it. When write is set the
// instance lock is held for the whole cycle and the cache is saved after
// fn succeeds; a failing fn leaves the file as it was.
func withStore(write bool, fn func(s *cache.Store) error) error {
	opts, err := storeOptions()
	if err != nil {
		return err
	}
	s := cache.New(opts)

	if write {
		l, err := lock.Acquire(s.Path())
		if err != nil {
			return err
		}
		defer l.Release()
	}

	printVerbose("Loading cache: %s\n", s.Path())
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}
	if r := s.LastReport(); r != nil && len(r.Diagnostics) > 0 {
		printVerbose("Load %s with %d diagnostic(s), run 'cachectl check' for details\n",
			r.Action, len(r.Diagnostics))
	}

	if err := fn(s); err != nil {
		return err
	}
	if !write {
		return nil
	}
	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("failed to save cache: %w", err)
	}
	printVerbose("Saved cache: %s\n", s.Path())
	return nil
}

// itemAt resolves an index argument to a record.
func itemAt(s *cache.Store, arg string) (cache.Item, error) {
	i, err := parseIndex("index", arg)
	if err != nil {
		return cache.Item{}, err
	}
	it, ok := s.Item(i)
	if !ok {
		return cache.Item{}, fmt.Errorf("no record at index %d (cache holds %d)", i, s.Len())
	}
	return it, nil
}
