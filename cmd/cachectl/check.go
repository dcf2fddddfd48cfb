package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leextar/readercache/cache"
	"github.com/leextar/readercache/internal/repair"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report what loading the cache would do",
		Long: `The check command loads a copy of the cache file and prints whether it
would be kept, migrated or reset, together with every issue found. The
cache file itself is never modified.

Example:
  cachectl check
  cachectl check --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
}

func runCheck() error {
	opts, err := storeOptions()
	if err != nil {
		return err
	}
	src := opts.Path
	if src == "" {
		src = cache.DefaultPath()
	}
	data, err := os.ReadFile(src)
	if errors.Is(err, fs.ErrNotExist) {
		printInfo("No cache file at %s\n", src)
		return nil
	}
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "cachectl-check-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	opts.Path = filepath.Join(dir, filepath.Base(src))
	if err := os.WriteFile(opts.Path, data, 0o600); err != nil {
		return err
	}

	s := cache.New(opts)
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}
	r := s.LastReport()

	if jsonOut {
		return printJSON(r)
	}

	printInfo("File: %s (%d bytes)\n", src, len(data))
	printInfo("Stored: version %d, header %d, record %d, count %d\n",
		r.Stored.SchemaVersion, r.Stored.HeaderSize, r.Stored.RecordSize, r.Stored.RecordCount)
	printInfo("Result: %s\n", actionColor(r.Action).Sprint(r.Action))
	if len(r.Diagnostics) == 0 {
		printInfo("%s\n", okColor.Sprint("No issues found"))
		return nil
	}
	printInfo("\n%d issue(s):\n", len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		printInfo("  %s\n", severityColor(d.Severity).Sprint(d.String()))
	}
	return nil
}

func actionColor(a repair.Action) *color.Color {
	switch a {
	case repair.ActionKept:
		return okColor
	case repair.ActionMigrated:
		return warnColor
	default:
		return errColor
	}
}

func severityColor(s repair.Severity) *color.Color {
	switch {
	case s >= repair.SevError:
		return errColor
	case s == repair.SevWarning:
		return warnColor
	default:
		return keyColor
	}
}
