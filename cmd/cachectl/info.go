package main

import (
	"github.com/spf13/cobra"

	"github.com/leextar/readercache/cache"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache file metadata",
		Long: `The info command loads the cache and reports its location, size,
schema version, record count and current selection.

Example:
  cachectl info
  cachectl info --cache ~/.readercache --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
}

func runInfo() error {
	return withStore(false, func(s *cache.Store) error {
		sel, hasSel := s.Selected()
		action := "NEW"
		if r := s.LastReport(); r != nil {
			action = r.Action.String()
		}

		if jsonOut {
			info := map[string]any{
				"path":           s.Path(),
				"size":           s.Size(),
				"schema_version": s.SchemaVersion(),
				"key_mode":       s.KeyMode().String(),
				"records":        s.Len(),
				"load":           action,
			}
			if hasSel {
				info["selected"] = sel
			}
			return printJSON(info)
		}

		printInfo("\nCache Information:\n")
		printInfo("  File: %s\n", s.Path())
		printInfo("  Size: %d bytes\n", s.Size())
		printInfo("  Schema: v%d\n", s.SchemaVersion())
		printInfo("  Key mode: %s\n", s.KeyMode())
		printInfo("  Records: %d\n", s.Len())
		if hasSel {
			printInfo("  Selected: %d\n", sel)
		} else {
			printInfo("  Selected: none\n")
		}
		printInfo("  Load: %s\n", action)
		return nil
	})
}
