package main

import (
	"github.com/spf13/cobra"

	"github.com/leextar/readercache/cache"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List records in most-recently-used order",
		Long: `The list command prints every record with its index, display name,
reading position and bookmark count. Index 0 is the most recently used.

Example:
  cachectl list
  cachectl list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	return withStore(false, func(s *cache.Store) error {
		entries := s.Items()
		if jsonOut {
			return printJSON(entries)
		}
		if len(entries) == 0 {
			printInfo("Cache is empty\n")
			return nil
		}
		sel, hasSel := s.Selected()
		for _, e := range entries {
			marker := " "
			if hasSel && e.Index == sel {
				marker = "*"
			}
			printInfo("%s%3d  %s  pos=%d marks=%d\n", marker, e.Index, keyColor.Sprint(e.Name), e.Position, len(e.Marks))
			if e.Fingerprint != "" {
				printVerbose("      %s\n", e.Fingerprint)
			}
		}
		return nil
	})
}
