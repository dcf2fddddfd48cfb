package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leextar/readercache/cache"
)

func init() {
	rootCmd.AddCommand(newMarkCmd())
}

func newMarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Manage bookmarks of a record",
		Long: `The mark command lists, adds and removes the bookmarks stored with a
record. A bookmark is a reading position.

Example:
  cachectl mark list 0
  cachectl mark add 0 4096
  cachectl mark rm 0 1`,
	}
	cmd.AddCommand(newMarkListCmd(), newMarkAddCmd(), newMarkRmCmd())
	return cmd
}

func newMarkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <index>",
		Short: "List bookmarks of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMarkList(args)
		},
	}
}

func newMarkAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <index> <position>",
		Short: "Add a bookmark to a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMarkAdd(args)
		},
	}
}

func newMarkRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index> <mark>",
		Short: "Remove the n-th bookmark of a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMarkRm(args)
		},
	}
}

func runMarkList(args []string) error {
	return withStore(false, func(s *cache.Store) error {
		it, err := itemAt(s, args[0])
		if err != nil {
			return err
		}
		marks := it.Marks()
		if jsonOut {
			return printJSON(marks)
		}
		if len(marks) == 0 {
			printInfo("No bookmarks\n")
			return nil
		}
		for i, m := range marks {
			printInfo("%3d  %d\n", i, m)
		}
		return nil
	})
}

func runMarkAdd(args []string) error {
	pos, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid position %q: %w", args[1], err)
	}
	return withStore(true, func(s *cache.Store) error {
		it, err := itemAt(s, args[0])
		if err != nil {
			return err
		}
		if !it.AddMark(int32(pos)) {
			return fmt.Errorf("cannot add bookmark %d: record has %d bookmark(s) or already holds it",
				pos, it.MarkCount())
		}
		printInfo("%s %d on %s\n", okColor.Sprint("Bookmarked:"), pos, it.DisplayName())
		return nil
	})
}

func runMarkRm(args []string) error {
	n, err := parseIndex("mark", args[1])
	if err != nil {
		return err
	}
	return withStore(true, func(s *cache.Store) error {
		it, err := itemAt(s, args[0])
		if err != nil {
			return err
		}
		if !it.RemoveMark(n) {
			return fmt.Errorf("no bookmark %d (record has %d)", n, it.MarkCount())
		}
		printInfo("%s bookmark %d\n", okColor.Sprint("Removed:"), n)
		return nil
	})
}
