package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leextar/readercache/cache"
)

func init() {
	rootCmd.AddCommand(newMoveCmd())
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Reorder a record",
		Long: `The move command places the record at <from> at index <to>, keeping
the order of every other record.

Example:
  cachectl move 4 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(args)
		},
	}
}

func runMove(args []string) error {
	from, err := parseIndex("from", args[0])
	if err != nil {
		return err
	}
	to, err := parseIndex("to", args[1])
	if err != nil {
		return err
	}
	return withStore(true, func(s *cache.Store) error {
		if !s.Move(from, to) {
			return fmt.Errorf("cannot move %d to %d: cache holds %d record(s)", from, to, s.Len())
		}
		printInfo("%s %d -> %d\n", okColor.Sprint("Moved:"), from, to)
		return nil
	})
}
