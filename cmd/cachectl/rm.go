package main

import (
	"github.com/spf13/cobra"

	"github.com/leextar/readercache/cache"
)

func init() {
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newClearCmd())
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove one record",
		Long: `The rm command deletes the record at <index>. Later records move
up by one.

Example:
  cachectl rm 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(args)
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every record",
		Long: `The clear command deletes all records and the selection. Settings
are kept.

Example:
  cachectl clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear()
		},
	}
}

func runRm(args []string) error {
	return withStore(true, func(s *cache.Store) error {
		it, err := itemAt(s, args[0])
		if err != nil {
			return err
		}
		name := it.DisplayName()
		s.Delete(it.Index())
		printInfo("%s %s\n", okColor.Sprint("Removed:"), name)
		return nil
	})
}

func runClear() error {
	return withStore(true, func(s *cache.Store) error {
		n := s.Len()
		s.DeleteAll()
		printInfo("%s %d record(s)\n", okColor.Sprint("Cleared:"), n)
		return nil
	})
}
