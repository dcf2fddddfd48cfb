package main

import (
	"github.com/spf13/cobra"

	"github.com/leextar/readercache/cache"
)

var openPosition int64

func init() {
	cmd := newOpenCmd()
	cmd.Flags().Int64Var(&openPosition, "position", -1, "Also store this reading position")
	rootCmd.AddCommand(cmd)
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <index>",
		Short: "Mark a record as opened",
		Long: `The open command moves the record at <index> to the front and stores
<index> as the selected record, as the reader does when a document is
reopened from its history.

Example:
  cachectl open 3
  cachectl open 3 --position 20480`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(args)
		},
	}
}

func runOpen(args []string) error {
	return withStore(true, func(s *cache.Store) error {
		from, err := itemAt(s, args[0])
		if err != nil {
			return err
		}
		it, _ := s.Open(from.Index())
		if openPosition >= 0 {
			it.SetPosition(openPosition)
		}
		if jsonOut {
			return printJSON(s.Items()[0])
		}
		printInfo("%s %s (position %d)\n", okColor.Sprint("Opened:"), it.DisplayName(), it.Position())
		return nil
	})
}
