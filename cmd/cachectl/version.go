package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leextar/readercache/internal/format"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cachectl %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  cache schema: v%d\n", format.CurrentVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
