package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leextar/readercache/cache"
)

func init() {
	rootCmd.AddCommand(newAddCmd())
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <document>",
		Short: "Add a document to the front of the cache",
		Long: `The add command records a document as most recently used. In
fingerprint mode the document is read to compute its fingerprint, and a
document already in the cache under another path has its name updated.

Example:
  cachectl add ~/books/novel.txt
  cachectl add ~/books/novel.txt --key-mode path`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args)
		},
	}
}

func runAdd(args []string) error {
	doc, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	return withStore(true, func(s *cache.Store) error {
		key := cache.PathKey(doc)
		if s.KeyMode() == cache.KeyFingerprint {
			fp, err := cache.FingerprintFile(doc)
			if err != nil {
				return err
			}
			printVerbose("Fingerprint: %s\n", fp)
			key = cache.FingerprintKey(fp, doc)
		}

		_, ok, err := s.Insert(key)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", doc, err)
		}
		if !ok {
			printInfo("%s %s\n", warnColor.Sprint("Already cached:"), doc)
			return nil
		}
		printInfo("%s %s\n", okColor.Sprint("Added:"), doc)
		return nil
	})
}
