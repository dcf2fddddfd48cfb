package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leextar/readercache/internal/config"
	"github.com/leextar/readercache/internal/logger"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	noColor     bool
	cachePath   string
	configPath  string
	keyModeFlag string

	// cfg is the loaded configuration; flags override it.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "cachectl",
	Short: "Inspect and edit a reader's recent-documents cache",
	Long: `cachectl reads and edits the single-file cache in which the reader keeps
its recently opened documents, their bookmarks, and its window settings.
Older cache layouts are migrated on load; damaged files are reset.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup() },
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVarP(&cachePath, "cache", "c", "", "Cache file (default: .readercache next to the executable)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().
		StringVar(&keyModeFlag, "key-mode", "", "Record key: fingerprint or path (default from config)")
}

func execute() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration file and starts logging.
func setup() error {
	if noColor {
		color.NoColor = true
	}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	return logger.Init(logger.Options{
		Enabled: cfg.Logging.Enabled,
		LogDir:  cfg.Logging.Dir,
		Level:   level,
	})
}

// Helper functions for output

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
	keyColor  = color.New(color.FgCyan)
)

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseIndex parses a non-negative integer argument.
func parseIndex(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", what, s)
	}
	return n, nil
}
