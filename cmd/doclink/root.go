package main

import (
	"doclink/internal/config"
	"doclink/internal/linker"
	"doclink/internal/logging"
	"doclink/internal/registry"
	"doclink/internal/storage"
	"doclink/internal/version"

	"github.com/spf13/cobra"
)

var (
	// repoRootFlag is the CLI --repo flag value
	repoRootFlag string
	// verboseFlag enables debug logging
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "doclink",
	Short: "doclink - documentation symbol linker",
	Long: `doclink scans rendered documentation for quoted symbol references,
checks each against a symbol registry, and turns recognized references into
interactive annotations that describe the symbol when activated.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("doclink version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&repoRootFlag, "repo", ".",
		"Repository root containing the .doclink directory")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable debug logging")
}

// newLogger builds the logger from config and flags.
func newLogger(cfg *config.Config) *logging.Logger {
	level := logging.LogLevel(cfg.Logging.Level)
	if verboseFlag {
		level = logging.DebugLevel
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  level,
	})
}

// openEngine loads the stored registry into memory and builds a linker
// engine over it. The caller owns closing the returned DB.
func openEngine(cfg *config.Config, logger *logging.Logger) (*linker.Engine, *storage.DB, error) {
	db, err := storage.Open(cfg.RepoRoot, logger)
	if err != nil {
		return nil, nil, err
	}

	repo := storage.NewSymbolRepository(db)
	ix, err := registry.LoadAll(repo)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	engine := linker.NewEngine(ix, linker.NewConfig(ix), logger)
	return engine, db, nil
}
