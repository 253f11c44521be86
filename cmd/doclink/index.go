package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"doclink/internal/config"
	"doclink/internal/registry"
	"doclink/internal/storage"
	"doclink/internal/symbols"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the symbol registry from configured sources",
	Long: `Builds the symbol registry database from tree-sitter source
extraction, an optional SCIP index, and the SYMBOLS.toml declarations file.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(repoRootFlag)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	db, err := storage.Open(cfg.RepoRoot, logger)
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewSymbolRepository(db)

	// Tree-sitter extraction over configured source roots.
	if symbols.IsAvailable() {
		extractor := symbols.NewExtractor()
		var extracted []*registry.Symbol
		for _, root := range cfg.Registry.SourceRoots {
			decls, err := extractor.ExtractDirectory(
				context.Background(),
				filepath.Join(cfg.RepoRoot, root),
				cfg.Scan.Exclude,
			)
			if err != nil {
				return err
			}
			for _, d := range decls {
				extracted = append(extracted, &registry.Symbol{
					Name: d.Name,
					Kind: d.Kind,
					File: d.File,
					Line: d.Line,
				})
			}
		}
		if err := registry.Save(repo, extracted, "treesitter"); err != nil {
			return err
		}
		logger.Info("indexed source declarations", map[string]interface{}{
			"count": len(extracted),
		})
	} else {
		logger.Warn("tree-sitter extraction unavailable (built without cgo)", nil)
	}

	// SCIP index, when configured.
	if cfg.Registry.ScipIndexPath != "" {
		scipSyms, err := registry.LoadSCIP(filepath.Join(cfg.RepoRoot, cfg.Registry.ScipIndexPath))
		if err != nil {
			return err
		}
		if err := registry.Save(repo, scipSyms, "scip"); err != nil {
			return err
		}
		logger.Info("indexed SCIP symbols", map[string]interface{}{
			"count": len(scipSyms),
		})
	}

	// Manual declarations.
	declared, err := registry.LoadDeclarations(filepath.Join(cfg.RepoRoot, cfg.Registry.DeclarationsFile))
	if err != nil {
		return err
	}
	if len(declared) > 0 {
		if err := registry.Save(repo, declared, "declared"); err != nil {
			return err
		}
		logger.Info("indexed declared symbols", map[string]interface{}{
			"count": len(declared),
		})
	}

	total, err := repo.Count()
	if err != nil {
		return err
	}
	fmt.Printf("Registry built: %d symbols\n", total)
	return nil
}
