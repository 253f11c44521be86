package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"doclink/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration to .doclink/config.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		cfg.RepoRoot = repoRootFlag
		if err := config.Save(cfg, repoRootFlag); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", filepath.Join(repoRootFlag, ".doclink", "config.json"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
