package main

import (
	"os"

	"github.com/spf13/cobra"

	"doclink/internal/buffer"
	"doclink/internal/config"
	"doclink/internal/export"
)

var (
	scanFormatFlag   string
	scanCompressFlag bool
	scanOutputFlag   string
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "Scan documentation files and print the resulting annotations",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFormatFlag, "format", "json", "Output format: json or yaml")
	scanCmd.Flags().BoolVar(&scanCompressFlag, "compress", false, "zstd-compress the output")
	scanCmd.Flags().StringVarP(&scanOutputFlag, "output", "o", "", "Write output to a file instead of stdout")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(repoRootFlag)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	engine, db, err := openEngine(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	var docs []export.Document
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if cfg.Scan.MaxFileSizeBytes > 0 && info.Size() > int64(cfg.Scan.MaxFileSizeBytes) {
			logger.Warn("skipping oversized file", map[string]interface{}{
				"path": path, "size": info.Size(),
			})
			continue
		}

		text, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		buf := buffer.New(path, string(text))
		stats, err := engine.Scan(buf)
		if err != nil {
			return err
		}
		docs = append(docs, export.FromBuffer(buf, stats))
	}

	out := os.Stdout
	if scanOutputFlag != "" {
		f, err := os.Create(scanOutputFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return export.Write(out, docs, export.Format(scanFormatFlag), scanCompressFlag)
}
