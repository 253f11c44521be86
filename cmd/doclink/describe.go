package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"doclink/internal/buffer"
	"doclink/internal/config"
)

var describeCategoryFlag string

var describeCmd = &cobra.Command{
	Use:   "describe <symbol>",
	Short: "Activate a symbol link and print its detail view",
	Long: `Dispatches an activation for the given symbol as if its annotation
had been activated in a buffer. --category selects the link category:
variable, function, face, symbol, or source.`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVar(&describeCategoryFlag, "category", "symbol",
		"Link category: variable, function, face, symbol, or source")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
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

	cat, err := parseCategory(describeCategoryFlag)
	if err != nil {
		return err
	}

	act, err := engine.Activate(&buffer.Annotation{Cat: cat, Symbol: args[0]})
	if err != nil {
		return err
	}

	if act.View != nil {
		fmt.Println(act.View.Title)
		fmt.Println()
		fmt.Println(act.View.Body)
	}
	if act.Message != "" {
		fmt.Println(act.Message)
	}
	return nil
}

func parseCategory(s string) (buffer.Category, error) {
	switch s {
	case "variable":
		return buffer.CategoryVariable, nil
	case "function":
		return buffer.CategoryFunction, nil
	case "face":
		return buffer.CategoryFace, nil
	case "symbol":
		return buffer.CategorySymbol, nil
	case "source", "definition-source":
		return buffer.CategoryDefinition, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}
