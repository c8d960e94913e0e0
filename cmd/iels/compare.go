package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <base-result.json> <head-result.json>",
		Short: "Compare two saved score results",
		Long:  `Loads two saved score results and prints per-indicator mean and score deltas.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args[0], args[1])
		},
	}

	return cmd
}

func runCompare(basePath, headPath string) error {
	base, err := loadSavedResult(basePath)
	if err != nil {
		return fmt.Errorf("loading base result: %w", err)
	}
	head, err := loadSavedResult(headPath)
	if err != nil {
		return fmt.Errorf("loading head result: %w", err)
	}

	fmt.Printf("Compare: %s -> %s\n", base.ID, head.ID)
	fmt.Printf("  Score: %.6f -> %.6f (%+.6f)\n", base.Score, head.Score, head.Score-base.Score)
	fmt.Printf("  Band:  %s -> %s\n", base.Band, head.Band)

	baseMeans := make(map[string]float64, len(base.Breakdown))
	for _, ir := range base.Breakdown {
		baseMeans[ir.Key] = ir.Mean
	}

	fmt.Println("\nIndicator means:")
	for _, ir := range head.Breakdown {
		bm, ok := baseMeans[ir.Key]
		if !ok {
			fmt.Printf("  %-20s (new) %.6f\n", ir.Name, ir.Mean)
			continue
		}
		fmt.Printf("  %-20s %.6f -> %.6f (%+.6f)\n", ir.Name, bm, ir.Mean, ir.Mean-bm)
	}

	return nil
}

func loadSavedResult(path string) (*savedResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result: %w", err)
	}

	var result savedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshaling result: %w", err)
	}

	return &result, nil
}
