package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-checker/internal/batch"
	"github.com/jonathan/brand-checker/internal/observability"
	"github.com/jonathan/brand-checker/internal/profile"
)

var (
	batchDir         string
	batchProfilePath string
	batchJSON        bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Check multiple files for brand consistency",
	Long:  `Evaluate every .txt and .md file in a directory against the brand profile and print a summary with a brand health score.`,
	Run: func(_ *cobra.Command, _ []string) {
		os.Exit(runBatch())
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory containing content files")
	batchCmd.Flags().StringVarP(&batchProfilePath, "profile", "p", "./brand-profile.json", "Path to brand profile")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Output as JSON")
	_ = batchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(batchCmd)
}

// batchOutput is the machine-readable shape for --json batch runs.
type batchOutput struct {
	Results []batch.Result `json:"results"`
	Summary batch.Summary  `json:"summary"`
}

func runBatch() int {
	p, err := profile.Load(batchProfilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	results, summary, err := batch.RunDir(context.Background(), batchDir, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	if len(results) == 0 {
		fmt.Printf("No .txt or .md files found in %s\n", batchDir)
		return exitOK
	}

	if batchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(batchOutput{Results: results, Summary: summary}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	} else {
		observability.NewPrinter(os.Stdout).PrintBatch(results, summary)
	}

	if summary.OffBrand > 0 {
		return exitOffBrand
	}
	return exitOK
}
