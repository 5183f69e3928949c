// Package main provides the entry point for the brand consistency checker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Exit codes: 0 = on-brand (or clean batch), 1 = off-brand content found,
// 2 = any error (missing profile, malformed JSON, I/O failure).
const (
	exitOK       = 0
	exitOffBrand = 1
	exitError    = 2
)

var rootCmd = &cobra.Command{
	Use:   "brand_agent",
	Short: "Brand consistency checker",
	Long:  "brand_agent evaluates content against a declarative brand profile and reports an on-brand, borderline, or off-brand verdict with explanations and a confidence score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}
