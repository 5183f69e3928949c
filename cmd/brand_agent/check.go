package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-checker/internal/audit"
	"github.com/jonathan/brand-checker/internal/engine"
	"github.com/jonathan/brand-checker/internal/observability"
	"github.com/jonathan/brand-checker/internal/profile"
	"github.com/jonathan/brand-checker/internal/types"
)

var (
	checkFile        string
	checkProfilePath string
	checkContentType string
	checkJSON        bool
	checkAuditLog    string
)

var checkCmd = &cobra.Command{
	Use:   "check [content]",
	Short: "Check content for brand consistency",
	Long:  `Evaluate a piece of content against the brand profile. Content comes from the argument or from --file.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(runCheck(args))
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Read content from file")
	checkCmd.Flags().StringVarP(&checkProfilePath, "profile", "p", "./brand-profile.json", "Path to brand profile")
	checkCmd.Flags().StringVarP(&checkContentType, "type", "t", "", "Content type hint (ad-copy, social-post, ...)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON")
	checkCmd.Flags().StringVar(&checkAuditLog, "audit-log", "", "Append an audit entry to this JSONL file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(args []string) int {
	content, err := resolveContent(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	req := types.CheckRequest{
		Content:     content,
		ContentType: types.ContentType(checkContentType),
	}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	p, err := profile.Load(checkProfilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	verdict, err := engine.Evaluate(req.Content, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	if checkAuditLog != "" {
		if err := audit.NewRecorder(checkAuditLog).Record(audit.NewEntry(p, verdict)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	}

	if checkJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(verdict); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	} else {
		observability.NewPrinter(os.Stdout).PrintVerdict(verdict)
	}

	if verdict.Status == types.StatusOffBrand {
		return exitOffBrand
	}
	return exitOK
}

// resolveContent returns the content from the positional argument or --file.
func resolveContent(args []string) (string, error) {
	if checkFile != "" {
		data, err := os.ReadFile(checkFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", checkFile, err)
		}
		return string(data), nil
	}
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	return "", fmt.Errorf("please provide content or use --file")
}
