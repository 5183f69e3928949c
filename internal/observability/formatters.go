// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/brand-checker/internal/batch"
	"github.com/jonathan/brand-checker/internal/types"
)

// ruleWidth is the width of the separator lines around the status banner.
const ruleWidth = 50

// Printer handles human-readable output for check results.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// severityIcon maps an explanation severity to its display icon.
func severityIcon(s types.ExplanationSeverity) string {
	switch s {
	case types.SeverityCritical:
		return "❌"
	case types.SeverityWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

// statusIcon maps a verdict status to its display icon.
func statusIcon(s types.AlignmentStatus) string {
	switch s {
	case types.StatusOnBrand:
		return "✅"
	case types.StatusBorderline:
		return "⚠️"
	case types.StatusOffBrand:
		return "❌"
	default:
		return "?"
	}
}

// PrintVerdict outputs a human-readable summary of a single check.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintVerdict(verdict *types.Verdict) {
	rule := strings.Repeat("─", ruleWidth)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "  %s\n", verdict.StatusDisplay)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out)

	fmt.Fprintln(p.out, "Explanation:")
	for _, exp := range verdict.Explanations {
		fmt.Fprintf(p.out, "  %s %s\n", severityIcon(exp.Severity), exp.Text)
	}

	fmt.Fprintf(p.out, "\nConfidence: %d%%\n", verdict.Confidence)
	fmt.Fprintf(p.out, "Profile: v%s\n\n", verdict.ProfileVersion)
}

// PrintBatch outputs per-file statuses and the batch summary.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatch(results []batch.Result, summary batch.Summary) {
	fmt.Fprintf(p.out, "\n📊 Brand Check Results (%d files)\n\n", summary.Total)

	for _, result := range results {
		fmt.Fprintf(p.out, "  %s %s\n", statusIcon(result.Verdict.Status), result.File)
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, strings.Repeat("─", 40))
	fmt.Fprintf(p.out, "Summary: ✅ %d | ⚠️ %d | ❌ %d\n",
		summary.OnBrand, summary.Borderline, summary.OffBrand)
	fmt.Fprintf(p.out, "Brand Health Score: %.1f%%\n", summary.HealthScore)

	if len(summary.NeedsAttention) > 0 {
		fmt.Fprintf(p.out, "\n⚠️  %d file(s) need attention\n", len(summary.NeedsAttention))
	}
	fmt.Fprintln(p.out)
}
