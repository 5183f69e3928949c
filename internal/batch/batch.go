// Package batch evaluates many content items against one profile. Items are
// independent, so they run concurrently over a shared read-only profile and
// results come back in input order.
package batch

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/brand-checker/internal/engine"
	"github.com/jonathan/brand-checker/internal/types"
)

// Result pairs one input with its verdict.
type Result struct {
	// File is the source path when the batch came from a directory.
	File    string         `json:"file,omitempty"`
	Verdict *types.Verdict `json:"verdict"`
}

// Summary aggregates a batch of verdicts.
type Summary struct {
	Total      int `json:"total"`
	OnBrand    int `json:"on_brand"`
	Borderline int `json:"borderline"`
	OffBrand   int `json:"off_brand"`
	// HealthScore is (onBrand*100 + borderline*50) / total, rounded to one
	// decimal, 0 when the batch is empty.
	HealthScore float64 `json:"health_score"`
	// NeedsAttention holds the input indices of off-brand items.
	NeedsAttention []int `json:"needs_attention"`
}

// EvaluateAll checks every content item against the profile, in parallel.
// Results keep input order. Any item error fails the whole batch.
func EvaluateAll(ctx context.Context, contents []string, profile *types.BrandProfile) ([]*types.Verdict, error) {
	verdicts := make([]*types.Verdict, len(contents))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, content := range contents {
		g.Go(func() error {
			verdict, err := engine.Evaluate(content, profile)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			verdicts[i] = verdict
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}

// Summarize computes the aggregate counts and health score for a batch.
func Summarize(verdicts []*types.Verdict) Summary {
	summary := Summary{
		Total:          len(verdicts),
		NeedsAttention: []int{},
	}
	for i, v := range verdicts {
		switch v.Status {
		case types.StatusOnBrand:
			summary.OnBrand++
		case types.StatusBorderline:
			summary.Borderline++
		case types.StatusOffBrand:
			summary.OffBrand++
			summary.NeedsAttention = append(summary.NeedsAttention, i)
		}
	}
	if summary.Total > 0 {
		raw := float64(summary.OnBrand*100+summary.Borderline*50) / float64(summary.Total)
		summary.HealthScore = math.Round(raw*10) / 10
	}
	return summary
}

// RunDir evaluates every .txt and .md file in dir, in name order. Returns the
// per-file results and the batch summary.
func RunDir(ctx context.Context, dir string, profile *types.BrandProfile) ([]Result, Summary, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Summary{}, fmt.Errorf("directory not found: %s", dir)
		}
		return nil, Summary{}, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, Summary{}, fmt.Errorf("not a directory: %s", dir)
	}

	var files []string
	for _, pattern := range []string{"*.txt", "*.md"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, Summary{}, fmt.Errorf("failed to list %s: %w", dir, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	contents := make([]string, len(files))
	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("failed to read %s: %w", file, err)
		}
		contents[i] = string(data)
	}

	verdicts, err := EvaluateAll(ctx, contents, profile)
	if err != nil {
		return nil, Summary{}, err
	}

	results := make([]Result, len(files))
	for i, file := range files {
		results[i] = Result{File: file, Verdict: verdicts[i]}
	}
	return results, Summarize(verdicts), nil
}
