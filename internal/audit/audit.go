// Package audit builds and records audit entries for brand checks. Entries
// carry the verdict fingerprint and profile identity, never the raw content.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/brand-checker/internal/types"
)

// NewEntry derives an audit entry from a verdict and the profile it was
// checked against.
func NewEntry(profile *types.BrandProfile, verdict *types.Verdict) types.AuditEntry {
	return types.AuditEntry{
		ID:             uuid.New().String(),
		Timestamp:      verdict.CheckedAt,
		ProfileName:    profile.Name,
		ProfileVersion: profile.Version,
		ContentHash:    verdict.ContentHash,
		Status:         verdict.Status,
		Confidence:     verdict.Confidence,
	}
}

// Recorder appends audit entries to a JSONL file. Safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	path string
}

// NewRecorder creates a Recorder writing to the given path. The file is
// created on first record.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Record appends one entry as a JSON line.
func (r *Recorder) Record(entry types.AuditEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode audit entry: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log %s: %w", r.path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}
