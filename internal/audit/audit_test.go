package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-checker/internal/types"
)

func sampleVerdict() *types.Verdict {
	return &types.Verdict{
		Status:         types.StatusOffBrand,
		StatusDisplay:  types.StatusOffBrand.Display(),
		Confidence:     95,
		ProfileVersion: "1.0.0",
		CheckedAt:      time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		ContentHash:    "abc123",
	}
}

func TestNewEntry(t *testing.T) {
	profile := &types.BrandProfile{Name: "acme", Version: "1.0.0"}
	verdict := sampleVerdict()

	entry := NewEntry(profile, verdict)

	_, err := uuid.Parse(entry.ID)
	assert.NoError(t, err, "entry ID should be a UUID")
	assert.Equal(t, "acme", entry.ProfileName)
	assert.Equal(t, "1.0.0", entry.ProfileVersion)
	assert.Equal(t, "abc123", entry.ContentHash)
	assert.Equal(t, types.StatusOffBrand, entry.Status)
	assert.Equal(t, 95, entry.Confidence)
	assert.Equal(t, verdict.CheckedAt, entry.Timestamp)
}

func TestRecorder_AppendsJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	recorder := NewRecorder(path)
	profile := &types.BrandProfile{Name: "acme", Version: "1.0.0"}

	for i := 0; i < 3; i++ {
		require.NoError(t, recorder.Record(NewEntry(profile, sampleVerdict())))
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var count int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry types.AuditEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		assert.Equal(t, "acme", entry.ProfileName)
		count++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 3, count)
}

func TestRecorder_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	recorder := NewRecorder(path)
	profile := &types.BrandProfile{Name: "acme", Version: "1.0.0"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, recorder.Record(NewEntry(profile, sampleVerdict())))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 10, lines)
}
