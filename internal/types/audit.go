// Package types provides type definitions for structured data used throughout the brand-checker system.
package types

import "time"

// AuditEntry is the record an audit sink keeps for one brand check.
// It carries profile identity plus the verdict fingerprint, never the content itself.
type AuditEntry struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	ProfileName    string          `json:"profileName"`
	ProfileVersion string          `json:"profileVersion"`
	ContentHash    string          `json:"contentHash"`
	Status         AlignmentStatus `json:"status"`
	Confidence     int             `json:"confidence"`
}
