package entity

import (
	"sort"
	"time"
)

// ActivityKind tags the origin collection of a recent-activity entry.
type ActivityKind string

const (
	// ActivityKindWaste marks an entry derived from a farm waste batch.
	ActivityKindWaste ActivityKind = "waste"
	// ActivityKindExtraction marks an entry derived from an extraction record.
	ActivityKindExtraction ActivityKind = "extraction"
	// ActivityKindRecycling marks an entry derived from a recycling record.
	ActivityKindRecycling ActivityKind = "recycling"
)

// ActivityEvent is one line of the dashboard's recent-activity feed.
type ActivityEvent struct {
	ID             string       `json:"id"`
	Kind           ActivityKind `json:"type"`
	Description    string       `json:"description"`
	Timestamp      time.Time    `json:"timestamp"`
	BlockchainTxID string       `json:"blockchainTxId,omitempty"`
}

// MergeActivity sorts the given events by timestamp descending (newest first)
// and truncates the result to limit entries. The input slice is not modified.
func MergeActivity(events []ActivityEvent, limit int) []ActivityEvent {
	merged := make([]ActivityEvent, len(events))
	copy(merged, events)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
