package domain

import "time"

// SyncStats holds statistics about a sync of one destination.
type SyncStats struct {
	Destination  string
	Fetched      int
	Skipped      int
	Filtered     int
	Rows         int
	UpdatedCells int64
	Duration     time.Duration
}
