package report

import (
	"fmt"
	"time"
)

// Duration returns the elapsed seconds between two RFC 3339 timestamps.
// The result may be fractional.
func Duration(startedAt, endedAt string) (float64, error) {
	start, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return 0, fmt.Errorf("parse start time: %w", err)
	}

	end, err := time.Parse(time.RFC3339, endedAt)
	if err != nil {
		return 0, fmt.Errorf("parse end time: %w", err)
	}

	return end.Sub(start).Seconds(), nil
}

// FormatInZone renders an RFC 3339 timestamp as dd/mm/yyyy hh:mm:ss AM/PM
// localized to the given zone.
func FormatInZone(ts string, loc *time.Location) (string, error) {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return "", fmt.Errorf("parse time: %w", err)
	}

	return t.In(loc).Format("02/01/2006 03:04:05 PM"), nil
}
