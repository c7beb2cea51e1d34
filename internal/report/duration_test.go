package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name      string
		startedAt string
		endedAt   string
		want      float64
	}{
		{
			name:      "whole seconds",
			startedAt: "2024-01-01T00:00:00Z",
			endedAt:   "2024-01-01T00:00:25Z",
			want:      25,
		},
		{
			name:      "fractional seconds",
			startedAt: "2024-01-01T00:00:00Z",
			endedAt:   "2024-01-01T00:00:20.010Z",
			want:      20.01,
		},
		{
			name:      "zero duration",
			startedAt: "2024-01-01T12:30:00Z",
			endedAt:   "2024-01-01T12:30:00Z",
			want:      0,
		},
		{
			name:      "spans midnight",
			startedAt: "2024-03-09T23:59:30Z",
			endedAt:   "2024-03-10T00:01:30Z",
			want:      120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Duration(tt.startedAt, tt.endedAt)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDuration_InvalidTimestamp(t *testing.T) {
	_, err := Duration("not-a-date", "2024-01-01T00:00:25Z")
	assert.Error(t, err)

	_, err = Duration("2024-01-01T00:00:00Z", "not-a-date")
	assert.Error(t, err)
}

func TestFormatInZone_Sydney(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	tests := []struct {
		name string
		ts   string
		want string
	}{
		{
			name: "daylight saving time",
			ts:   "2024-01-01T00:00:00Z",
			want: "01/01/2024 11:00:00 AM",
		},
		{
			name: "standard time",
			ts:   "2024-06-15T02:30:00Z",
			want: "15/06/2024 12:30:00 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatInZone(tt.ts, loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatInZone_InvalidTimestamp(t *testing.T) {
	_, err := FormatInZone("not-a-date", time.UTC)
	assert.Error(t, err)
}
