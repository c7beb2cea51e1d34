package report

import (
	"log/slog"
	"time"

	"call_syncer/internal/domain"
)

// BuildStats counts records dropped while shaping rows.
type BuildStats struct {
	Skipped  int // missing or unparseable timestamps
	Filtered int // below the minimum-duration threshold
}

// Builder shapes fetched calls into sheet rows under one schema preset.
type Builder struct {
	preset     Preset
	minSeconds float64
	loc        *time.Location
	logger     *slog.Logger
}

func NewBuilder(preset Preset, minSeconds float64, loc *time.Location, logger *slog.Logger) *Builder {
	return &Builder{
		preset:     preset,
		minSeconds: minSeconds,
		loc:        loc,
		logger:     logger,
	}
}

// Rows builds one row per call, in fetch order. Calls missing a timestamp are
// skipped silently; calls with an unparseable timestamp are skipped with a
// diagnostic naming the call. When the preset filters by duration, only calls
// strictly longer than the threshold survive.
func (b *Builder) Rows(calls []domain.Call) ([][]any, BuildStats) {
	rows := make([][]any, 0, len(calls))
	var stats BuildStats

	for _, c := range calls {
		if c.ID == "" || c.StartedAt == "" || c.EndedAt == "" {
			stats.Skipped++
			continue
		}

		duration, err := Duration(c.StartedAt, c.EndedAt)
		if err != nil {
			b.logger.Warn("skipping call with invalid timestamp",
				"call_id", c.ID,
				"error", err,
			)
			stats.Skipped++
			continue
		}

		if b.preset.FilterByDuration && duration <= b.minSeconds {
			stats.Filtered++
			continue
		}

		rows = append(rows, b.preset.row(c, duration, b.loc))
	}

	return rows, stats
}
