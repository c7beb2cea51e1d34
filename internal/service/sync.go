package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"call_syncer/internal/config"
	"call_syncer/internal/domain"
	"call_syncer/internal/report"
)

// ErrInvalidSheetName is returned when the requested destination is not in
// the routing table. No fetch or write happens in that case.
var ErrInvalidSheetName = errors.New("invalid sheet name")

// SyncService routes call logs to their spreadsheet destinations.
type SyncService struct {
	source       Source
	writer       SheetWriter
	destinations []config.Destination
	loc          *time.Location
	logger       *slog.Logger
}

func NewSyncService(
	source Source,
	writer SheetWriter,
	destinations []config.Destination,
	loc *time.Location,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		source:       source,
		writer:       writer,
		destinations: destinations,
		loc:          loc,
		logger:       logger,
	}
}

// Sync processes the named destination, or every configured destination in
// order when the name is empty. Destinations run sequentially and the first
// failure aborts the run; later destinations are not touched.
func (s *SyncService) Sync(ctx context.Context, destination string) ([]domain.SyncStats, error) {
	selected, err := s.route(destination)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.SyncStats, 0, len(selected))
	for _, dest := range selected {
		destStats, err := s.syncDestination(ctx, dest)
		if err != nil {
			return stats, fmt.Errorf("sync %s: %w", dest.Name, err)
		}
		stats = append(stats, *destStats)
	}

	return stats, nil
}

func (s *SyncService) route(destination string) ([]config.Destination, error) {
	if destination == "" {
		return s.destinations, nil
	}

	for _, dest := range s.destinations {
		if dest.Name == destination {
			return []config.Destination{dest}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidSheetName, destination)
}

func (s *SyncService) syncDestination(ctx context.Context, dest config.Destination) (*domain.SyncStats, error) {
	startTime := time.Now()
	logger := s.logger.With("destination", dest.Name)

	preset, err := report.GetPreset(dest.Schema)
	if err != nil {
		return nil, err
	}

	logger.Info("starting sync",
		"assistant_id", dest.AssistantID,
		"schema", preset.Name,
		"range", dest.Range,
	)

	calls, err := s.source.FetchCalls(ctx, dest.AssistantID)
	if err != nil {
		return nil, fmt.Errorf("fetch calls: %w", err)
	}

	logger.Info("fetched calls", "count", len(calls))

	builder := report.NewBuilder(preset, dest.MinSeconds, s.loc, logger)
	rows, buildStats := builder.Rows(calls)

	values := append([][]any{preset.HeaderRow()}, rows...)

	updatedCells, err := s.writer.Update(ctx, dest.Range, values)
	if err != nil {
		return nil, fmt.Errorf("write sheet: %w", err)
	}

	stats := &domain.SyncStats{
		Destination:  dest.Name,
		Fetched:      len(calls),
		Skipped:      buildStats.Skipped,
		Filtered:     buildStats.Filtered,
		Rows:         len(rows),
		UpdatedCells: updatedCells,
		Duration:     time.Since(startTime),
	}

	logger.Info("sync completed",
		"fetched", stats.Fetched,
		"skipped", stats.Skipped,
		"filtered", stats.Filtered,
		"rows", stats.Rows,
		"updated_cells", stats.UpdatedCells,
		"duration", stats.Duration,
	)

	return stats, nil
}
