package report

import (
	"fmt"
	"time"

	"call_syncer/internal/domain"
)

// NotAvailable is the sentinel written for optional fields absent from a record.
const NotAvailable = "N/A"

// Preset is a named column schema: an ordered set of headers plus the row
// shape built from one call. Presets with FilterByDuration set also subject
// records to the minimum-duration threshold.
type Preset struct {
	Name             string
	Headers          []string
	FilterByDuration bool
	row              func(c domain.Call, duration float64, loc *time.Location) []any
}

// Full is the wide export: localized times, transcript, end reason,
// recording URL and the granular cost breakdown. No duration filter.
var Full = Preset{
	Name: "full",
	Headers: []string{
		"ID", "Phone Number", "Duration (s)", "Start Time", "End Time",
		"Summary", "Success Evaluation", "Transcript", "Ended Reason",
		"Recording Url", "Total Cost (USD)", "STT Cost", "LLM Cost",
		"TTS Cost", "Vapi Cost", "Summary Cost", "Structured Data Cost",
		"Success Evaluation Cost",
	},
	FilterByDuration: false,
	row:              fullRow,
}

// Reduced is the short export: raw timestamps, no costs or URLs, with the
// minimum-duration filter applied.
var Reduced = Preset{
	Name: "reduced",
	Headers: []string{
		"ID", "Phone Number", "Duration (s)", "Start Time", "End Time",
		"Summary", "Success Evaluation", "Transcript",
	},
	FilterByDuration: true,
	row:              reducedRow,
}

// GetPreset resolves a schema preset by name.
func GetPreset(name string) (Preset, error) {
	switch name {
	case Full.Name:
		return Full, nil
	case Reduced.Name:
		return Reduced, nil
	default:
		return Preset{}, fmt.Errorf("unknown schema preset: %q", name)
	}
}

// HeaderRow returns the headers as a sheet row.
func (p Preset) HeaderRow() []any {
	row := make([]any, len(p.Headers))
	for i, h := range p.Headers {
		row[i] = h
	}
	return row
}

func fullRow(c domain.Call, duration float64, loc *time.Location) []any {
	// Timestamps are validated by the builder before the row is shaped.
	startedAt, _ := FormatInZone(c.StartedAt, loc)
	endedAt, _ := FormatInZone(c.EndedAt, loc)

	costs := c.CostBreakdown
	if costs == nil {
		costs = &domain.CostBreakdown{}
	}
	analysisCosts := costs.AnalysisCostBreakdown
	if analysisCosts == nil {
		analysisCosts = &domain.AnalysisCostBreakdown{}
	}

	return []any{
		c.ID,
		phoneNumber(c),
		duration,
		startedAt,
		endedAt,
		summary(c),
		successEvaluation(c),
		stringOrNA(c.Transcript),
		stringOrNA(c.EndedReason),
		stringOrNA(c.RecordingURL),
		costOrNA(costs.Total),
		costOrNA(costs.STT),
		costOrNA(costs.LLM),
		costOrNA(costs.TTS),
		costOrNA(costs.Vapi),
		costOrNA(analysisCosts.Summary),
		costOrNA(analysisCosts.StructuredData),
		costOrNA(analysisCosts.SuccessEvaluation),
	}
}

func reducedRow(c domain.Call, duration float64, _ *time.Location) []any {
	return []any{
		c.ID,
		phoneNumber(c),
		duration,
		c.StartedAt,
		c.EndedAt,
		summary(c),
		successEvaluation(c),
		stringOrNA(c.Transcript),
	}
}

func phoneNumber(c domain.Call) any {
	if c.Customer == nil {
		return NotAvailable
	}
	return stringOrNA(c.Customer.Number)
}

func summary(c domain.Call) any {
	if c.Analysis == nil {
		return NotAvailable
	}
	return stringOrNA(c.Analysis.Summary)
}

func successEvaluation(c domain.Call) any {
	if c.Analysis == nil {
		return NotAvailable
	}
	return stringOrNA(c.Analysis.SuccessEvaluation)
}

func stringOrNA(s string) any {
	if s == "" {
		return NotAvailable
	}
	return s
}

func costOrNA(v *float64) any {
	if v == nil {
		return NotAvailable
	}
	return *v
}
