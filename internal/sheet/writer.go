package sheet

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Config holds Google Sheets output configuration.
type Config struct {
	SpreadsheetID   string
	CredentialsFile string
}

// Writer overwrites spreadsheet ranges with report rows.
type Writer struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        *slog.Logger
}

// NewWriter builds a Sheets client. With a credentials file it authenticates
// as that service account; otherwise Application Default Credentials apply.
// Extra options are for tests pointing the client at a fake endpoint.
func NewWriter(ctx context.Context, cfg Config, logger *slog.Logger, opts ...option.ClientOption) (*Writer, error) {
	if cfg.CredentialsFile != "" {
		opts = append(opts,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		)
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Writer{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// Update overwrites rangeName with the given rows (header first) and returns
// the number of cells the API reports as updated. Values are written as
// user-entered so the sheet parses numbers and dates itself.
func (w *Writer) Update(ctx context.Context, rangeName string, values [][]any) (int64, error) {
	body := &sheets.ValueRange{Values: values}

	resp, err := w.svc.Spreadsheets.Values.
		Update(w.spreadsheetID, rangeName, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("update range %s: %w", rangeName, err)
	}

	w.logger.Debug("updated sheet range",
		"range", rangeName,
		"rows", len(values),
		"updated_cells", resp.UpdatedCells,
	)

	return resp.UpdatedCells, nil
}
