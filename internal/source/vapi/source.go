package vapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"call_syncer/internal/domain"
)

// ErrPageLimit is returned when the API keeps producing full pages past the
// configured ceiling, which would otherwise paginate forever.
var ErrPageLimit = errors.New("page limit exceeded")

// Config holds Vapi call-log API configuration.
type Config struct {
	BaseURL  string
	Token    string
	PageSize int
	MaxPages int
	Timeout  time.Duration
}

// Source fetches call logs from the Vapi API.
type Source struct {
	httpClient *http.Client
	baseURL    string
	token      string
	pageSize   int
	maxPages   int
	logger     *slog.Logger
}

// New creates a new Vapi source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		token:    cfg.Token,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
		logger:   logger.With("source", "vapi"),
	}
}

// FetchCalls retrieves every call logged for an assistant, walking the
// createdAtLt cursor newest-first until the API returns a short page. Pages
// never overlap, so the result is complete and de-duplicated in one pass,
// ordered reverse-chronologically.
func (s *Source) FetchCalls(ctx context.Context, assistantID string) ([]domain.Call, error) {
	var allCalls []domain.Call
	createdAtLt := ""

	for page := 0; ; page++ {
		if page >= s.maxPages {
			return nil, fmt.Errorf("assistant %s after %d pages: %w", assistantID, page, ErrPageLimit)
		}

		calls, err := s.fetchPage(ctx, assistantID, createdAtLt)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		allCalls = append(allCalls, calls...)

		s.logger.Debug("fetched page",
			"page", page,
			"calls", len(calls),
			"total", len(allCalls),
		)

		if len(calls) < s.pageSize {
			break
		}

		createdAtLt = calls[len(calls)-1].CreatedAt
	}

	return allCalls, nil
}

func (s *Source) fetchPage(ctx context.Context, assistantID, createdAtLt string) ([]domain.Call, error) {
	params := url.Values{}
	params.Set("assistantId", assistantID)
	params.Set("limit", strconv.Itoa(s.pageSize))
	if createdAtLt != "" {
		params.Set("createdAtLt", createdAtLt)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var calls []domain.Call
	if err := json.NewDecoder(resp.Body).Decode(&calls); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return calls, nil
}
