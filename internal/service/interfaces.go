package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"call_syncer/internal/domain"
)

type Source interface {
	FetchCalls(ctx context.Context, assistantID string) ([]domain.Call, error)
}

type SheetWriter interface {
	Update(ctx context.Context, rangeName string, values [][]any) (int64, error)
}
