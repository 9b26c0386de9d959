package ports

import (
	"context"

	"github.com/bnema/swapbot/internal/domain"
)

type HistorySource interface {
	Page(ctx context.Context, number int) (domain.HistoryPage, error)
}

type ExportSink interface {
	WriteHistory(ctx context.Context, records []domain.HistoryRecord, anonymized bool) error
}
