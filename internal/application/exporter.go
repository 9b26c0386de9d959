package application

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
	"github.com/google/uuid"
)

const DefaultHistoryMaxPages = 300

type ExportResult struct {
	Pages   int
	Records int
}

// ExportProgress is reported after each history page is fetched.
type ExportProgress struct {
	Page    int
	Records int
}

type HistoryExporter struct {
	source     ports.HistorySource
	sink       ports.ExportSink
	secret     []byte
	maxPages   int
	newTradeID func() string
	onPage     func(ExportProgress)
	logger     *slog.Logger
}

func NewHistoryExporter(source ports.HistorySource, sink ports.ExportSink, secret string, maxPages int, logger *slog.Logger) *HistoryExporter {
	if maxPages <= 0 {
		maxPages = DefaultHistoryMaxPages
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &HistoryExporter{
		source:     source,
		sink:       sink,
		secret:     []byte(secret),
		maxPages:   maxPages,
		newTradeID: uuid.NewString,
		logger:     logger,
	}
}

// OnPage registers fn to be called from the export goroutine after every fetched page.
func (e *HistoryExporter) OnPage(fn func(ExportProgress)) {
	e.onPage = fn
}

// Export walks the history listing from page 1 and writes every item movement to the sink.
func (e *HistoryExporter) Export(ctx context.Context, anonymized bool) (ExportResult, error) {
	records, pages, err := e.collect(ctx)
	if err != nil {
		return ExportResult{Pages: pages}, err
	}

	if anonymized {
		for i := range records {
			records[i].User = Anonymize(e.secret, records[i].User)
		}
	}

	if err := e.sink.WriteHistory(ctx, records, anonymized); err != nil {
		return ExportResult{Pages: pages}, fmt.Errorf("write history export: %w", err)
	}
	e.logger.Info("finished exporting history", "pages", pages, "records", len(records), "anonymized", anonymized)

	return ExportResult{Pages: pages, Records: len(records)}, nil
}

func (e *HistoryExporter) collect(ctx context.Context) ([]domain.HistoryRecord, int, error) {
	var records []domain.HistoryRecord

	for number := 1; number <= e.maxPages; number++ {
		e.logger.Info("requesting history page", "page", number)
		page, err := e.source.Page(ctx, number)
		if err != nil {
			return nil, number - 1, fmt.Errorf("fetch history page %d: %w", number, err)
		}

		for _, group := range page.Groups {
			records = append(records, e.expand(group)...)
		}
		if e.onPage != nil {
			e.onPage(ExportProgress{Page: number, Records: len(records)})
		}

		if !page.HasNext {
			return records, number, nil
		}
	}

	e.logger.Info("history page limit reached", "max_pages", e.maxPages)
	return records, e.maxPages, nil
}

// expand fans a history entry out into one record per moved item, all sharing one trade ID.
func (e *HistoryExporter) expand(group domain.HistoryGroup) []domain.HistoryRecord {
	tradeID := e.newTradeID()
	records := make([]domain.HistoryRecord, 0, len(group.Received)+len(group.Given))

	add := func(direction domain.Direction, items []string) {
		for _, item := range items {
			records = append(records, domain.HistoryRecord{
				TradeID:   tradeID,
				Date:      group.Date,
				Time:      group.Time,
				User:      group.User,
				Direction: direction,
				Item:      item,
			})
		}
	}
	add(domain.DirectionReceived, group.Received)
	add(domain.DirectionGiven, group.Given)

	return records
}

// Anonymize replaces a counterparty identifier with its hex HMAC-SHA1 under secret.
func Anonymize(secret []byte, user string) string {
	mac := hmac.New(sha1.New, secret)
	mac.Write([]byte(user))
	return hex.EncodeToString(mac.Sum(nil))
}
