package collector

import (
	"context"
	"time"

	"StockDirection/internal/model"
)

// Fetcher defines the interface for fetching daily market data.
// start is inclusive and end is exclusive. The returned frame carries the
// model.OHLCVColumns in chronological order.
type Fetcher interface {
	FetchDaily(ctx context.Context, symbol string, start, end time.Time) (*model.Frame, error)
	Name() string
}

// tradingDate truncates t to midnight UTC of its calendar date.
func tradingDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
