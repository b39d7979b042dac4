package collector

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"StockDirection/internal/model"
)

// PolygonFetcher implements Fetcher using polygon.io daily aggregates.
type PolygonFetcher struct {
	client *polygon.Client
}

// NewPolygonFetcher creates a polygon.io fetcher with optional proxy support.
func NewPolygonFetcher(apiKey, proxyURL string) *PolygonFetcher {
	return &PolygonFetcher{client: polygon.NewWithClient(apiKey, newHTTPClient(proxyURL))}
}

func (f *PolygonFetcher) Name() string { return "polygon" }

// FetchDaily lists one-day aggregates for [start, end).
func (f *PolygonFetcher) FetchDaily(ctx context.Context, symbol string, start, end time.Time) (*model.Frame, error) {
	params := &models.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(start),
		To:         models.Millis(end.Add(-time.Millisecond)),
	}

	var bars []model.OHLCV
	iter := f.client.ListAggs(ctx, params)
	for iter.Next() {
		bars = append(bars, aggToBar(iter.Item()))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("polygon list aggs: %w", err)
	}
	return model.BarsToFrame(bars), nil
}

// aggToBar converts a daily aggregate. Polygon stamps daily bars at
// midnight US/Eastern, which falls on the same UTC date.
func aggToBar(agg models.Agg) model.OHLCV {
	return model.OHLCV{
		Time:   tradingDate(time.Time(agg.Timestamp).UTC()),
		Open:   model.Some(agg.Open),
		High:   model.Some(agg.High),
		Low:    model.Some(agg.Low),
		Close:  model.Some(agg.Close),
		Volume: model.Some(agg.Volume),
	}
}
