package collector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"StockDirection/internal/logger"
	"StockDirection/internal/model"
	"StockDirection/internal/prepare"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Data  *model.Frame
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDaily(_ context.Context, _ string, start, end time.Time) (*model.Frame, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Data != nil {
		return m.Data, nil
	}
	return model.BarsToFrame(generateMockBars(m.Price, start, end)), nil
}

// generateMockBars emits one bar per weekday in [start, end).
func generateMockBars(basePrice float64, start, end time.Time) []model.OHLCV {
	var bars []model.OHLCV
	i := 0
	for d := tradingDate(start); d.Before(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		p := basePrice * (1 + float64(i)*0.001)
		bars = append(bars, model.OHLCV{
			Time:   d,
			Open:   model.Some(p * 0.999),
			High:   model.Some(p * 1.005),
			Low:    model.Some(p * 0.995),
			Close:  model.Some(p),
			Volume: model.Some(1000000),
		})
		i++
	}
	return bars
}

// Result pairs the fetched table with its prepared form.
type Result struct {
	Symbol   string
	Raw      *model.Frame
	Prepared *model.Frame
}

// Collector orchestrates data fetching and preparation.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	Logger  *logger.Logger
}

// NewCollector creates a new Collector. A nil logger discards output.
func NewCollector(fetcher Fetcher, symbol string, log *logger.Logger) *Collector {
	if log == nil {
		log = logger.NewNop()
	}
	return &Collector{Fetcher: fetcher, Symbol: symbol, Logger: log}
}

// Collect fetches daily bars for [start, end) and prepares them.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) (*Result, error) {
	raw, err := c.Fetcher.FetchDaily(ctx, c.Symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch daily: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("fetch daily: %s returned no frame", c.Fetcher.Name())
	}

	prepared := prepare.PrepareData(raw)

	c.Logger.Info("prepared daily data",
		zap.String("symbol", c.Symbol),
		zap.String("source", c.Fetcher.Name()),
		zap.Int("rows_in", raw.Len()),
		zap.Int("rows_out", prepared.Len()),
		zap.Int("rows_dropped", raw.Len()-prepared.Len()),
	)
	if !raw.HasColumn(model.ColumnClose) {
		c.Logger.Warn("no close column, return not computed", zap.String("symbol", c.Symbol))
	}

	return &Result{Symbol: c.Symbol, Raw: raw, Prepared: prepared}, nil
}
