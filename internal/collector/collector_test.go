package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"StockDirection/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Collect(t *testing.T) {
	c := NewCollector(&MockFetcher{Price: 100}, "AAPL", nil)

	// 2024-01-01 is a Monday, so two full weeks give ten bars
	res, err := c.Collect(context.Background(), date(2024, 1, 1), date(2024, 1, 15))
	require.NoError(t, err)

	assert.Equal(t, "AAPL", res.Symbol)
	assert.Equal(t, 10, res.Raw.Len())
	assert.Equal(t, 9, res.Prepared.Len())
	assert.Equal(t, res.Raw.Index()[1:], res.Prepared.Index())
	assert.True(t, res.Prepared.HasColumn(model.ColumnReturn))
	assert.False(t, res.Raw.HasColumn(model.ColumnReturn), "raw frame stays untouched")
}

func TestCollector_FixedDataWithoutClose(t *testing.T) {
	data := model.NewFrame([]time.Time{date(2024, 1, 2), date(2024, 1, 3)})
	require.NoError(t, data.SetColumn(model.ColumnVolume, []model.Value{model.Some(1), model.Some(2)}))
	c := NewCollector(&MockFetcher{Data: data}, "AAPL", nil)

	res, err := c.Collect(context.Background(), date(2024, 1, 1), date(2024, 1, 5))
	require.NoError(t, err)

	assert.Equal(t, data.Index(), res.Prepared.Index())
	assert.False(t, res.Prepared.HasColumn(model.ColumnReturn))
}

func TestCollector_FetchError(t *testing.T) {
	boom := errors.New("boom")
	c := NewCollector(&MockFetcher{Err: boom}, "AAPL", nil)

	_, err := c.Collect(context.Background(), date(2024, 1, 1), date(2024, 1, 5))
	assert.ErrorIs(t, err, boom)
}

type emptyFetcher struct{}

func (emptyFetcher) Name() string { return "empty" }

func (emptyFetcher) FetchDaily(context.Context, string, time.Time, time.Time) (*model.Frame, error) {
	return nil, nil
}

func TestCollector_NilFrame(t *testing.T) {
	c := NewCollector(emptyFetcher{}, "AAPL", nil)

	res, err := c.Collect(context.Background(), date(2024, 1, 1), date(2024, 1, 5))

	assert.Nil(t, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty returned no frame")
}

func TestGenerateMockBars_SkipsWeekends(t *testing.T) {
	bars := generateMockBars(50, date(2024, 1, 5), date(2024, 1, 9))

	require.Len(t, bars, 2)
	assert.Equal(t, date(2024, 1, 5), bars[0].Time)
	assert.Equal(t, date(2024, 1, 8), bars[1].Time)
}
