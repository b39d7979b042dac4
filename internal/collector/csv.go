package collector

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"StockDirection/internal/model"
)

var csvDateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// csvBar is one row of a daily price file. Cells are kept as text so that
// blank and NaN cells can be told apart from zero.
type csvBar struct {
	Date   string `csv:"date"`
	Open   string `csv:"open"`
	High   string `csv:"high"`
	Low    string `csv:"low"`
	Close  string `csv:"close"`
	Volume string `csv:"volume"`
}

// CSVFetcher implements Fetcher over a local single-symbol CSV file with a
// date,open,high,low,close,volume header.
type CSVFetcher struct {
	FilePath string
}

func NewCSVFetcher(filePath string) *CSVFetcher {
	return &CSVFetcher{FilePath: filePath}
}

func (f *CSVFetcher) Name() string { return "csv" }

// FetchDaily reads the file and keeps rows dated in [start, end). symbol is
// not checked against the file contents.
func (f *CSVFetcher) FetchDaily(_ context.Context, _ string, start, end time.Time) (*model.Frame, error) {
	file, err := os.Open(f.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	var rows []csvBar
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal csv: %w", err)
	}

	bars := make([]model.OHLCV, 0, len(rows))
	for i, r := range rows {
		bar, err := r.toBar()
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}
		if bar.Time.Before(start) || !bar.Time.Before(end) {
			continue
		}
		bars = append(bars, bar)
	}
	return model.BarsToFrame(bars), nil
}

func (r csvBar) toBar() (model.OHLCV, error) {
	t, err := parseCSVDate(r.Date)
	if err != nil {
		return model.OHLCV{}, err
	}
	bar := model.OHLCV{Time: t}
	cells := []struct {
		dst  *model.Value
		text string
		name string
	}{
		{&bar.Open, r.Open, "open"},
		{&bar.High, r.High, "high"},
		{&bar.Low, r.Low, "low"},
		{&bar.Close, r.Close, "close"},
		{&bar.Volume, r.Volume, "volume"},
	}
	for _, c := range cells {
		v, err := parseCSVValue(c.text)
		if err != nil {
			return model.OHLCV{}, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = v
	}
	return bar, nil
}

func parseCSVDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range csvDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return tradingDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func parseCSVValue(s string) (model.Value, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "null", "na":
		return model.None(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.None(), err
	}
	return model.Some(v), nil
}
