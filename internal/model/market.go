package model

import "time"

// Column names as returned by the market-data source.
const (
	ColumnOpen   = "Open"
	ColumnHigh   = "High"
	ColumnLow    = "Low"
	ColumnClose  = "Close"
	ColumnVolume = "Volume"

	// ColumnReturn holds the fractional change of Close from the previous row.
	ColumnReturn = "Return"
)

// OHLCVColumns is the column layout every fetcher produces.
var OHLCVColumns = []string{ColumnOpen, ColumnHigh, ColumnLow, ColumnClose, ColumnVolume}

// OHLCV represents a single daily bar. A None field means the source had no value.
type OHLCV struct {
	Time   time.Time
	Open   Value
	High   Value
	Low    Value
	Close  Value
	Volume Value
}

// BarsToFrame builds an OHLCV frame from bars, ordered by time.
func BarsToFrame(bars []OHLCV) *Frame {
	b := NewFrameBuilder(OHLCVColumns...)
	for _, bar := range bars {
		b.Append(bar.Time, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)
	}
	return b.Frame()
}
