package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockDirection/internal/config"
	"StockDirection/internal/model"
)

func TestPrintFrame(t *testing.T) {
	f := model.NewFrame([]time.Time{
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, f.SetColumn(model.ColumnClose, []model.Value{model.Some(102), model.Some(101)}))
	require.NoError(t, f.SetColumn(model.ColumnReturn, []model.Value{model.Some(0.02), model.Some(-0.25)}))

	var buf bytes.Buffer
	require.NoError(t, printFrame(&buf, f))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"Date", "Close", "Return"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2024-01-03", "102", "0.02"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2024-01-04", "101", "-0.25"}, strings.Fields(lines[2]))
}

func TestNewFetcher(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{config.ProviderYahoo, "yahoo"},
		{config.ProviderPolygon, "polygon"},
		{config.ProviderCSV, "csv"},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.DataSource.Provider = tt.provider
			cfg.DataSource.APIKey = "key"
			cfg.DataSource.CSVPath = "prices.csv"
			assert.Equal(t, tt.want, newFetcher(cfg).Name())
		})
	}
}
