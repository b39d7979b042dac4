package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(None()))
	assert.True(t, IsMissing(Some(math.NaN())))
	assert.False(t, IsMissing(Some(0)))
	assert.False(t, IsMissing(Some(math.Inf(1))))
}

func TestFrame_SetColumn(t *testing.T) {
	f := NewFrame([]time.Time{day(2), day(3)})

	require.NoError(t, f.SetColumn("A", []Value{Some(1), Some(2)}))
	require.NoError(t, f.SetColumn("B", []Value{Some(3), None()}))
	require.NoError(t, f.SetColumn("A", []Value{Some(5), Some(6)}))

	assert.Equal(t, []string{"A", "B"}, f.Columns())
	assert.Equal(t, 5.0, f.Value("A", 0).Unwrap())
	assert.True(t, f.Value("B", 1).IsNone())
	assert.True(t, f.Value("C", 0).IsNone())
	assert.True(t, f.Value("A", 9).IsNone())

	err := f.SetColumn("C", []Value{Some(1)})
	assert.Error(t, err)
	assert.False(t, f.HasColumn("C"))
}

func TestFrame_CopyIsIndependent(t *testing.T) {
	f := NewFrame([]time.Time{day(2), day(3)})
	require.NoError(t, f.SetColumn(ColumnClose, []Value{Some(100), Some(101)}))

	c := f.Copy()
	c.Column(ColumnClose)[0] = Some(1)
	c.Index()[1] = day(9)
	require.NoError(t, c.SetColumn("X", []Value{Some(1), Some(2)}))

	assert.Equal(t, 100.0, f.Value(ColumnClose, 0).Unwrap())
	assert.Equal(t, day(3), f.Index()[1])
	assert.False(t, f.HasColumn("X"))
}

func TestFrame_IndexCannotBeResized(t *testing.T) {
	f := NewFrame([]time.Time{day(2), day(3)})
	require.NoError(t, f.SetColumn("A", []Value{Some(1), None()}))

	idx := f.Index()
	idx[0] = day(9)
	idx = append(idx, day(4))

	assert.Equal(t, []time.Time{day(2), day(3)}, f.Index())
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []time.Time{day(2)}, f.DropNA().Index())
	assert.Error(t, f.SetColumn("B", make([]Value, len(idx))))
}

func TestFrame_DropNA(t *testing.T) {
	f := NewFrame([]time.Time{day(2), day(3), day(4), day(5)})
	require.NoError(t, f.SetColumn("A", []Value{Some(1), None(), Some(3), Some(4)}))
	require.NoError(t, f.SetColumn("B", []Value{Some(1), Some(2), Some(3), Some(math.NaN())}))

	out := f.DropNA()

	assert.Equal(t, []time.Time{day(2), day(4)}, out.Index())
	assert.Equal(t, []Value{Some(1), Some(3)}, out.Column("A"))
	assert.Equal(t, []Value{Some(1), Some(3)}, out.Column("B"))
	assert.Equal(t, 4, f.Len(), "input must not change")
}

func TestFrame_DropNANoColumns(t *testing.T) {
	f := NewFrame([]time.Time{day(2), day(3)})
	out := f.DropNA()
	assert.Equal(t, f.Index(), out.Index())
	assert.Empty(t, out.Columns())
}

func TestIndexSubsequence(t *testing.T) {
	super := []time.Time{day(2), day(3), day(4), day(5)}
	tests := []struct {
		name string
		sub  []time.Time
		want bool
	}{
		{"empty", nil, true},
		{"identical", super, true},
		{"gaps", []time.Time{day(2), day(5)}, true},
		{"out of order", []time.Time{day(4), day(3)}, false},
		{"unknown", []time.Time{day(9)}, false},
		{"repeated", []time.Time{day(3), day(3)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexSubsequence(tt.sub, super))
		})
	}
}

func TestFrameBuilder_SortsStable(t *testing.T) {
	b := NewFrameBuilder("A", "B")
	b.Append(day(4), Some(4), Some(40))
	b.Append(day(2), Some(2))
	b.Append(day(3), Some(3), Some(30), Some(300))

	f := b.Frame()

	assert.Equal(t, []time.Time{day(2), day(3), day(4)}, f.Index())
	assert.Equal(t, []Value{Some(2), Some(3), Some(4)}, f.Column("A"))
	assert.Equal(t, []Value{None(), Some(30), Some(40)}, f.Column("B"))
}

func TestBarsToFrame(t *testing.T) {
	f := BarsToFrame([]OHLCV{
		{Time: day(3), Open: Some(2), High: Some(3), Low: Some(1), Close: Some(2.5), Volume: Some(10)},
		{Time: day(2), Close: Some(2)},
	})

	assert.Equal(t, OHLCVColumns, f.Columns())
	assert.Equal(t, []time.Time{day(2), day(3)}, f.Index())
	assert.True(t, f.Value(ColumnOpen, 0).IsNone())
	assert.Equal(t, 2.5, f.Value(ColumnClose, 1).Unwrap())
}
