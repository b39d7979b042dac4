package model

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/moznion/go-optional"
)

// Value is a single table cell. None marks an undefined observation.
type Value = optional.Option[float64]

// Some wraps a defined value.
func Some(v float64) Value { return optional.Some(v) }

// None returns an undefined value.
func None() Value { return optional.None[float64]() }

// IsMissing reports whether v is undefined. NaN counts as undefined.
func IsMissing(v Value) bool {
	return v.IsNone() || math.IsNaN(v.Unwrap())
}

// Frame is a time-indexed table of float columns. Row i of every column
// belongs to the i-th index entry. The index is fixed at construction.
type Frame struct {
	index   []time.Time
	columns []string
	data    map[string][]Value
}

// NewFrame creates a frame with the given index and no columns.
func NewFrame(index []time.Time) *Frame {
	idx := make([]time.Time, len(index))
	copy(idx, index)
	return &Frame{index: idx, data: make(map[string][]Value)}
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.index) }

// Index returns a copy of the row timestamps.
func (f *Frame) Index() []time.Time {
	idx := make([]time.Time, len(f.index))
	copy(idx, f.index)
	return idx
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	cols := make([]string, len(f.columns))
	copy(cols, f.columns)
	return cols
}

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.data[name]
	return ok
}

// Column returns the values of a column, or nil if it does not exist.
// The returned slice is shared with the frame.
func (f *Frame) Column(name string) []Value {
	return f.data[name]
}

// Value returns the cell at (name, row). Unknown columns and out-of-range rows are None.
func (f *Frame) Value(name string, row int) Value {
	col, ok := f.data[name]
	if !ok || row < 0 || row >= len(col) {
		return None()
	}
	return col[row]
}

// SetColumn adds or replaces a column. New columns are appended after existing ones.
func (f *Frame) SetColumn(name string, values []Value) error {
	if len(values) != len(f.index) {
		return fmt.Errorf("column %q has %d values, index has %d", name, len(values), len(f.index))
	}
	if _, ok := f.data[name]; !ok {
		f.columns = append(f.columns, name)
	}
	f.data[name] = values
	return nil
}

// Copy returns a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	out := NewFrame(f.index)
	for _, name := range f.columns {
		vals := make([]Value, len(f.data[name]))
		copy(vals, f.data[name])
		out.columns = append(out.columns, name)
		out.data[name] = vals
	}
	return out
}

// DropNA returns a new frame without the rows that hold an undefined value
// in any column. Row order is preserved.
func (f *Frame) DropNA() *Frame {
	keep := make([]int, 0, len(f.index))
	for i := range f.index {
		if !f.rowMissing(i) {
			keep = append(keep, i)
		}
	}

	index := make([]time.Time, len(keep))
	for j, i := range keep {
		index[j] = f.index[i]
	}
	out := NewFrame(index)
	for _, name := range f.columns {
		src := f.data[name]
		vals := make([]Value, len(keep))
		for j, i := range keep {
			vals[j] = src[i]
		}
		out.columns = append(out.columns, name)
		out.data[name] = vals
	}
	return out
}

func (f *Frame) rowMissing(i int) bool {
	for _, name := range f.columns {
		if IsMissing(f.data[name][i]) {
			return true
		}
	}
	return false
}

// IndexSubsequence reports whether sub appears in super in the same order.
func IndexSubsequence(sub, super []time.Time) bool {
	j := 0
	for _, t := range sub {
		for j < len(super) && !super[j].Equal(t) {
			j++
		}
		if j == len(super) {
			return false
		}
		j++
	}
	return true
}

type builderRow struct {
	t    time.Time
	vals []Value
}

// FrameBuilder accumulates rows for a fixed column layout.
type FrameBuilder struct {
	columns []string
	rows    []builderRow
}

func NewFrameBuilder(columns ...string) *FrameBuilder {
	return &FrameBuilder{columns: columns}
}

// Append adds a row. Missing trailing values are None, extra values are ignored.
func (b *FrameBuilder) Append(t time.Time, values ...Value) {
	vals := make([]Value, len(b.columns))
	for i := range vals {
		if i < len(values) {
			vals[i] = values[i]
		} else {
			vals[i] = None()
		}
	}
	b.rows = append(b.rows, builderRow{t: t, vals: vals})
}

// Frame returns the accumulated rows as a frame in chronological order.
// Rows sharing a timestamp keep their append order.
func (b *FrameBuilder) Frame() *Frame {
	rows := make([]builderRow, len(b.rows))
	copy(rows, b.rows)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].t.Before(rows[j].t) })

	index := make([]time.Time, len(rows))
	for i, r := range rows {
		index[i] = r.t
	}
	f := NewFrame(index)
	for c, name := range b.columns {
		vals := make([]Value, len(rows))
		for i, r := range rows {
			vals[i] = r.vals[c]
		}
		f.columns = append(f.columns, name)
		f.data[name] = vals
	}
	return f
}
