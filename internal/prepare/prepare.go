// Package prepare turns raw daily price tables into model-ready features.
package prepare

import (
	"time"

	"StockDirection/internal/calculator"
	"StockDirection/internal/model"
)

// PrepareData returns a copy of f with a Return column computed from Close,
// keeping the source index as is. Rows holding an undefined value in any
// column are dropped, which always includes the first row when Close exists.
// Without a Close column only pre-existing undefined rows are dropped.
// f is not modified.
func PrepareData(f *model.Frame) *model.Frame {
	if f == nil {
		return model.NewFrame(nil)
	}
	data := f.Copy()

	if data.HasColumn(model.ColumnClose) {
		// lengths always match, the column comes from the same frame
		_ = data.SetColumn(model.ColumnReturn, calculator.PctChange(data.Column(model.ColumnClose)))
	}

	return data.DropNA()
}

// Aligned reports whether every prepared row is indexed by a raw timestamp,
// in the raw order. A nil frame has no rows.
func Aligned(raw, prepared *model.Frame) bool {
	return model.IndexSubsequence(indexOf(prepared), indexOf(raw))
}

func indexOf(f *model.Frame) []time.Time {
	if f == nil {
		return nil
	}
	return f.Index()
}
