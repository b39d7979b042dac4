package calculator

import (
	"math"

	"StockDirection/internal/model"
)

// PctChange computes the fractional change of each value from the most recent
// defined value before it. Gaps are padded forward, so the first defined value
// after a gap is compared with the last one before it.
//
// The first value, values before the first defined one, and undefined values
// produce None. 0/0 is None; x/0 yields ±Inf.
func PctChange(values []model.Value) []model.Value {
	out := make([]model.Value, len(values))
	prev := model.None()
	for i, v := range values {
		if model.IsMissing(v) {
			out[i] = model.None()
			continue
		}
		out[i] = change(prev, v.Unwrap())
		prev = v
	}
	return out
}

func change(prev model.Value, cur float64) model.Value {
	if prev.IsNone() {
		return model.None()
	}
	r := cur/prev.Unwrap() - 1
	if math.IsNaN(r) {
		return model.None()
	}
	return model.Some(r)
}
