// Package ta provides technical-analysis derivations over frame columns:
// period deltas, log returns, simple moving averages, RSI, Bollinger bands,
// and average true range. Each operation appends derived columns to a new
// frame and null-fills warmup windows.
package ta

import (
	"fmt"
	"math"

	"github.com/erraggy/coltools/colerrors"
	"github.com/erraggy/coltools/frame"
	"github.com/erraggy/coltools/series"
)

// Delta appends "<col>_delta_<periods>": the difference between each value
// and the value periods rows earlier. The first periods rows are null.
func Delta(f *frame.Frame, col string, periods int) (*frame.Frame, error) {
	if periods < 1 {
		return nil, &colerrors.InvalidInputError{Op: "ta.Delta", Value: periods, Message: "periods must be at least 1"}
	}
	vals, null, err := floatColumn(f, col, "ta.Delta")
	if err != nil {
		return nil, err
	}
	n := len(vals)
	out := make([]float64, n)
	outNull := make([]bool, n)
	for i := 0; i < n; i++ {
		if i < periods || null[i] || null[i-periods] {
			outNull[i] = true
			continue
		}
		out[i] = vals[i] - vals[i-periods]
	}
	return appendColumn(f, fmt.Sprintf("%s_delta_%d", col, periods), out, outNull)
}

// LogReturn appends "<col>_log_return": ln(value / previous value).
// The first row, and any row where the ratio is not a positive number,
// is null.
func LogReturn(f *frame.Frame, col string) (*frame.Frame, error) {
	vals, null, err := floatColumn(f, col, "ta.LogReturn")
	if err != nil {
		return nil, err
	}
	n := len(vals)
	out := make([]float64, n)
	outNull := make([]bool, n)
	for i := 0; i < n; i++ {
		if i == 0 || null[i] || null[i-1] || vals[i-1] == 0 {
			outNull[i] = true
			continue
		}
		ratio := vals[i] / vals[i-1]
		if ratio <= 0 {
			outNull[i] = true
			continue
		}
		out[i] = math.Log(ratio)
	}
	return appendColumn(f, col+"_log_return", out, outNull)
}

// SMA appends "<col>_sma_<window>": the simple moving average over the
// trailing window. Rows without a full window of non-null values are null.
func SMA(f *frame.Frame, col string, window int) (*frame.Frame, error) {
	if window < 1 {
		return nil, &colerrors.InvalidInputError{Op: "ta.SMA", Value: window, Message: "window must be at least 1"}
	}
	vals, null, err := floatColumn(f, col, "ta.SMA")
	if err != nil {
		return nil, err
	}
	out, outNull := rollingMean(vals, null, window)
	return appendColumn(f, fmt.Sprintf("%s_sma_%d", col, window), out, outNull)
}

// RSI appends "<col>_rsi_<window>": the relative strength index,
// 100 - 100/(1+RS) with RS the ratio of average gain to average loss over
// the trailing window of one-period differences. A window with zero average
// loss saturates at 100.
func RSI(f *frame.Frame, col string, window int) (*frame.Frame, error) {
	if window < 1 {
		return nil, &colerrors.InvalidInputError{Op: "ta.RSI", Value: window, Message: "window must be at least 1"}
	}
	vals, null, err := floatColumn(f, col, "ta.RSI")
	if err != nil {
		return nil, err
	}
	n := len(vals)

	gains := make([]float64, n)
	losses := make([]float64, n)
	diffNull := make([]bool, n)
	for i := 0; i < n; i++ {
		if i == 0 || null[i] || null[i-1] {
			diffNull[i] = true
			continue
		}
		diff := vals[i] - vals[i-1]
		if diff > 0 {
			gains[i] = diff
		} else {
			losses[i] = -diff
		}
	}

	avgGain, gainNull := rollingMean(gains, diffNull, window)
	avgLoss, lossNull := rollingMean(losses, diffNull, window)

	out := make([]float64, n)
	outNull := make([]bool, n)
	for i := 0; i < n; i++ {
		if gainNull[i] || lossNull[i] {
			outNull[i] = true
			continue
		}
		if avgLoss[i] == 0 {
			out[i] = 100
			continue
		}
		rs := avgGain[i] / avgLoss[i]
		out[i] = 100 - 100/(1+rs)
	}
	return appendColumn(f, fmt.Sprintf("%s_rsi_%d", col, window), out, outNull)
}

// Bollinger appends "<col>_bb_mid", "<col>_bb_upper", and "<col>_bb_lower":
// the rolling mean and the bands numStd rolling standard deviations either
// side of it.
func Bollinger(f *frame.Frame, col string, window int, numStd float64) (*frame.Frame, error) {
	if window < 2 {
		return nil, &colerrors.InvalidInputError{Op: "ta.Bollinger", Value: window, Message: "window must be at least 2"}
	}
	vals, null, err := floatColumn(f, col, "ta.Bollinger")
	if err != nil {
		return nil, err
	}
	mid, midNull := rollingMean(vals, null, window)
	std, stdNull := rollingStd(vals, null, window)

	n := len(vals)
	upper := make([]float64, n)
	lower := make([]float64, n)
	bandNull := make([]bool, n)
	for i := 0; i < n; i++ {
		if midNull[i] || stdNull[i] {
			bandNull[i] = true
			continue
		}
		upper[i] = mid[i] + numStd*std[i]
		lower[i] = mid[i] - numStd*std[i]
	}

	midCol, err := series.NewFloat64Nullable(col+"_bb_mid", mid, midNull)
	if err != nil {
		return nil, err
	}
	upperCol, err := series.NewFloat64Nullable(col+"_bb_upper", upper, bandNull)
	if err != nil {
		return nil, err
	}
	lowerCol, err := series.NewFloat64Nullable(col+"_bb_lower", lower, bandNull)
	if err != nil {
		return nil, err
	}
	return f.WithColumns(midCol, upperCol, lowerCol)
}

// ATR appends "atr": the rolling mean of the true range, where the true
// range is the greatest of high-low, |high-previous close|, and
// |low-previous close|.
func ATR(f *frame.Frame, high, low, closeCol string, window int) (*frame.Frame, error) {
	if window < 1 {
		return nil, &colerrors.InvalidInputError{Op: "ta.ATR", Value: window, Message: "window must be at least 1"}
	}
	highs, highNull, err := floatColumn(f, high, "ta.ATR")
	if err != nil {
		return nil, err
	}
	lows, lowNull, err := floatColumn(f, low, "ta.ATR")
	if err != nil {
		return nil, err
	}
	closes, closeNull, err := floatColumn(f, closeCol, "ta.ATR")
	if err != nil {
		return nil, err
	}

	n := len(highs)
	tr := make([]float64, n)
	trNull := make([]bool, n)
	for i := 0; i < n; i++ {
		if highNull[i] || lowNull[i] {
			trNull[i] = true
			continue
		}
		hl := highs[i] - lows[i]
		if i == 0 || closeNull[i-1] {
			// No previous close: the true range is just high-low.
			tr[i] = hl
			continue
		}
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}

	out, outNull := rollingMean(tr, trNull, window)
	return appendColumn(f, "atr", out, outNull)
}

// floatColumn fetches a Float64 column's backing values and validity mask.
func floatColumn(f *frame.Frame, name, op string) ([]float64, []bool, error) {
	col, ok := f.Column(name)
	if !ok {
		return nil, nil, &colerrors.InvalidInputError{Op: op, Value: name, Message: "no such column"}
	}
	if col.DType() != series.Float64 {
		return nil, nil, &colerrors.InvalidInputError{
			Op:      op,
			Value:   col.DType().String(),
			Message: "column " + name + " has wrong dtype, want Float64",
		}
	}
	n := col.Len()
	vals := make([]float64, n)
	null := make([]bool, n)
	for i := 0; i < n; i++ {
		v, ok := col.FloatAt(i)
		if !ok {
			null[i] = true
			continue
		}
		vals[i] = v
	}
	return vals, null, nil
}

// rollingMean computes the trailing-window mean. Windows that extend past
// the start of the data, or that contain a null, produce null.
func rollingMean(vals []float64, null []bool, window int) ([]float64, []bool) {
	n := len(vals)
	out := make([]float64, n)
	outNull := make([]bool, n)
	for i := 0; i < n; i++ {
		if i < window-1 {
			outNull[i] = true
			continue
		}
		sum := 0.0
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if null[j] {
				ok = false
				break
			}
			sum += vals[j]
		}
		if !ok {
			outNull[i] = true
			continue
		}
		out[i] = sum / float64(window)
	}
	return out, outNull
}

// rollingStd computes the trailing-window sample standard deviation.
func rollingStd(vals []float64, null []bool, window int) ([]float64, []bool) {
	n := len(vals)
	out := make([]float64, n)
	outNull := make([]bool, n)
	mean, meanNull := rollingMean(vals, null, window)
	for i := 0; i < n; i++ {
		if meanNull[i] {
			outNull[i] = true
			continue
		}
		sumSq := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := vals[j] - mean[i]
			sumSq += d * d
		}
		out[i] = math.Sqrt(sumSq / float64(window-1))
	}
	return out, outNull
}

func appendColumn(f *frame.Frame, name string, vals []float64, null []bool) (*frame.Frame, error) {
	col, err := series.NewFloat64Nullable(name, vals, null)
	if err != nil {
		return nil, err
	}
	return f.WithColumn(col)
}
