package ta

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/coltools/colerrors"
	"github.com/erraggy/coltools/frame"
	"github.com/erraggy/coltools/series"
)

func priceFrame(t *testing.T, vals []float64) *frame.Frame {
	t.Helper()
	f, err := frame.New(series.NewFloat64("close", vals))
	require.NoError(t, err)
	return f
}

func floatAt(t *testing.T, f *frame.Frame, col string, i int) float64 {
	t.Helper()
	c, ok := f.Column(col)
	require.True(t, ok, "column %s", col)
	v, valid := c.FloatAt(i)
	require.True(t, valid, "%s[%d] must be non-null", col, i)
	return v
}

func TestDelta(t *testing.T) {
	f := priceFrame(t, []float64{10, 12, 11, 15})

	g, err := Delta(f, "close", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"close", "close_delta_1"}, g.Columns())
	assert.Equal(t, 1, f.Width(), "input frame must be unchanged")

	col, _ := g.Column("close_delta_1")
	assert.True(t, col.IsNull(0), "first row has no prior value")
	assert.Equal(t, 2.0, floatAt(t, g, "close_delta_1", 1))
	assert.Equal(t, -1.0, floatAt(t, g, "close_delta_1", 2))
	assert.Equal(t, 4.0, floatAt(t, g, "close_delta_1", 3))

	t.Run("multi-period", func(t *testing.T) {
		g, err := Delta(f, "close", 2)
		require.NoError(t, err)
		col, _ := g.Column("close_delta_2")
		assert.True(t, col.IsNull(0))
		assert.True(t, col.IsNull(1))
		assert.Equal(t, 1.0, floatAt(t, g, "close_delta_2", 2))
	})

	t.Run("bad periods", func(t *testing.T) {
		_, err := Delta(f, "close", 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, colerrors.ErrInvalidInput))
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := Delta(f, "open", 1)
		require.Error(t, err)
	})
}

func TestLogReturn(t *testing.T) {
	f := priceFrame(t, []float64{100, 110, 0, 50})

	g, err := LogReturn(f, "close")
	require.NoError(t, err)

	col, _ := g.Column("close_log_return")
	assert.True(t, col.IsNull(0))
	assert.InDelta(t, math.Log(1.1), floatAt(t, g, "close_log_return", 1), 1e-12)
	assert.True(t, col.IsNull(2), "ln(0/110) is not a number")
	assert.True(t, col.IsNull(3), "previous value of zero divides out")
}

func TestSMA(t *testing.T) {
	f := priceFrame(t, []float64{1, 2, 3, 4, 5})

	g, err := SMA(f, "close", 3)
	require.NoError(t, err)

	col, _ := g.Column("close_sma_3")
	assert.True(t, col.IsNull(0))
	assert.True(t, col.IsNull(1))
	assert.Equal(t, 2.0, floatAt(t, g, "close_sma_3", 2))
	assert.Equal(t, 3.0, floatAt(t, g, "close_sma_3", 3))
	assert.Equal(t, 4.0, floatAt(t, g, "close_sma_3", 4))
}

func TestSMANullPropagation(t *testing.T) {
	col, err := series.NewFloat64Nullable("close", []float64{1, 0, 3, 4}, []bool{false, true, false, false})
	require.NoError(t, err)
	f, err := frame.New(col)
	require.NoError(t, err)

	g, err := SMA(f, "close", 2)
	require.NoError(t, err)
	out, _ := g.Column("close_sma_2")
	assert.True(t, out.IsNull(1), "null inside window")
	assert.True(t, out.IsNull(2), "null inside window")
	assert.Equal(t, 3.5, floatAt(t, g, "close_sma_2", 3))
}

func TestRSI(t *testing.T) {
	// Strictly rising prices: all gain, no loss, RSI saturates at 100.
	f := priceFrame(t, []float64{1, 2, 3, 4, 5})
	g, err := RSI(f, "close", 3)
	require.NoError(t, err)
	col, _ := g.Column("close_rsi_3")
	assert.True(t, col.IsNull(0), "no diff at row 0")
	assert.True(t, col.IsNull(2), "window includes the null diff")
	assert.Equal(t, 100.0, floatAt(t, g, "close_rsi_3", 3))
	assert.Equal(t, 100.0, floatAt(t, g, "close_rsi_3", 4))

	t.Run("balanced gains and losses", func(t *testing.T) {
		f := priceFrame(t, []float64{10, 11, 10, 11, 10})
		g, err := RSI(f, "close", 2)
		require.NoError(t, err)
		// Window rows 2..3: gain 1 and loss 1 -> RS=1 -> RSI=50.
		assert.InDelta(t, 50.0, floatAt(t, g, "close_rsi_2", 3), 1e-12)
	})
}

func TestBollinger(t *testing.T) {
	f := priceFrame(t, []float64{1, 2, 3, 4})
	g, err := Bollinger(f, "close", 3, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"close", "close_bb_mid", "close_bb_upper", "close_bb_lower"}, g.Columns())

	mid, _ := g.Column("close_bb_mid")
	assert.True(t, mid.IsNull(1))
	assert.Equal(t, 2.0, floatAt(t, g, "close_bb_mid", 2))

	// Sample std of {1,2,3} is 1, so the bands sit 2 either side of the mean.
	assert.Equal(t, 4.0, floatAt(t, g, "close_bb_upper", 2))
	assert.Equal(t, 0.0, floatAt(t, g, "close_bb_lower", 2))

	t.Run("window below 2 fails", func(t *testing.T) {
		_, err := Bollinger(f, "close", 1, 2)
		require.Error(t, err)
	})
}

func TestATR(t *testing.T) {
	f, err := frame.New(
		series.NewFloat64("high", []float64{12, 14, 13}),
		series.NewFloat64("low", []float64{9, 10, 11}),
		series.NewFloat64("close", []float64{10, 13, 12}),
	)
	require.NoError(t, err)

	g, err := ATR(f, "high", "low", "close", 2)
	require.NoError(t, err)

	// True ranges: row0 = 12-9 = 3 (no prior close);
	// row1 = max(4, |14-10|, |10-10|) = 4; row2 = max(2, 0, 2) = 2.
	col, _ := g.Column("atr")
	assert.True(t, col.IsNull(0))
	assert.Equal(t, 3.5, floatAt(t, g, "atr", 1))
	assert.Equal(t, 3.0, floatAt(t, g, "atr", 2))

	t.Run("missing column", func(t *testing.T) {
		_, err := ATR(f, "high", "low", "volume", 2)
		require.Error(t, err)
	})
}
