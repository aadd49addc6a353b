package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/coltools/series"
)

func TestRomanEncodeColumn(t *testing.T) {
	in := series.NewInt64("year", []int64{1914, 0, 3999, 4000})
	out, err := RomanEncode(in, "year_roman")
	require.NoError(t, err)

	assert.Equal(t, in.Len(), out.Len(), "length must be preserved")
	assert.Equal(t, "year_roman", out.Name())

	v, ok := out.StrAt(0)
	require.True(t, ok)
	assert.Equal(t, "MCMXIV", v)

	// Out-of-range values become nulls in their original positions.
	assert.True(t, out.IsNull(1))
	assert.True(t, out.IsNull(3))

	v, ok = out.StrAt(2)
	require.True(t, ok)
	assert.Equal(t, "MMMCMXCIX", v)
}

func TestRomanDecodeColumn(t *testing.T) {
	in := series.NewString("numeral", []string{"IV", "bogus", "CCCIX"})
	out, err := RomanDecode(in, "value")
	require.NoError(t, err)

	assert.Equal(t, 3, out.Len())
	v, ok := out.IntAt(0)
	require.True(t, ok)
	assert.Equal(t, int64(4), v)
	assert.True(t, out.IsNull(1))
	v, ok = out.IntAt(2)
	require.True(t, ok)
	assert.Equal(t, int64(309), v)
}

func TestWordsToNumbersColumn(t *testing.T) {
	in, err := series.NewStringNullable(
		"phrase",
		[]string{"three hundred and nine", "5", "blorp", ""},
		[]bool{false, false, false, true},
	)
	require.NoError(t, err)

	out, err := WordsToNumbers(in, "value")
	require.NoError(t, err)

	assert.Equal(t, 4, out.Len())
	v, ok := out.IntAt(0)
	require.True(t, ok)
	assert.Equal(t, int64(309), v)
	v, ok = out.IntAt(1)
	require.True(t, ok)
	assert.Equal(t, int64(5), v)
	assert.True(t, out.IsNull(2), "unparseable phrase becomes null")
	assert.True(t, out.IsNull(3), "input null propagates")
}
