package numeric

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/coltools/colerrors"
)

func TestWordsToNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		// Digit fast path.
		{"5", 5},
		{"  42  ", 42},
		{"-17", -17},
		{"0", 0},

		// Single words.
		{"zero", 0},
		{"one", 1},
		{"nine", 9},
		{"ten", 10},
		{"thirteen", 13},
		{"nineteen", 19},
		{"twenty", 20},
		{"ninety", 90},

		// Compounds, hyphenated or not.
		{"forty two", 42},
		{"forty-two", 42},
		{"Forty-Two", 42},
		{"seventy seven", 77},

		// Hundreds with and without the conjunction.
		{"one hundred", 100},
		{"three hundred and nine", 309},
		{"three hundred nine", 309},
		{"nine hundred ninety-nine", 999},

		// Larger scales.
		{"one thousand", 1_000},
		{"two thousand and one", 2_001},
		{"twelve thousand three hundred forty-five", 12_345},
		{"one hundred thousand", 100_000},
		{"three million", 3_000_000},
		{"two million five hundred thousand and ten", 2_500_010},
		{"seven billion", 7_000_000_000},
		{"one trillion", 1_000_000_000_000},

		// Signed phrases.
		{"minus forty two", -42},
		{"negative three hundred", -300},
	}
	for _, tt := range tests {
		got, err := WordsToNumber(tt.input)
		require.NoError(t, err, "WordsToNumber(%q)", tt.input)
		assert.Equal(t, tt.want, got, "WordsToNumber(%q)", tt.input)
	}
}

func TestWordsToNumberErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"conjunction only", "and"},
		{"unrecognized token", "three hundred and blorp"},
		{"bare sign", "minus"},
		{"hundred without count", "hundred"},
		{"hundred after hundreds", "three hundred hundred"},
		{"thousand without count", "thousand and five"},
		{"scale words out of order", "two thousand three million"},
		{"hundred then larger group reuses scale", "one million two million"},
		{"zero combined with other words", "zero five"},
		{"zero after a count", "five zero"},
		{"digits mixed with words", "3 hundred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WordsToNumber(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, colerrors.ErrParse), "want ErrParse, got %v", err)
		})
	}
}

func TestWordsToNumberHyphenEquivalence(t *testing.T) {
	hyphenated, err := WordsToNumber("forty-two")
	require.NoError(t, err)
	spaced, err := WordsToNumber("forty two")
	require.NoError(t, err)
	assert.Equal(t, spaced, hyphenated)
}

func TestWordsToNumberOutOfOrderScaleRejected(t *testing.T) {
	// The strict policy: "hundred three thousand" has no sub-total before
	// "hundred", so it is rejected rather than given a best-effort value.
	_, err := WordsToNumber("hundred three thousand")
	require.Error(t, err)
	assert.True(t, errors.Is(err, colerrors.ErrParse))
}
