package numeric

import (
	"strings"

	"github.com/erraggy/coltools/colerrors"
)

// romanMin and romanMax bound the conventional roman numeral domain.
// Values outside this window cannot be written without overline notation,
// so ToRoman rejects them.
const (
	romanMin = 1
	romanMax = 3999
)

// romanTable maps descending values to symbols, including the subtractive
// pairs, so that greedy subtraction always emits the canonical form.
var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// romanValues maps each single symbol to its value for decoding.
var romanValues = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// ToRoman converts n to its canonical (minimal-length) roman numeral.
// The supported domain is 1 through 3999 inclusive; anything else fails
// with colerrors.ErrInvalidInput.
func ToRoman(n int) (string, error) {
	if n < romanMin || n > romanMax {
		return "", &colerrors.InvalidInputError{
			Op:      "ToRoman",
			Value:   n,
			Message: "value must be between 1 and 3999",
		}
	}
	var b strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			b.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return b.String(), nil
}

// FromRoman converts a roman numeral to its integer value.
//
// Decoding is lenient about canonical form: any string over the symbol set
// {I, V, X, L, C, D, M} is summed left to right, subtracting a symbol when
// it is smaller than its successor, so non-canonical but summable input
// such as "IIII" decodes to 4. Input is case-insensitive. An empty string
// or any rune outside the symbol set fails with colerrors.ErrInvalidInput.
func FromRoman(s string) (int, error) {
	if s == "" {
		return 0, &colerrors.InvalidInputError{
			Op:      "FromRoman",
			Message: "empty numeral",
		}
	}
	runes := []rune(strings.ToUpper(s))
	total := 0
	for i, r := range runes {
		v, ok := romanValues[r]
		if !ok {
			return 0, &colerrors.InvalidInputError{
				Op:      "FromRoman",
				Value:   string(r),
				Message: "not a roman numeral symbol",
			}
		}
		if i+1 < len(runes) {
			next, ok := romanValues[runes[i+1]]
			if !ok {
				return 0, &colerrors.InvalidInputError{
					Op:      "FromRoman",
					Value:   string(runes[i+1]),
					Message: "not a roman numeral symbol",
				}
			}
			if v < next {
				total -= v
				continue
			}
		}
		total += v
	}
	return total, nil
}
