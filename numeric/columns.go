package numeric

import "github.com/erraggy/coltools/series"

// RomanEncode converts an Int64 column to a String column of roman
// numerals named name. Values outside 1..3999 become nulls.
func RomanEncode(s *series.Series, name string) (*series.Series, error) {
	return s.MapInt64ToString(name, func(v int64) (string, error) {
		return ToRoman(int(v))
	})
}

// RomanDecode converts a String column of roman numerals to an Int64
// column named name. Malformed numerals become nulls.
func RomanDecode(s *series.Series, name string) (*series.Series, error) {
	return s.MapStringToInt64(name, func(v string) (int64, error) {
		n, err := FromRoman(v)
		return int64(n), err
	})
}

// WordsToNumbers converts a String column of English number phrases (or
// digit strings) to an Int64 column named name. Unparseable phrases
// become nulls.
func WordsToNumbers(s *series.Series, name string) (*series.Series, error) {
	return s.MapStringToInt64(name, WordsToNumber)
}
