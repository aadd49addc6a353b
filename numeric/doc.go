// Package numeric provides numeric string conversions: a bidirectional
// roman numeral codec and an English word-to-number parser, as scalar
// functions and as column-wise operations over series.
//
// All conversions are pure and stateless; applied over a column, each
// element is converted independently and a per-element failure produces a
// null at that position rather than failing the column.
//
// Example:
//
//	s, err := numeric.ToRoman(309)        // "CCCIX"
//	n, err := numeric.FromRoman("MCMXIV") // 1914
//	v, err := numeric.WordsToNumber("three hundred and nine") // 309
package numeric
