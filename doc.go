// Package coltools provides column-wise data conversion utilities built
// around an ordered, null-aware column model.
//
// Every conversion in this module is pure and shape-preserving: given a
// column of n values it returns a column of n values in the same order,
// and an element that cannot be converted becomes a null rather than
// failing the whole column.
//
// # Overview
//
// The library consists of the following packages:
//
//   - series: the typed, null-aware column type every conversion operates on
//   - frame: an ordered collection of equal-length columns
//   - numeric: roman numeral encoding/decoding and English number-word parsing
//   - naming: case conversion between snake, camel, pascal, kebab, train,
//     and pascal-snake conventions
//   - similarity: Levenshtein edit distance and Jaccard n-gram similarity
//   - geo: WKT and WKB point geometry conversion
//   - schema: order-preserving schema files in JSON and YAML
//   - ta: rolling technical-analysis indicators over numeric columns
//   - xmlnorm: XML document flattening into frames
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/coltools
//
// # Quick Start
//
// Convert a column of integers to roman numerals:
//
//	import (
//		"github.com/erraggy/coltools/numeric"
//		"github.com/erraggy/coltools/series"
//	)
//
//	years := series.NewInt64("year", []int64{1994, 2024, 0})
//	roman, err := numeric.RomanEncode(years, "year_roman")
//	// roman: "MCMXCIV", "MMXXIV", null
//
// Parse English number phrases:
//
//	phrases := series.NewString("qty", []string{"one hundred twenty-three", "nope"})
//	qty, err := numeric.WordsToNumbers(phrases, "qty_n")
//	// qty: 123, null
//
// Rename frame columns to a naming convention:
//
//	renamed, err := naming.RenameColumns(f, naming.Snake)
//
// # Command Line Interface
//
// The module ships a CLI with the same capabilities:
//
//	coltools roman 1994
//	coltools words "four hundred and four"
//	coltools rename -c camel user_name
//	coltools similarity -m jaccard apple apples
//	coltools schema -f yaml trades.json
//	coltools xml -record-path orders.order orders.xml
//	coltools mcp
package coltools
