package numeric

import (
	"strconv"
	"strings"

	"github.com/erraggy/coltools/colerrors"
)

// Number word tables. smallWords covers everything that adds into the
// running sub-total; scaleWords covers the multiplicative grouping words.
var smallWords = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var scaleWords = map[string]int64{
	"hundred":  100,
	"thousand": 1_000,
	"million":  1_000_000,
	"billion":  1_000_000_000,
	"trillion": 1_000_000_000_000,
}

// WordsToNumber converts an English number phrase, or a plain digit string,
// to an integer.
//
// A trimmed input that parses entirely as a base-10 integer (with optional
// sign) is returned directly. Otherwise the phrase is lowercased, split on
// whitespace and hyphens (so "forty-two" and "forty two" are equivalent),
// the conjunction "and" is dropped, and an optional leading "minus" or
// "negative" negates the result.
//
// Accumulation keeps a running sub-total and a total: unit/teen/ten words
// add to the sub-total, "hundred" multiplies it by 100, and a scale word of
// a thousand or more multiplies the sub-total by the scale and folds it
// into the total.
//
// Malformed phrases are rejected rather than given a best-effort reading:
//
//   - an unrecognized token fails with colerrors.ErrParse
//   - "hundred" requires a preceding sub-total in 1..99
//   - thousand-and-above scales require a non-zero sub-total and must
//     appear in strictly decreasing order ("hundred three thousand" and
//     "two million five billion" are both rejected)
//   - "zero" is only valid as the sole token of the phrase
//   - an empty or whitespace-only phrase fails with colerrors.ErrParse
func WordsToNumber(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &colerrors.ParseError{Input: s, Message: "empty phrase"}
	}

	// Fast path: plain digit strings pass straight through strconv.
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n, nil
	}

	lowered := strings.ToLower(trimmed)
	tokens := strings.FieldsFunc(lowered, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-'
	})

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "and" {
			continue
		}
		words = append(words, tok)
	}
	if len(words) == 0 {
		return 0, &colerrors.ParseError{Input: s, Message: "no number words"}
	}

	negative := false
	if words[0] == "minus" || words[0] == "negative" {
		negative = true
		words = words[1:]
		if len(words) == 0 {
			return 0, &colerrors.ParseError{Input: s, Message: "sign without a number"}
		}
	}

	var total, current int64
	// lastScale tracks the most recent thousand-or-larger scale so that
	// out-of-order phrases like "two thousand three million" are rejected.
	lastScale := int64(0)
	sawZero := false

	for _, word := range words {
		switch {
		case word == "zero":
			sawZero = true
		case smallWords[word] != 0:
			current += smallWords[word]
		case word == "hundred":
			if current < 1 || current > 99 {
				return 0, &colerrors.ParseError{
					Input:   s,
					Token:   word,
					Message: "hundred must follow a count between one and ninety-nine",
				}
			}
			current *= 100
		case scaleWords[word] != 0:
			scale := scaleWords[word]
			if current == 0 {
				return 0, &colerrors.ParseError{
					Input:   s,
					Token:   word,
					Message: "scale word without a preceding count",
				}
			}
			if lastScale != 0 && scale >= lastScale {
				return 0, &colerrors.ParseError{
					Input:   s,
					Token:   word,
					Message: "scale words must appear in decreasing order",
				}
			}
			lastScale = scale
			total += current * scale
			current = 0
		default:
			return 0, &colerrors.ParseError{
				Input:   s,
				Token:   word,
				Message: "unrecognized number word",
			}
		}
	}

	if sawZero && (len(words) > 1 || total != 0 || current != 0) {
		return 0, &colerrors.ParseError{
			Input:   s,
			Token:   "zero",
			Message: "zero cannot combine with other number words",
		}
	}

	result := total + current
	if negative {
		result = -result
	}
	return result, nil
}
