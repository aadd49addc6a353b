// Package similarity provides string similarity scoring: Levenshtein edit
// distance and Jaccard n-gram similarity, as scalar functions and as
// pairwise column operations.
package similarity

import (
	"github.com/erraggy/coltools/colerrors"
	"github.com/erraggy/coltools/series"
)

// Levenshtein returns the edit distance between a and b: the minimum number
// of single-rune insertions, deletions, and substitutions needed to turn a
// into b.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two-row DP over the classic edit distance matrix.
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			cur[j] = 1 + min(prev[j], cur[j-1], prev[j-1])
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// JaccardNGram returns the Jaccard similarity of the rune n-gram sets of a
// and b: |A ∩ B| / |A ∪ B|. Strings shorter than n contribute an empty
// gram set; when both sets are empty the similarity is 0. n below 1 fails
// with colerrors.ErrInvalidInput.
func JaccardNGram(a, b string, n int) (float64, error) {
	if n < 1 {
		return 0, &colerrors.InvalidInputError{
			Op:      "JaccardNGram",
			Value:   n,
			Message: "n-gram size must be at least 1",
		}
	}
	aGrams := ngrams(a, n)
	bGrams := ngrams(b, n)

	intersection := 0
	for g := range aGrams {
		if bGrams[g] {
			intersection++
		}
	}
	union := len(aGrams) + len(bGrams) - intersection
	if union == 0 {
		return 0, nil
	}
	return float64(intersection) / float64(union), nil
}

func ngrams(s string, n int) map[string]bool {
	runes := []rune(s)
	if len(runes) < n {
		return nil
	}
	grams := make(map[string]bool, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams[string(runes[i:i+n])] = true
	}
	return grams
}

// LevenshteinColumns computes the pairwise edit distance between two String
// columns of equal length, returning an Int64 column named name. A null in
// either input yields a null output.
func LevenshteinColumns(a, b *series.Series, name string) (*series.Series, error) {
	return series.ZipStringsToInt64(a, b, name, func(x, y string) (int64, error) {
		return int64(Levenshtein(x, y)), nil
	})
}

// JaccardColumns computes the pairwise Jaccard n-gram similarity between two
// String columns of equal length, returning a Float64 column named name.
func JaccardColumns(a, b *series.Series, name string, n int) (*series.Series, error) {
	if n < 1 {
		return nil, &colerrors.InvalidInputError{
			Op:      "JaccardColumns",
			Value:   n,
			Message: "n-gram size must be at least 1",
		}
	}
	return series.ZipStringsToFloat64(a, b, name, func(x, y string) (float64, error) {
		return JaccardNGram(x, y, n)
	})
}
