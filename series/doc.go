// Package series provides the column abstraction that coltools conversions
// operate on: an immutable, named, typed value sequence with a validity mask.
//
// The contract every operation in this module honors is the one columnar
// hosts expect of extension functions: given a column of n elements, return
// a column of n elements where output position i was derived from input
// position i. Per-element conversion failures produce nulls rather than
// failing the whole column.
package series
