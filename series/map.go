package series

import "github.com/erraggy/coltools/colerrors"

// The Map* methods apply a pure per-element conversion to a series,
// producing a new series of equal length with the same positional order.
// A conversion error at position i yields a null at position i and
// processing continues; input nulls propagate as output nulls. This matches
// typical columnar-processing semantics where one bad cell must not fail
// the whole column.

// MapStringToString applies fn to each non-null string element.
func (s *Series) MapStringToString(name string, fn func(string) (string, error)) (*Series, error) {
	if err := s.requireType("MapStringToString", String); err != nil {
		return nil, err
	}
	out := make([]string, s.Len())
	null := make([]bool, s.Len())
	for i := range s.null {
		if s.null[i] {
			null[i] = true
			continue
		}
		v, err := fn(s.strs[i])
		if err != nil {
			null[i] = true
			continue
		}
		out[i] = v
	}
	return &Series{name: name, dtype: String, strs: out, null: null}, nil
}

// MapStringToInt64 applies fn to each non-null string element.
func (s *Series) MapStringToInt64(name string, fn func(string) (int64, error)) (*Series, error) {
	if err := s.requireType("MapStringToInt64", String); err != nil {
		return nil, err
	}
	out := make([]int64, s.Len())
	null := make([]bool, s.Len())
	for i := range s.null {
		if s.null[i] {
			null[i] = true
			continue
		}
		v, err := fn(s.strs[i])
		if err != nil {
			null[i] = true
			continue
		}
		out[i] = v
	}
	return &Series{name: name, dtype: Int64, ints: out, null: null}, nil
}

// MapInt64ToString applies fn to each non-null integer element.
func (s *Series) MapInt64ToString(name string, fn func(int64) (string, error)) (*Series, error) {
	if err := s.requireType("MapInt64ToString", Int64); err != nil {
		return nil, err
	}
	out := make([]string, s.Len())
	null := make([]bool, s.Len())
	for i := range s.null {
		if s.null[i] {
			null[i] = true
			continue
		}
		v, err := fn(s.ints[i])
		if err != nil {
			null[i] = true
			continue
		}
		out[i] = v
	}
	return &Series{name: name, dtype: String, strs: out, null: null}, nil
}

// ZipStringsToInt64 applies fn pairwise across two String series of equal
// length. A null in either input yields a null output at that position.
func ZipStringsToInt64(a, b *Series, name string, fn func(x, y string) (int64, error)) (*Series, error) {
	if err := checkZip("ZipStringsToInt64", a, b); err != nil {
		return nil, err
	}
	out := make([]int64, a.Len())
	null := make([]bool, a.Len())
	for i := range a.null {
		if a.null[i] || b.null[i] {
			null[i] = true
			continue
		}
		v, err := fn(a.strs[i], b.strs[i])
		if err != nil {
			null[i] = true
			continue
		}
		out[i] = v
	}
	return &Series{name: name, dtype: Int64, ints: out, null: null}, nil
}

// ZipStringsToFloat64 applies fn pairwise across two String series of equal
// length. A null in either input yields a null output at that position.
func ZipStringsToFloat64(a, b *Series, name string, fn func(x, y string) (float64, error)) (*Series, error) {
	if err := checkZip("ZipStringsToFloat64", a, b); err != nil {
		return nil, err
	}
	out := make([]float64, a.Len())
	null := make([]bool, a.Len())
	for i := range a.null {
		if a.null[i] || b.null[i] {
			null[i] = true
			continue
		}
		v, err := fn(a.strs[i], b.strs[i])
		if err != nil {
			null[i] = true
			continue
		}
		out[i] = v
	}
	return &Series{name: name, dtype: Float64, floats: out, null: null}, nil
}

func (s *Series) requireType(op string, want DType) error {
	if s.dtype != want {
		return &colerrors.InvalidInputError{
			Op:      op,
			Value:   s.dtype.String(),
			Message: "column " + s.name + " has wrong dtype, want " + want.String(),
		}
	}
	return nil
}

func checkZip(op string, a, b *Series) error {
	if err := a.requireType(op, String); err != nil {
		return err
	}
	if err := b.requireType(op, String); err != nil {
		return err
	}
	if a.Len() != b.Len() {
		return &colerrors.InvalidInputError{
			Op:      op,
			Message: "series length mismatch",
		}
	}
	return nil
}
