package series

import (
	"fmt"

	"github.com/erraggy/coltools/colerrors"
)

// DType identifies the element type of a Series.
type DType int

const (
	// Int64 is a signed 64-bit integer column.
	Int64 DType = iota
	// Float64 is a 64-bit floating point column.
	Float64
	// String is a UTF-8 string column.
	String
	// Bool is a boolean column.
	Bool
)

// String returns the canonical name of the dtype as used in schema files.
func (d DType) String() string {
	switch d {
	case Int64:
		return "Int64"
	case Float64:
		return "Float64"
	case String:
		return "String"
	case Bool:
		return "Bool"
	default:
		return "unknown"
	}
}

// ParseDType returns the DType named by s.
// Unknown names fail with colerrors.ErrSchema.
func ParseDType(s string) (DType, error) {
	switch s {
	case "Int64":
		return Int64, nil
	case "Float64":
		return Float64, nil
	case "String":
		return String, nil
	case "Bool":
		return Bool, nil
	default:
		return 0, &colerrors.SchemaError{TypeName: s, Message: "unsupported column type"}
	}
}

// Series is an immutable named column: a typed value slice plus a validity
// mask. Index i of any derived series corresponds to index i of the source;
// every operation preserves element count and positional order.
type Series struct {
	name  string
	dtype DType

	ints   []int64
	floats []float64
	strs   []string
	bools  []bool

	// null[i] is true when position i holds no value.
	null []bool
}

// NewInt64 creates an Int64 series with no nulls.
func NewInt64(name string, values []int64) *Series {
	return &Series{name: name, dtype: Int64, ints: cloneSlice(values), null: make([]bool, len(values))}
}

// NewFloat64 creates a Float64 series with no nulls.
func NewFloat64(name string, values []float64) *Series {
	return &Series{name: name, dtype: Float64, floats: cloneSlice(values), null: make([]bool, len(values))}
}

// NewString creates a String series with no nulls.
func NewString(name string, values []string) *Series {
	return &Series{name: name, dtype: String, strs: cloneSlice(values), null: make([]bool, len(values))}
}

// NewBool creates a Bool series with no nulls.
func NewBool(name string, values []bool) *Series {
	return &Series{name: name, dtype: Bool, bools: cloneSlice(values), null: make([]bool, len(values))}
}

// NewInt64Nullable creates an Int64 series with the given validity mask.
// values and null must have equal length.
func NewInt64Nullable(name string, values []int64, null []bool) (*Series, error) {
	if err := checkMask(len(values), null); err != nil {
		return nil, err
	}
	return &Series{name: name, dtype: Int64, ints: cloneSlice(values), null: cloneSlice(null)}, nil
}

// NewFloat64Nullable creates a Float64 series with the given validity mask.
func NewFloat64Nullable(name string, values []float64, null []bool) (*Series, error) {
	if err := checkMask(len(values), null); err != nil {
		return nil, err
	}
	return &Series{name: name, dtype: Float64, floats: cloneSlice(values), null: cloneSlice(null)}, nil
}

// NewStringNullable creates a String series with the given validity mask.
func NewStringNullable(name string, values []string, null []bool) (*Series, error) {
	if err := checkMask(len(values), null); err != nil {
		return nil, err
	}
	return &Series{name: name, dtype: String, strs: cloneSlice(values), null: cloneSlice(null)}, nil
}

// NewBoolNullable creates a Bool series with the given validity mask.
func NewBoolNullable(name string, values []bool, null []bool) (*Series, error) {
	if err := checkMask(len(values), null); err != nil {
		return nil, err
	}
	return &Series{name: name, dtype: Bool, bools: cloneSlice(values), null: cloneSlice(null)}, nil
}

func checkMask(n int, null []bool) error {
	if null != nil && len(null) != n {
		return &colerrors.InvalidInputError{
			Op:      "series.New",
			Message: fmt.Sprintf("validity mask length %d does not match value count %d", len(null), n),
		}
	}
	return nil
}

func cloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Name returns the series name.
func (s *Series) Name() string { return s.name }

// DType returns the series element type.
func (s *Series) DType() DType { return s.dtype }

// Len returns the number of elements, including nulls.
func (s *Series) Len() int { return len(s.null) }

// IsNull reports whether position i holds no value.
func (s *Series) IsNull(i int) bool { return s.null[i] }

// NullCount returns the number of null positions.
func (s *Series) NullCount() int {
	n := 0
	for _, isNull := range s.null {
		if isNull {
			n++
		}
	}
	return n
}

// Rename returns a copy of the series with a new name.
// The backing data is shared; series are immutable.
func (s *Series) Rename(name string) *Series {
	out := *s
	out.name = name
	return &out
}

// IntAt returns the value at i and true, or 0 and false when i is null.
// Calling IntAt on a non-Int64 series panics, matching slice misuse semantics.
func (s *Series) IntAt(i int) (int64, bool) {
	s.mustType(Int64)
	if s.null[i] {
		return 0, false
	}
	return s.ints[i], true
}

// FloatAt returns the value at i and true, or 0 and false when i is null.
func (s *Series) FloatAt(i int) (float64, bool) {
	s.mustType(Float64)
	if s.null[i] {
		return 0, false
	}
	return s.floats[i], true
}

// StrAt returns the value at i and true, or "" and false when i is null.
func (s *Series) StrAt(i int) (string, bool) {
	s.mustType(String)
	if s.null[i] {
		return "", false
	}
	return s.strs[i], true
}

// BoolAt returns the value at i and true, or false and false when i is null.
func (s *Series) BoolAt(i int) (bool, bool) {
	s.mustType(Bool)
	if s.null[i] {
		return false, false
	}
	return s.bools[i], true
}

// Value returns the element at i as an any, or nil when null.
func (s *Series) Value(i int) any {
	if s.null[i] {
		return nil
	}
	switch s.dtype {
	case Int64:
		return s.ints[i]
	case Float64:
		return s.floats[i]
	case String:
		return s.strs[i]
	case Bool:
		return s.bools[i]
	}
	return nil
}

func (s *Series) mustType(want DType) {
	if s.dtype != want {
		panic(fmt.Sprintf("series: %s access on %s column %q", want, s.dtype, s.name))
	}
}
