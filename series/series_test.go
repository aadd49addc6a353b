package series

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/coltools/colerrors"
)

func TestDTypeString(t *testing.T) {
	tests := []struct {
		dtype DType
		want  string
	}{
		{Int64, "Int64"},
		{Float64, "Float64"},
		{String, "String"},
		{Bool, "Bool"},
		{DType(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dtype.String())
	}
}

func TestParseDType(t *testing.T) {
	t.Run("round-trips every supported dtype", func(t *testing.T) {
		for _, d := range []DType{Int64, Float64, String, Bool} {
			got, err := ParseDType(d.String())
			require.NoError(t, err)
			assert.Equal(t, d, got)
		}
	})

	t.Run("unknown name fails with ErrSchema", func(t *testing.T) {
		_, err := ParseDType("Decimal128")
		require.Error(t, err)
		assert.True(t, errors.Is(err, colerrors.ErrSchema))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewString copies input", func(t *testing.T) {
		values := []string{"a", "b"}
		s := NewString("col", values)
		values[0] = "mutated"
		got, ok := s.StrAt(0)
		require.True(t, ok)
		assert.Equal(t, "a", got)
	})

	t.Run("nullable constructor records mask", func(t *testing.T) {
		s, err := NewInt64Nullable("n", []int64{1, 2, 3}, []bool{false, true, false})
		require.NoError(t, err)
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 1, s.NullCount())
		assert.True(t, s.IsNull(1))
		_, ok := s.IntAt(1)
		assert.False(t, ok)
	})

	t.Run("mask length mismatch fails", func(t *testing.T) {
		_, err := NewStringNullable("s", []string{"a"}, []bool{false, true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, colerrors.ErrInvalidInput))
	})
}

func TestValue(t *testing.T) {
	s, err := NewFloat64Nullable("f", []float64{1.5, 0}, []bool{false, true})
	require.NoError(t, err)
	assert.Equal(t, 1.5, s.Value(0))
	assert.Nil(t, s.Value(1))
}

func TestRename(t *testing.T) {
	s := NewBool("flags", []bool{true, false})
	renamed := s.Rename("active")
	assert.Equal(t, "active", renamed.Name())
	assert.Equal(t, "flags", s.Name(), "original must be unchanged")
	v, ok := renamed.BoolAt(0)
	require.True(t, ok)
	assert.True(t, v)
}

func TestMapStringToInt64(t *testing.T) {
	t.Run("preserves length, order, and nulls", func(t *testing.T) {
		in, err := NewStringNullable("raw", []string{"1", "oops", "3", ""}, []bool{false, false, false, true})
		require.NoError(t, err)

		out, err := in.MapStringToInt64("parsed", func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
		require.NoError(t, err)

		assert.Equal(t, in.Len(), out.Len())
		assert.Equal(t, "parsed", out.Name())

		v, ok := out.IntAt(0)
		require.True(t, ok)
		assert.Equal(t, int64(1), v)

		// Conversion failure becomes a null, not a column failure.
		assert.True(t, out.IsNull(1))

		v, ok = out.IntAt(2)
		require.True(t, ok)
		assert.Equal(t, int64(3), v)

		// Input null propagates.
		assert.True(t, out.IsNull(3))
	})

	t.Run("wrong dtype fails", func(t *testing.T) {
		in := NewInt64("n", []int64{1})
		_, err := in.MapStringToInt64("out", func(string) (int64, error) { return 0, nil })
		require.Error(t, err)
		assert.True(t, errors.Is(err, colerrors.ErrInvalidInput))
	})
}

func TestMapInt64ToString(t *testing.T) {
	in := NewInt64("n", []int64{10, 20})
	out, err := in.MapInt64ToString("text", func(v int64) (string, error) {
		return strconv.FormatInt(v, 10), nil
	})
	require.NoError(t, err)
	got, ok := out.StrAt(1)
	require.True(t, ok)
	assert.Equal(t, "20", got)
}

func TestZipStringsToInt64(t *testing.T) {
	t.Run("pairwise with null propagation", func(t *testing.T) {
		a, err := NewStringNullable("a", []string{"kitten", "x", ""}, []bool{false, false, true})
		require.NoError(t, err)
		b := NewString("b", []string{"sitting", "x", "y"})

		out, err := ZipStringsToInt64(a, b, "dist", func(x, y string) (int64, error) {
			if x == y {
				return 0, nil
			}
			return int64(len(x) + len(y)), nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Len())
		v, ok := out.IntAt(0)
		require.True(t, ok)
		assert.Equal(t, int64(13), v)
		v, ok = out.IntAt(1)
		require.True(t, ok)
		assert.Zero(t, v)
		assert.True(t, out.IsNull(2))
	})

	t.Run("length mismatch fails", func(t *testing.T) {
		a := NewString("a", []string{"x"})
		b := NewString("b", []string{"x", "y"})
		_, err := ZipStringsToInt64(a, b, "out", func(string, string) (int64, error) { return 0, nil })
		require.Error(t, err)
		assert.True(t, errors.Is(err, colerrors.ErrInvalidInput))
	})
}

func TestTypedAccessPanicsOnWrongDType(t *testing.T) {
	s := NewString("s", []string{"a"})
	assert.Panics(t, func() { s.IntAt(0) })
}

func TestMapStringToString(t *testing.T) {
	in := NewString("words", []string{"Hello", "World"})
	out, err := in.MapStringToString("lower", func(s string) (string, error) {
		return strings.ToLower(s), nil
	})
	require.NoError(t, err)
	got, ok := out.StrAt(0)
	require.True(t, ok)
	assert.Equal(t, "hello", got)
}
