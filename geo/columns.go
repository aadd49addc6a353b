package geo

import (
	"github.com/erraggy/coltools/colerrors"
	"github.com/erraggy/coltools/series"
)

// WKTToWKBHex converts a String column of WKT points to a String column of
// hex-encoded WKB named name. Malformed geometries become nulls.
func WKTToWKBHex(s *series.Series, name string) (*series.Series, error) {
	return s.MapStringToString(name, func(v string) (string, error) {
		p, err := ParseWKT(v)
		if err != nil {
			return "", err
		}
		return p.EncodeWKBHex(), nil
	})
}

// WKBHexToWKT converts a String column of hex-encoded WKB points to a
// String column of WKT named name. Malformed input becomes nulls.
func WKBHexToWKT(s *series.Series, name string) (*series.Series, error) {
	return s.MapStringToString(name, func(v string) (string, error) {
		p, err := DecodeWKBHex(v)
		if err != nil {
			return "", err
		}
		return p.WKT(), nil
	})
}

// PointsFromWKT splits a String column of WKT points into two Float64
// columns named xName and yName. A malformed geometry yields nulls in both
// output columns at that position.
func PointsFromWKT(s *series.Series, xName, yName string) (*series.Series, *series.Series, error) {
	if s.DType() != series.String {
		return nil, nil, &colerrors.InvalidInputError{
			Op:      "PointsFromWKT",
			Value:   s.DType().String(),
			Message: "column " + s.Name() + " has wrong dtype, want String",
		}
	}

	n := s.Len()
	xs := make([]float64, n)
	ys := make([]float64, n)
	null := make([]bool, n)
	for i := 0; i < n; i++ {
		raw, ok := s.StrAt(i)
		if !ok {
			null[i] = true
			continue
		}
		p, err := ParseWKT(raw)
		if err != nil {
			null[i] = true
			continue
		}
		xs[i] = p.X
		ys[i] = p.Y
	}
	xCol, err := series.NewFloat64Nullable(xName, xs, null)
	if err != nil {
		return nil, nil, err
	}
	yCol, err := series.NewFloat64Nullable(yName, ys, null)
	if err != nil {
		return nil, nil, err
	}
	return xCol, yCol, nil
}

// PointsToWKT combines two Float64 coordinate columns of equal length into
// a String column of WKT points named name. A null in either coordinate
// yields a null output.
func PointsToWKT(x, y *series.Series, name string) (*series.Series, error) {
	for _, col := range []*series.Series{x, y} {
		if col.DType() != series.Float64 {
			return nil, &colerrors.InvalidInputError{
				Op:      "PointsToWKT",
				Value:   col.DType().String(),
				Message: "column " + col.Name() + " has wrong dtype, want Float64",
			}
		}
	}
	if x.Len() != y.Len() {
		return nil, &colerrors.InvalidInputError{
			Op:      "PointsToWKT",
			Message: "series length mismatch",
		}
	}

	n := x.Len()
	out := make([]string, n)
	null := make([]bool, n)
	for i := 0; i < n; i++ {
		xv, xok := x.FloatAt(i)
		yv, yok := y.FloatAt(i)
		if !xok || !yok {
			null[i] = true
			continue
		}
		out[i] = Point{X: xv, Y: yv}.WKT()
	}
	return series.NewStringNullable(name, out, null)
}
