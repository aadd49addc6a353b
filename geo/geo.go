// Package geo provides point geometry conversion between Well-Known Text,
// coordinate pairs, and Well-Known Binary, as scalar functions and as
// column-wise operations. Only 2D points are supported; columnar data
// carries WKB hex-encoded in string columns.
package geo

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/coltools/colerrors"
)

// wkbPointType is the WKB geometry type code for a 2D point.
const wkbPointType = 1

// wkbPointSize is the encoded size of a 2D point: a byte-order flag, a
// uint32 geometry type, and two float64 coordinates.
const wkbPointSize = 1 + 4 + 8 + 8

// Point is a 2D coordinate pair.
type Point struct {
	X float64
	Y float64
}

// WKT returns the Well-Known Text form of the point, "POINT (x y)".
func (p Point) WKT() string {
	return fmt.Sprintf("POINT (%s %s)", formatCoord(p.X), formatCoord(p.Y))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseWKT parses a Well-Known Text point of the form "POINT (x y)".
// Case and interior whitespace are flexible; anything that is not a 2D
// point fails with colerrors.ErrInvalidInput.
func ParseWKT(s string) (Point, error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "POINT") {
		return Point{}, &colerrors.InvalidInputError{
			Op:      "ParseWKT",
			Value:   s,
			Message: "not a POINT geometry",
		}
	}
	rest := strings.TrimSpace(trimmed[len("POINT"):])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return Point{}, &colerrors.InvalidInputError{
			Op:      "ParseWKT",
			Value:   s,
			Message: "missing coordinate parentheses",
		}
	}
	fields := strings.Fields(rest[1 : len(rest)-1])
	if len(fields) != 2 {
		return Point{}, &colerrors.InvalidInputError{
			Op:      "ParseWKT",
			Value:   s,
			Message: fmt.Sprintf("want 2 coordinates, got %d", len(fields)),
		}
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, &colerrors.InvalidInputError{Op: "ParseWKT", Value: fields[0], Message: "bad x coordinate", Cause: err}
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, &colerrors.InvalidInputError{Op: "ParseWKT", Value: fields[1], Message: "bad y coordinate", Cause: err}
	}
	return Point{X: x, Y: y}, nil
}

// EncodeWKB returns the 21-byte Well-Known Binary form of the point in the
// given byte order.
func (p Point) EncodeWKB(order binary.ByteOrder) []byte {
	buf := make([]byte, wkbPointSize)
	if order == binary.LittleEndian {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
	order.PutUint32(buf[1:5], wkbPointType)
	order.PutUint64(buf[5:13], math.Float64bits(p.X))
	order.PutUint64(buf[13:21], math.Float64bits(p.Y))
	return buf
}

// DecodeWKB decodes a Well-Known Binary 2D point. Both byte orders are
// accepted; truncated input or a non-point geometry type fails with
// colerrors.ErrInvalidInput.
func DecodeWKB(data []byte) (Point, error) {
	if len(data) != wkbPointSize {
		return Point{}, &colerrors.InvalidInputError{
			Op:      "DecodeWKB",
			Message: fmt.Sprintf("want %d bytes, got %d", wkbPointSize, len(data)),
		}
	}
	var order binary.ByteOrder
	switch data[0] {
	case 0:
		order = binary.BigEndian
	case 1:
		order = binary.LittleEndian
	default:
		return Point{}, &colerrors.InvalidInputError{
			Op:      "DecodeWKB",
			Value:   data[0],
			Message: "bad byte order flag",
		}
	}
	if geomType := order.Uint32(data[1:5]); geomType != wkbPointType {
		return Point{}, &colerrors.InvalidInputError{
			Op:      "DecodeWKB",
			Value:   geomType,
			Message: "not a point geometry",
		}
	}
	return Point{
		X: math.Float64frombits(order.Uint64(data[5:13])),
		Y: math.Float64frombits(order.Uint64(data[13:21])),
	}, nil
}

// EncodeWKBHex returns the point's little-endian WKB, hex-encoded, the way
// text-typed columns conventionally carry binary geometry.
func (p Point) EncodeWKBHex() string {
	return hex.EncodeToString(p.EncodeWKB(binary.LittleEndian))
}

// DecodeWKBHex decodes a hex-encoded WKB 2D point.
func DecodeWKBHex(s string) (Point, error) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return Point{}, &colerrors.InvalidInputError{
			Op:      "DecodeWKBHex",
			Value:   s,
			Message: "not valid hex",
			Cause:   err,
		}
	}
	return DecodeWKB(data)
}
