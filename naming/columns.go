package naming

import (
	"github.com/erraggy/coltools/colerrors"
	"github.com/erraggy/coltools/frame"
	"github.com/erraggy/coltools/series"
)

// Convert applies the case conversion value-wise to a String column,
// returning a new column named name.
func Convert(s *series.Series, name string, c Case) (*series.Series, error) {
	fn := converterFor(c)
	if fn == nil {
		return nil, &colerrors.InvalidInputError{
			Op:      "naming.Convert",
			Value:   int(c),
			Message: "unknown case",
		}
	}
	return s.MapStringToString(name, func(v string) (string, error) {
		return fn(v), nil
	})
}

// RenameColumns returns a new frame with every column name converted to the
// given case. Data is untouched. Conversion that collapses two column names
// into one fails with colerrors.ErrInvalidInput.
func RenameColumns(f *frame.Frame, c Case) (*frame.Frame, error) {
	fn := converterFor(c)
	if fn == nil {
		return nil, &colerrors.InvalidInputError{
			Op:      "naming.RenameColumns",
			Value:   int(c),
			Message: "unknown case",
		}
	}
	mapping := make(map[string]string, f.Width())
	seen := make(map[string]string, f.Width())
	for _, old := range f.Columns() {
		converted := fn(old)
		if prev, ok := seen[converted]; ok {
			return nil, &colerrors.InvalidInputError{
				Op:      "naming.RenameColumns",
				Value:   converted,
				Message: "columns " + prev + " and " + old + " collide after conversion",
			}
		}
		seen[converted] = old
		mapping[old] = converted
	}
	return f.Rename(mapping)
}
