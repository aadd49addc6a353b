// Package frame provides an ordered collection of equal-length series,
// the frame-level surface that column renaming, technical analysis, and
// XML normalization operate on.
package frame

import (
	"fmt"

	"github.com/erraggy/coltools/colerrors"
	"github.com/erraggy/coltools/series"
)

// Frame is an immutable ordered collection of same-length series with
// unique names. Operations return new frames; the shared series are
// themselves immutable.
type Frame struct {
	cols  []*series.Series
	index map[string]int
}

// New creates a frame from the given columns. Column names must be unique
// and all columns must have equal length.
func New(cols ...*series.Series) (*Frame, error) {
	f := &Frame{
		cols:  make([]*series.Series, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for _, c := range cols {
		if err := f.append(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Frame) append(c *series.Series) error {
	if _, ok := f.index[c.Name()]; ok {
		return &colerrors.InvalidInputError{
			Op:      "frame.New",
			Value:   c.Name(),
			Message: "duplicate column name",
		}
	}
	if len(f.cols) > 0 && c.Len() != f.cols[0].Len() {
		return &colerrors.InvalidInputError{
			Op:      "frame.New",
			Value:   c.Name(),
			Message: fmt.Sprintf("column length %d does not match frame length %d", c.Len(), f.cols[0].Len()),
		}
	}
	f.index[c.Name()] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// Columns returns the column names in positional order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name()
	}
	return names
}

// Column returns the named column, or false when absent.
func (f *Frame) Column(name string) (*series.Series, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// ColumnAt returns the column at position i.
func (f *Frame) ColumnAt(i int) *series.Series {
	return f.cols[i]
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.cols) }

// WithColumn returns a new frame with c appended. The column name must not
// collide with an existing column and the length must match.
func (f *Frame) WithColumn(c *series.Series) (*Frame, error) {
	out := f.shallowCopy()
	if err := out.append(c); err != nil {
		return nil, err
	}
	return out, nil
}

// WithColumns returns a new frame with all the given columns appended.
func (f *Frame) WithColumns(cols ...*series.Series) (*Frame, error) {
	out := f.shallowCopy()
	for _, c := range cols {
		if err := out.append(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Rename returns a new frame with columns renamed per the mapping.
// Columns absent from the mapping keep their names. Renaming that produces
// a duplicate name, or a mapping key that names no column, fails.
func (f *Frame) Rename(mapping map[string]string) (*Frame, error) {
	for old := range mapping {
		if _, ok := f.index[old]; !ok {
			return nil, &colerrors.InvalidInputError{
				Op:      "frame.Rename",
				Value:   old,
				Message: "no such column",
			}
		}
	}
	renamed := make([]*series.Series, len(f.cols))
	for i, c := range f.cols {
		if newName, ok := mapping[c.Name()]; ok {
			renamed[i] = c.Rename(newName)
		} else {
			renamed[i] = c
		}
	}
	return New(renamed...)
}

func (f *Frame) shallowCopy() *Frame {
	out := &Frame{
		cols:  make([]*series.Series, len(f.cols)),
		index: make(map[string]int, len(f.index)),
	}
	copy(out.cols, f.cols)
	for k, v := range f.index {
		out.index[k] = v
	}
	return out
}
