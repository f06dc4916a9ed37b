package dataset

import (
	"errors"
	"fmt"
)

// ErrNilMatrix is returned when a nil matrix is supplied.
var ErrNilMatrix = errors.New("dataset: nil matrix")

// ErrEmptyDataset is returned when a table has zero rows or zero columns.
var ErrEmptyDataset = errors.New("dataset: empty dataset")

// ErrNameCount is returned when the number of column names does not match
// the number of matrix columns.
var ErrNameCount = errors.New("dataset: column name count mismatch")

// ErrNonFinite is returned when a NaN or Inf value is found in a table that
// must be fully observed (ground truth before amputation).
var ErrNonFinite = errors.New("dataset: non-finite value")

// ErrZeroVariance is returned by Standardize when a column is constant.
var ErrZeroVariance = errors.New("dataset: zero-variance column")

// ErrScaleCount is returned by Destandardize when the scale slice does not
// match the matrix width.
var ErrScaleCount = errors.New("dataset: scale count mismatch")

// ErrUnknownDataset is returned by Open for names absent from the registry.
var ErrUnknownDataset = errors.New("dataset: unknown dataset name")

// ErrBadShape is returned when a requested synthetic shape is not positive.
var ErrBadShape = errors.New("dataset: rows and columns must be positive")

// ErrBadCovariance is returned when the synthetic covariance parameters do
// not form a positive-definite matrix.
var ErrBadCovariance = errors.New("dataset: covariance is not positive definite")

// ParseError reports a CSV/TSV cell that could not be parsed as a number.
type ParseError struct {
	Row   int    // 1-based data row (header excluded)
	Col   int    // 1-based column
	Field string // offending raw field
}

func (e ParseError) Error() string {
	return fmt.Sprintf("dataset: row %d, column %d: cannot parse %q as a number", e.Row, e.Col, e.Field)
}
