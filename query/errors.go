package query

import "errors"

var (
	// ErrParse is returned when a filter, aggregate or order expression
	// doesn't match its expected shape.
	ErrParse = errors.New("parse error")

	// ErrUnknownColumn is returned when an expression references a column
	// that isn't part of the table schema.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNonNumericColumn is returned when an aggregation targets a column
	// that isn't numeric.
	ErrNonNumericColumn = errors.New("non-numeric column")

	// ErrEmptyAggregation is returned when an aggregation has no values to
	// work with, either because no rows survived filtering or because the
	// column holds nothing but empty cells.
	ErrEmptyAggregation = errors.New("nothing to aggregate")
)
