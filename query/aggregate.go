package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/slampai1991/csvcruncher-cli/table"
)

// AggregateOp identifies a supported aggregation.
type AggregateOp int

const (
	AggAvg AggregateOp = iota
	AggMin
	AggMax
	AggMedian
)

// String returns the lower-case operation name.
func (o AggregateOp) String() string {
	switch o {
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	case AggMedian:
		return "median"
	default:
		return "avg"
	}
}

// Aggregate is a parsed aggregation request of the form column=operation,
// e.g. "price=avg".
type Aggregate struct {
	Column string
	Op     AggregateOp
}

// ParseAggregate parses an aggregation expression against the table
// schema. Shape problems and unknown operations wrap ErrParse, a missing
// column wraps ErrUnknownColumn, and a non-numeric target column wraps
// ErrNonNumericColumn.
func ParseAggregate(expr string, columns []table.Column) (*Aggregate, error) {
	name, opName, found := strings.Cut(expr, "=")
	name = strings.TrimSpace(name)
	opName = strings.TrimSpace(opName)
	if !found || name == "" || opName == "" {
		return nil, fmt.Errorf("%w: %q (expected column=operation)", ErrParse, expr)
	}

	var op AggregateOp
	switch opName {
	case "avg":
		op = AggAvg
	case "min":
		op = AggMin
	case "max":
		op = AggMax
	case "median":
		op = AggMedian
	default:
		return nil, fmt.Errorf("%w: unknown aggregation %q (supported: avg, min, max, median)", ErrParse, opName)
	}

	col, ok := table.Lookup(columns, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if col.Kind != table.KindNumeric {
		return nil, fmt.Errorf("%w: %q is %s", ErrNonNumericColumn, name, col.Kind)
	}

	return &Aggregate{Column: name, Op: op}, nil
}

// Apply computes the aggregate over the given rows.
//
// Cells with no value are skipped. When nothing remains, either because
// rows is empty or every cell was empty, the result wraps
// ErrEmptyAggregation.
func (a *Aggregate) Apply(rows []map[string]interface{}) (float64, error) {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		value, ok := row[a.Column]
		if !ok || value == nil {
			continue
		}
		num, ok := toFloat64(value)
		if !ok {
			return 0, fmt.Errorf("%w: %q holds %T", ErrNonNumericColumn, a.Column, value)
		}
		values = append(values, num)
	}

	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no values in column %q", ErrEmptyAggregation, a.Column)
	}

	switch a.Op {
	case AggMin:
		return minOf(values), nil
	case AggMax:
		return maxOf(values), nil
	case AggMedian:
		return medianOf(values), nil
	default:
		return avgOf(values), nil
	}
}

// ResultRow shapes an aggregate value as a one-row table: the column
// name under "column" and the value under the operation name.
func (a *Aggregate) ResultRow(value float64) ([]string, []map[string]interface{}) {
	columns := []string{"column", a.Op.String()}
	row := map[string]interface{}{
		"column":      a.Column,
		a.Op.String(): value,
	}
	return columns, []map[string]interface{}{row}
}

func avgOf(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// medianOf returns the middle of the sorted values, or the mean of the
// two central values when the count is even.
func medianOf(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
