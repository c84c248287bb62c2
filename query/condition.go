package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/slampai1991/csvcruncher-cli/table"
)

// Operator identifies a comparison operator in a filter expression.
type Operator int

const (
	OpLess Operator = iota
	OpGreater
	OpEqual
)

// String returns the operator symbol.
func (o Operator) String() string {
	switch o {
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	default:
		return "="
	}
}

// Condition is a parsed filter predicate of the form column<op>literal,
// e.g. "price>100" or "name=Apple".
//
// The literal is coerced at parse time based on the column's kind, so
// evaluation never has to guess: numeric columns compare as floats, all
// other columns compare their text form lexicographically.
type Condition struct {
	Column  string
	Op      Operator
	Number  float64
	Text    string
	Numeric bool
}

// ParseCondition parses a filter expression against the table schema.
//
// The expression is split on the first <, > or = character. Shape
// problems wrap ErrParse, a reference to a column missing from the
// schema wraps ErrUnknownColumn, and a literal that doesn't parse as a
// number for a numeric column wraps ErrParse as well.
func ParseCondition(expr string, columns []table.Column) (*Condition, error) {
	idx := strings.IndexAny(expr, "<>=")
	if idx < 0 {
		return nil, fmt.Errorf("%w: missing operator in %q (expected <, > or =)", ErrParse, expr)
	}

	name := strings.TrimSpace(expr[:idx])
	literal := strings.TrimSpace(expr[idx+1:])
	if name == "" {
		return nil, fmt.Errorf("%w: missing column name in %q", ErrParse, expr)
	}
	if literal == "" {
		return nil, fmt.Errorf("%w: missing value in %q", ErrParse, expr)
	}

	var op Operator
	switch expr[idx] {
	case '<':
		op = OpLess
	case '>':
		op = OpGreater
	default:
		op = OpEqual
	}

	col, ok := table.Lookup(columns, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	if col.Kind == table.KindNumeric {
		n, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number (column %q is numeric)", ErrParse, literal, name)
		}
		return &Condition{Column: name, Op: op, Number: n, Numeric: true}, nil
	}

	return &Condition{Column: name, Op: op, Text: literal}, nil
}

// Evaluate reports whether a row satisfies the condition. Cells with no
// value never match.
func (c *Condition) Evaluate(row map[string]interface{}) bool {
	value, ok := row[c.Column]
	if !ok || value == nil {
		return false
	}

	if c.Numeric {
		n, ok := toFloat64(value)
		if !ok {
			return false
		}
		return compareNumbers(n, c.Op, c.Number)
	}

	s, ok := toString(value)
	if !ok {
		// Bool cells compare through their text form.
		s = fmt.Sprintf("%v", value)
	}
	return compareStrings(s, c.Op, c.Text)
}

// ApplyFilter returns the rows matching cond, preserving input order.
// A nil condition keeps everything. Filtering an already filtered slice
// with the same condition returns it unchanged.
func ApplyFilter(rows []map[string]interface{}, cond *Condition) []map[string]interface{} {
	if cond == nil {
		return rows
	}

	filtered := make([]map[string]interface{}, 0)
	for _, row := range rows {
		if cond.Evaluate(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// compareNumbers compares two numbers
func compareNumbers(left float64, op Operator, right float64) bool {
	const epsilon = 1e-9
	switch op {
	case OpEqual:
		// Epsilon scaled by magnitude so equality behaves for both
		// small and large values.
		diff := math.Abs(left - right)
		threshold := epsilon * max(1.0, math.Abs(left), math.Abs(right))
		return diff < threshold
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive)
func compareStrings(left string, op Operator, right string) bool {
	switch op {
	case OpEqual:
		return left == right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	default:
		return false
	}
}
