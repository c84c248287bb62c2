package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/slampai1991/csvcruncher-cli/table"
)

// Direction is a sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// OrderBy is a parsed sort request of the form column=direction,
// e.g. "price=asc".
type OrderBy struct {
	Column string
	Dir    Direction
}

// ParseOrderBy parses a sort expression against the table schema. Shape
// problems and unknown directions wrap ErrParse; a missing column wraps
// ErrUnknownColumn.
func ParseOrderBy(expr string, columns []table.Column) (*OrderBy, error) {
	name, dirName, found := strings.Cut(expr, "=")
	name = strings.TrimSpace(name)
	dirName = strings.TrimSpace(dirName)
	if !found || name == "" || dirName == "" {
		return nil, fmt.Errorf("%w: %q (expected column=asc or column=desc)", ErrParse, expr)
	}

	var dir Direction
	switch dirName {
	case "asc":
		dir = Asc
	case "desc":
		dir = Desc
	default:
		return nil, fmt.Errorf("%w: unknown direction %q (expected asc or desc)", ErrParse, dirName)
	}

	if _, ok := table.Lookup(columns, name); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	return &OrderBy{Column: name, Dir: dir}, nil
}

// ApplyOrderBy returns the rows sorted by the requested column. The sort
// is stable, so rows with equal keys keep their input order, and sorting
// an already sorted slice leaves it unchanged. Cells with no value sort
// first ascending and last descending. The input slice is not modified.
func ApplyOrderBy(rows []map[string]interface{}, orderBy *OrderBy) []map[string]interface{} {
	if orderBy == nil || len(rows) == 0 {
		return rows
	}

	sorted := make([]map[string]interface{}, len(rows))
	copy(sorted, rows)

	desc := orderBy.Dir == Desc
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareValues(sorted[i][orderBy.Column], sorted[j][orderBy.Column])
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted
}
