// Package table defines the in-memory data model shared by the reader,
// query and output packages.
//
// A Table holds an entire input file: an ordered column schema plus one
// map per row keyed by column name. Cells with no value are nil.
package table

// Kind identifies the inferred type of a column.
type Kind int

const (
	// KindText is the fallback for columns holding any non-numeric value.
	KindText Kind = iota

	// KindNumeric marks columns whose every non-empty cell parses as a number.
	KindNumeric

	// KindBool marks boolean columns. Only Parquet input produces these;
	// delimited text input infers numeric or text.
	KindBool
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindBool:
		return "bool"
	default:
		return "text"
	}
}

// Column describes a single column of a table.
type Column struct {
	Name string
	Kind Kind
}

// Table is a fully loaded input file. Columns preserves the input column
// order; Rows holds one map per data row. Downstream stages treat a Table
// as read-only and build new slices when they reorder or shrink the rows.
type Table struct {
	Columns []Column
	Rows    []map[string]interface{}
}

// ColumnNames returns the column names in schema order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Lookup finds a column by name.
func Lookup(columns []Column, name string) (Column, bool) {
	for _, col := range columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}
