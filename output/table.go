package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders rows as a human-readable bordered table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders rows as a bordered table with columns in the given order.
// With no rows the table still renders its header, so an empty result is
// visible as an empty table rather than no output at all.
func (t *TableFormatter) Format(columns []string, rows []map[string]interface{}) error {
	tw := tablewriter.NewWriter(t.writer)
	tw.SetHeader(columns)
	// Keep column names exactly as they appear in the source file
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = displayValue(row[col])
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}

// displayValue converts a value to string for table display. Unlike
// formatValue it leaves strings untouched, since formula injection is
// only a concern for output fed into spreadsheet applications.
func displayValue(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return formatValue(v)
}
