// Package output provides formatters for rendering result tables in various formats.
//
// Currently supported formats:
//   - table: Human-readable bordered table (the default)
//   - CSV: Comma-separated values with header row
//   - JSON Lines: One JSON object per line
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(columns, rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import "io"

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render rows in the target format
// and SetOutput to change the output destination. The columns slice
// fixes the column order of the rendered output; formatters must not
// reorder it.
type Formatter interface {
	// Format writes rows in the formatter's specific format,
	// with columns rendered in the given order
	Format(columns []string, rows []map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
