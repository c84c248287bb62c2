// Package output provides formatters for rendering result tables in various formats.
//
// This package defines the Formatter interface and provides implementations
// for a human-readable table, CSV, and JSON Lines. All formatters work with
// rows represented as []map[string]interface{} plus an explicit column list
// that fixes the order in which columns appear in the output.
//
// # Supported Formats
//
//   - table: Bordered table for terminal display (the default)
//   - CSV: Comma-separated values with header row
//   - JSON Lines: One JSON object per line (suitable for streaming)
//
// # Basic Usage
//
// Using the table formatter:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(columns, rows); err != nil {
//	    log.Fatal(err)
//	}
//
// Using the CSV formatter:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(columns, rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//
//	// Write to file
//	file, err := os.Create("output.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(columns, rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # Using as String
//
// Write to a bytes buffer to get string output:
//
//	var buf bytes.Buffer
//	formatter := output.NewCSVFormatter(&buf)
//	if err := formatter.Format(columns, rows); err != nil {
//	    log.Fatal(err)
//	}
//	csvString := buf.String()
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(columns []string, rows []map[string]interface{}) error
//	    SetOutput(w io.Writer)
//	}
//
// # Column Order
//
// The columns slice is authoritative: table and CSV output render columns
// in exactly that order, and a column missing from a row renders as an
// empty cell. The JSON Lines formatter ignores the slice because
// encoding/json orders map keys alphabetically.
//
// # Type Handling
//
// The formatters handle common Go types automatically:
//   - Strings, numbers (int, float), booleans are output directly
//   - Floats render in their shortest form, so 100.0 prints as 100
//   - CSV output sanitizes strings that could trigger formula execution
//     in spreadsheet applications
//   - Null/nil values render as empty cells in table and CSV output
package output
