// Package reader loads delimited text and Parquet files into the shared
// table model.
//
// The format is chosen by file extension: .parquet files are read with
// the parquet-go library, everything else is decoded as delimited text
// with a configurable separator.
//
// # Basic Usage
//
// Reading a file:
//
//	tbl, err := reader.ReadFile("products.csv", ',')
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, row := range tbl.Rows {
//	    fmt.Printf("%v\n", row)
//	}
//
// # Column Kinds
//
// Delimited text carries no types, so kinds are inferred per column: a
// column is numeric when every non-empty cell parses as a float, and
// text otherwise. Empty cells load as nil and don't take part in the
// inference. Parquet kinds come straight from the file schema.
//
// # Schema Introspection
//
// ExtractSchemaInfo reports column names and kinds without the caller
// touching row data:
//
//	infos, err := reader.ExtractSchemaInfo("products.csv", ',')
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, info := range infos {
//	    fmt.Printf("%s: %s\n", info.Name, info.Type)
//	}
//
// # Errors
//
// A missing file surfaces the os.Open error unchanged so callers can
// match it with os.IsNotExist. Files that open but cannot be decoded
// wrap ErrMalformed.
package reader
