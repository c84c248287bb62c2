package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/slampai1991/csvcruncher-cli/table"
)

// ReadFile loads an input file into a Table, dispatching on the file
// extension: .parquet files go through the Parquet reader, everything
// else is treated as delimited text with comma as the separator.
func ReadFile(path string, comma rune) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return ReadParquet(path)
	}
	return ReadCSV(path, comma)
}

// ReadParquet reads an entire Parquet file into a Table.
//
// Column order and kinds come from the Parquet schema; row values keep
// their native Go types (int64, float64, string, bool).
func ReadParquet(path string) (*table.Table, error) {
	r, err := newParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	columns := columnsFromSchema(r.Schema())

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	return &table.Table{Columns: columns, Rows: rows}, nil
}

// parquetReader wraps an open Parquet file. It keeps both the OS file
// handle and the parquet handle so Close can release everything.
type parquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

func newParquetReader(path string) (*parquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &parquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadAll reads every row into memory as a map keyed by column name.
func (r *parquetReader) ReadAll() ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Schema returns the parquet file schema.
func (r *parquetReader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close releases the underlying file handle. Safe to call twice.
func (r *parquetReader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// columnsFromSchema maps top-level parquet fields onto table columns.
// Integer and floating point fields become numeric, booleans bool, and
// everything else (strings, byte arrays, nested groups) text.
func columnsFromSchema(schema *parquet.Schema) []table.Column {
	fields := schema.Fields()
	columns := make([]table.Column, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, table.Column{
			Name: field.Name(),
			Kind: kindOfField(field),
		})
	}
	return columns
}

func kindOfField(field parquet.Field) table.Kind {
	// Nested groups have no scalar kind; their cells render as text
	if len(field.Fields()) > 0 || field.Type() == nil {
		return table.KindText
	}
	switch field.Type().Kind() {
	case parquet.Boolean:
		return table.KindBool
	case parquet.Int32, parquet.Int64, parquet.Int96, parquet.Float, parquet.Double:
		return table.KindNumeric
	default:
		return table.KindText
	}
}
