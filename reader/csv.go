package reader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/slampai1991/csvcruncher-cli/table"
)

// ErrMalformed is returned when the input file cannot be parsed as a
// delimited table (missing header, duplicate columns, ragged rows).
var ErrMalformed = errors.New("malformed input")

// ReadCSV reads a delimited text file into a Table using comma as the
// field separator.
//
// The first record is the header and defines the column schema. Column
// kinds are inferred from the data: a column is numeric when every
// non-empty cell parses as a float, otherwise text. Empty cells become
// nil. A file with a header but no data rows yields a table with zero
// rows.
func ReadCSV(path string, comma rune) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return parseCSV(file, comma)
}

// parseCSV does the actual decoding so tests can feed readers directly.
func parseCSV(r io.Reader, comma rune) (*table.Table, error) {
	br := bufio.NewReader(r)

	// Strip a UTF-8 BOM so the first column name survives lookup.
	ru, _, err := br.ReadRune()
	if err == nil && ru != '\uFEFF' {
		_ = br.UnreadRune()
	}

	csvReader := csv.NewReader(br)
	csvReader.Comma = comma

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if name == "" {
			return nil, fmt.Errorf("%w: empty column name at position %d", ErrMalformed, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformed, name)
		}
		seen[name] = true
		names[i] = name
	}

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	columns := inferColumns(names, records)

	rows := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			row[col.Name] = convertCell(record[i], col.Kind)
		}
		rows = append(rows, row)
	}

	return &table.Table{Columns: columns, Rows: rows}, nil
}

// inferColumns decides the kind of each column by scanning every cell.
// Empty cells don't vote, so a column of numbers with gaps stays numeric.
// A column with no non-empty cells at all is text.
func inferColumns(names []string, records [][]string) []table.Column {
	columns := make([]table.Column, len(names))
	for i, name := range names {
		kind := table.KindText
		hasValues := false
		numeric := true

		for _, record := range records {
			cell := record[i]
			if cell == "" {
				continue
			}
			hasValues = true
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
				break
			}
		}

		if hasValues && numeric {
			kind = table.KindNumeric
		}
		columns[i] = table.Column{Name: name, Kind: kind}
	}
	return columns
}

// convertCell turns the raw string cell into its in-memory value.
func convertCell(cell string, kind table.Kind) interface{} {
	if cell == "" {
		return nil
	}
	if kind == table.KindNumeric {
		// Inference already proved every non-empty cell parses.
		n, err := strconv.ParseFloat(cell, 64)
		if err == nil {
			return n
		}
	}
	return cell
}
