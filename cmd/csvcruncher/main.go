package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/slampai1991/csvcruncher-cli/output"
	"github.com/slampai1991/csvcruncher-cli/query"
	"github.com/slampai1991/csvcruncher-cli/reader"
)

var (
	fileFlag      = flag.String("file", "", "Path to the input file, CSV or parquet (required)")
	whereFlag     = flag.String("where", "", "Filter condition (e.g., \"price>100\")")
	aggregateFlag = flag.String("aggregate", "", "Aggregation as column=operation (avg, min, max, median)")
	orderByFlag   = flag.String("order-by", "", "Sort order as column=direction (asc, desc)")
	headFlag      = flag.String("head", "", "Keep only the first N rows")
	formatFlag    = flag.String("format", "table", "Output format: table, csv, json, jsonl")
	delimiterFlag = flag.String("delimiter", ",", "Field delimiter for CSV input (single character, or \\t)")
	schemaFlag    = flag.Bool("schema", false, "Show column names and types instead of data")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s --file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to filter, sort and aggregate CSV and parquet files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --file data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --file data.csv --where \"price>100\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --file data.csv --where \"price>100\" --aggregate price=avg\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --file data.csv --order-by price=desc --head 10\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --file data.parquet --format csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --file data.csv --schema\n", os.Args[0])
	}

	flag.Parse()

	// Validate flag values
	if *fileFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: missing required flag --file\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected argument %q (input is given with --file)\n", flag.Arg(0))
		os.Exit(1)
	}

	comma, err := parseDelimiter(*delimiterFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	head := -1
	if *headFlag != "" {
		n, err := strconv.Atoi(*headFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: --head must be an integer, got %q\n", *headFlag)
			os.Exit(1)
		}
		if n < 0 {
			fmt.Fprintf(os.Stderr, "Error: --head must be non-negative, got %d\n", n)
			os.Exit(1)
		}
		head = n
	}

	// Validate flag combinations
	if *schemaFlag && (*whereFlag != "" || *aggregateFlag != "" || *orderByFlag != "" || *headFlag != "") {
		fmt.Fprintf(os.Stderr, "Error: --schema cannot be combined with query flags\n")
		os.Exit(1)
	}

	// Handle schema mode
	if *schemaFlag {
		handleSchemaMode(*fileFlag, comma, *formatFlag)
		os.Exit(0)
	}

	req := request{
		filename:  *fileFlag,
		where:     *whereFlag,
		aggregate: *aggregateFlag,
		orderBy:   *orderByFlag,
		head:      head,
		comma:     comma,
		format:    *formatFlag,
	}

	if err := crunch(req, os.Stdout); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", req.filename)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// request carries the validated flag values for one run.
type request struct {
	filename  string
	where     string
	aggregate string
	orderBy   string
	head      int
	comma     rune
	format    string
}

// crunch loads the input file, runs the pipeline stages in order
// (filter, sort, head, aggregate) and writes the result to w.
func crunch(req request, w io.Writer) error {
	tbl, err := reader.ReadFile(req.filename, req.comma)
	if err != nil {
		return err
	}

	rows := tbl.Rows

	if req.where != "" {
		cond, err := query.ParseCondition(req.where, tbl.Columns)
		if err != nil {
			return fmt.Errorf("--where: %w", err)
		}
		rows = query.ApplyFilter(rows, cond)
	}

	if req.orderBy != "" {
		orderBy, err := query.ParseOrderBy(req.orderBy, tbl.Columns)
		if err != nil {
			return fmt.Errorf("--order-by: %w", err)
		}
		rows = query.ApplyOrderBy(rows, orderBy)
	}

	rows = query.ApplyHead(rows, req.head)

	columns := tbl.ColumnNames()

	// Aggregation replaces the surviving rows with a single result row
	if req.aggregate != "" {
		agg, err := query.ParseAggregate(req.aggregate, tbl.Columns)
		if err != nil {
			return fmt.Errorf("--aggregate: %w", err)
		}
		value, err := agg.Apply(rows)
		if err != nil {
			return fmt.Errorf("--aggregate: %w", err)
		}
		columns, rows = agg.ResultRow(value)
	}

	formatter, err := newFormatter(req.format, w)
	if err != nil {
		return err
	}
	return formatter.Format(columns, rows)
}

// newFormatter selects the output formatter for the given format name.
func newFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "table":
		return output.NewTableFormatter(w), nil
	case "csv":
		return output.NewCSVFormatter(w), nil
	case "json", "jsonl":
		return output.NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: table, csv, json, jsonl)", format)
	}
}

// parseDelimiter converts the --delimiter flag value to a rune.
// The two-character escape \t is accepted for tab-separated input.
func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("--delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch r {
	case '\n', '\r', '"':
		return 0, fmt.Errorf("--delimiter cannot be %q", s)
	}
	return r, nil
}

// handleSchemaMode handles the --schema flag by extracting and displaying schema information
func handleSchemaMode(filename string, comma rune, format string) {
	schemaInfos, err := reader.ExtractSchemaInfo(filename, comma)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", filename)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		}
		os.Exit(1)
	}

	columns := []string{"name", "type"}
	rows := make([]map[string]interface{}, len(schemaInfos))
	for i, field := range schemaInfos {
		rows[i] = map[string]interface{}{
			"name": field.Name,
			"type": field.Type,
		}
	}

	formatter, err := newFormatter(format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := formatter.Format(columns, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}
