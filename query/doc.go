// Package query implements the row operations applied between loading a
// table and printing it: predicate filtering, single-column aggregation,
// sorting and row-count limiting.
//
// Every operation works on the shared row shape, a slice of maps keyed
// by column name. Expressions arrive as small strings taken straight
// from command-line flags and are parsed against the table schema, so
// column and type errors surface before any row is touched:
//   - "price>100" filters rows (operators <, > and =)
//   - "price=avg" aggregates a numeric column (avg, min, max, median)
//   - "price=asc" sorts rows (asc or desc)
//
// # Filtering
//
// Parse a condition once, then apply it:
//
//	cond, err := query.ParseCondition("price>100", tbl.Columns)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows := query.ApplyFilter(tbl.Rows, cond)
//
// Numeric columns compare as floats; all other columns compare their
// text form lexicographically. Cells with no value never match.
//
// # Aggregation
//
// An aggregation collapses the surviving rows into a single value:
//
//	agg, err := query.ParseAggregate("price=avg", tbl.Columns)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	value, err := agg.Apply(rows)
//
// Empty cells are skipped; aggregating nothing at all wraps
// ErrEmptyAggregation.
//
// # Sorting and Limiting
//
// ApplyOrderBy sorts stably, keeping the input order of rows that
// compare equal. ApplyHead truncates to the first n rows, with 0
// yielding an empty result.
//
// # Error Handling
//
// Parse functions wrap the package sentinels (ErrParse,
// ErrUnknownColumn, ErrNonNumericColumn) so callers can match the
// failure kind with errors.Is while still printing the full message.
package query
