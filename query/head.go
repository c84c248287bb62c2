package query

// ApplyHead keeps only the first n rows. Zero yields an empty slice and
// a count at or past the end returns the rows unchanged. Negative n
// means no limit.
func ApplyHead(rows []map[string]interface{}, n int) []map[string]interface{} {
	if n < 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
