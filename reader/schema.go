package reader

// SchemaInfo describes a single column of an input file.
type SchemaInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ExtractSchemaInfo reports the column names and inferred kinds of an
// input file, in schema order.
//
// The file is fully loaded: delimited text input needs the data rows to
// infer column kinds, so schema extraction costs the same as a read.
func ExtractSchemaInfo(path string, comma rune) ([]SchemaInfo, error) {
	tbl, err := ReadFile(path, comma)
	if err != nil {
		return nil, err
	}

	infos := make([]SchemaInfo, len(tbl.Columns))
	for i, col := range tbl.Columns {
		infos[i] = SchemaInfo{
			Name: col.Name,
			Type: col.Kind.String(),
		}
	}
	return infos, nil
}
