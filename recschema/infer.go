package recschema

// InferSchema scans every row, replaces each value in place with its coerced
// storable form (see [CoerceValue]), and returns the schema accumulated by
// merging the per-value kinds column by column.
//
// The record_id column is forced to Text regardless of what its values
// classified as, and is appended to the schema if no row produced it. Rows
// are not padded; the writer supplies NULL for columns a row lacks.
func InferSchema(rows []Row) *Schema {
	schema := NewSchema()
	for i := range rows {
		row := &rows[i]
		for _, column := range row.Columns() {
			v, _ := row.Value(column)
			coerced, kind := CoerceValue(v)
			row.Set(column, coerced)
			schema.Merge(column, kind)
		}
	}

	schema.Set(RecordIDColumn, Text)
	return schema
}
