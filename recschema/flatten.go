package recschema

// Flatten converts records into rows, one per record, in record order.
//
// Object payloads are merged into the row after the key-derived record_id,
// field by field in document order. A payload field literally named
// "record_id" therefore overwrites the key-derived value (last write wins)
// while keeping the column's leading position. Any other payload (scalar,
// list, null) is stored whole under the "data" column, pending coercion by
// [InferSchema].
func Flatten(records []Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := NewRow()
		row.Set(RecordIDColumn, rec.ID)

		if obj, ok := rec.Payload.(*Object); ok {
			for _, k := range obj.Keys() {
				v, _ := obj.Get(k)
				row.Set(k, v)
			}
		} else {
			row.Set(DataColumn, rec.Payload)
		}

		rows = append(rows, row)
	}
	return rows
}
