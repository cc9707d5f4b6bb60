package recschema

// Row is one flattened record: an ordered mapping from column name to a
// value. Before [InferSchema] runs the values are raw decoded JSON; after,
// they are the coerced storable forms.
//
// Row is backed by [Object], so the overwrite-keeps-position behavior of
// Set is implemented once.
type Row struct {
	obj *Object
}

// NewRow returns an empty row.
func NewRow() Row {
	return Row{obj: NewObject()}
}

// Set stores v under column. New columns are appended; existing columns keep
// their position.
func (r Row) Set(column string, v any) {
	r.obj.Set(column, v)
}

// Value returns the value stored under column and whether the row has it.
// Absent columns read as (nil, false), which the writer inserts as NULL.
func (r Row) Value(column string) (any, bool) {
	return r.obj.Get(column)
}

// Columns returns the row's column names in insertion order. The returned
// slice is shared; callers must not modify it.
func (r Row) Columns() []string {
	return r.obj.Keys()
}

// Len returns the number of columns in the row.
func (r Row) Len() int {
	return r.obj.Len()
}
