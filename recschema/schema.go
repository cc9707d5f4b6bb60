package recschema

// Schema maps column names to their inferred kinds, preserving the order in
// which columns were first seen across the rows.
type Schema struct {
	columns []string
	kinds   map[string]Kind
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{kinds: make(map[string]Kind)}
}

// Merge records an observation of kind k for the named column. A new column
// is appended with kind k; an existing column escalates per [MergeKinds].
func (s *Schema) Merge(column string, k Kind) {
	prev, ok := s.kinds[column]
	if !ok {
		s.columns = append(s.columns, column)
		s.kinds[column] = k
		return
	}
	s.kinds[column] = MergeKinds(prev, k)
}

// Set forces the named column to kind k, bypassing the merge. A new column
// is appended; an existing column keeps its position.
func (s *Schema) Set(column string, k Kind) {
	if _, ok := s.kinds[column]; !ok {
		s.columns = append(s.columns, column)
	}
	s.kinds[column] = k
}

// Kind returns the kind of the named column and whether it exists.
func (s *Schema) Kind(column string) (Kind, bool) {
	k, ok := s.kinds[column]
	return k, ok
}

// Columns returns the column names in first-seen order. The returned slice
// is shared; callers must not modify it.
func (s *Schema) Columns() []string {
	return s.columns
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.columns)
}
