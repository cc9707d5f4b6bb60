package recschema

// Kind identifies the storage type inferred for a column.
type Kind int

// Kinds in escalation order. Merging two kinds yields the larger one, so a
// column only ever widens toward Text as more values are observed.
const (
	Bigint Kind = iota
	Double
	Text
)

// String returns the SQL type name for the kind. Unrecognized kinds render
// as TEXT.
func (k Kind) String() string {
	switch k {
	case Bigint:
		return "BIGINT"
	case Double:
		return "DOUBLE"
	case Text:
		return "TEXT"
	}
	return "TEXT"
}

// MergeKinds returns the wider of the two kinds. Values outside the known
// range are treated as Text, the maximal kind.
func MergeKinds(a, b Kind) Kind {
	if a < Bigint || a > Text {
		a = Text
	}
	if b < Bigint || b > Text {
		b = Text
	}
	if a > b {
		return a
	}
	return b
}
