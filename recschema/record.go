// Package recschema defines the data model for record documents: ordered
// JSON objects, flattened rows, and the column kinds inferred for them.
//
// The pipeline is [Flatten] followed by [InferSchema]. Flatten turns the
// top-level records into one row each; InferSchema coerces every row value
// to its storable form and derives a [Schema] mapping column names to kinds.
package recschema

// Column names with fixed roles in every flattened document.
const (
	// RecordIDColumn holds the top-level key of each record. It is always
	// present in the schema and always typed Text.
	RecordIDColumn = "record_id"

	// DataColumn holds the whole payload of records whose payload is not
	// a JSON object.
	DataColumn = "data"
)

// Record is one entry of the top-level input object: the key and its raw
// payload. Payload is *Object when the payload is a JSON object, otherwise
// a decoded scalar or slice.
type Record struct {
	ID      string
	Payload any
}
