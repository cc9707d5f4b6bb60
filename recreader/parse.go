package recreader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PalNilsson/json2duckdb/recschema"
)

// parseDocument decodes data as a top-level JSON object, returning one
// record per key in document order. Go's map-based decoding would discard
// key order, so every object at every depth is walked token by token into
// an ordered *recschema.Object; the order survives through MarshalJSON when
// nested values are later serialized into TEXT cells.
//
// All decoding runs in UseNumber mode so that integer and floating-point
// literals remain distinguishable for type inference.
func parseDocument(data []byte) ([]recschema.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	var records []recschema.Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string", ErrParse)
		}

		payload, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		records = append(records, recschema.Record{ID: key, Payload: payload})
	}

	// Consume the closing brace, then require EOF: json.Decoder stops at
	// the end of the first value, but a document with trailing content is
	// not valid JSON text.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}

	return records, nil
}

// decodeValue decodes the next value from the token stream. Objects become
// ordered *recschema.Object values at every depth, arrays become []any with
// their elements decoded recursively, and scalars pass through as the
// decoder's token types (string, json.Number, bool, nil).
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch d {
	case '{':
		obj := recschema.NewObject()
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: object key is not a string", ErrParse)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		if _, err := dec.Token(); err != nil { // closing brace
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil { // closing bracket
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return arr, nil
	}
	return nil, fmt.Errorf("%w: unexpected delimiter %v", ErrParse, d)
}
