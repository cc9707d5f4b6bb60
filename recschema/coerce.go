package recschema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CoerceValue converts a raw decoded JSON value into its storable scalar
// form and reports the column kind it implies.
//
// Numbers arrive as [json.Number] when the decoder runs in UseNumber mode:
// integer literals become int64 (Bigint), other numeric literals become
// float64 (Double), and literals that fit neither (e.g. out-of-range
// exponents) keep their text, typed Text. Booleans are never integers;
// they serialize to "true"/"false" like any other structured value.
func CoerceValue(v any) (any, Kind) {
	switch v := v.(type) {
	case nil:
		// Type unknown; a column observed only as null stays Text.
		return nil, Text
	case json.Number:
		if n, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return n, Bigint
		}
		if f, err := strconv.ParseFloat(string(v), 64); err == nil {
			return f, Double
		}
		return string(v), Text
	case int:
		return int64(v), Bigint
	case int64:
		return v, Bigint
	case float64:
		return v, Double
	case string:
		return v, Text
	}

	// Everything else (booleans, slices, nested objects) becomes a JSON
	// string. A value that cannot be encoded keeps a plain-text rendering.
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v), Text
	}
	return string(b), Text
}
