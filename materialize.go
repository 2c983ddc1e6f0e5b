package deepjson

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// reconstruct deserializes the mutated document bytes into the original
// static type. This is the single point where schema mismatches surface:
// the decoder rejects object keys that T has no field for, and leaf values
// whose shape is incompatible with the expected field type. Navigation and
// mutation never consult the schema.
func reconstruct[T any](data []byte) (T, error) {
	var out T
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return out, nil
}
