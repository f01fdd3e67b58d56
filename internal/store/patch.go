package store

import "encoding/json"

// MergePatch shallow-merges a raw JSON object over an existing record,
// object-spread style: supplied fields win, including explicit nulls, and
// absent fields are retained. Nested values are replaced wholesale, never
// merged field by field.
func MergePatch[T any](existing T, patch []byte) (T, error) {
	base, err := json.Marshal(existing)
	if err != nil {
		return existing, err
	}
	var baseFields map[string]json.RawMessage
	if err := json.Unmarshal(base, &baseFields); err != nil {
		return existing, err
	}
	var patchFields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &patchFields); err != nil {
		return existing, err
	}
	for key, value := range patchFields {
		baseFields[key] = value
	}
	merged, err := json.Marshal(baseFields)
	if err != nil {
		return existing, err
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return existing, err
	}
	return out, nil
}
