package model

import "encoding/json"

// MergeInto applies a shallow JSON merge of patch onto dst: top-level keys
// from patch overwrite the corresponding fields of dst, and nested objects
// are replaced wholesale rather than deep-merged. A patch value that cannot
// be decoded into the destination field's type yields an error and leaves
// dst unchanged.
func MergeInto[T any](dst *T, patch map[string]any) error {
	base, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	merged := map[string]any{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return err
	}
	for k, v := range patch {
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	var next T
	if err := json.Unmarshal(out, &next); err != nil {
		return err
	}
	*dst = next
	return nil
}
