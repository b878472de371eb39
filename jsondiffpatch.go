package jsondiffpatch

import (
	"encoding/json"
	"fmt"
)

// DiffString parses left and right as JSON text and returns the delta as
// JSON text, or "" if the two values are equal. An empty string on either
// side is treated as the JSON empty-string scalar, not as absence of input.
func DiffString(left, right string, opts ...Option) (string, error) {
	lv, err := decodeJSONText(left)
	if err != nil {
		return "", fmt.Errorf("jsondiffpatch: decoding left: %w", err)
	}
	rv, err := decodeJSONText(right)
	if err != nil {
		return "", fmt.Errorf("jsondiffpatch: decoding right: %w", err)
	}

	delta, err := Diff(lv, rv, opts...)
	if err != nil {
		return "", err
	}
	return encodeJSONText(delta)
}

// PatchString parses left and delta as JSON text, applies the patch, and
// returns the result as JSON text.
func PatchString(left, delta string) (string, error) {
	lv, err := decodeJSONText(left)
	if err != nil {
		return "", fmt.Errorf("jsondiffpatch: decoding left: %w", err)
	}
	dv, err := decodeJSONText(delta)
	if err != nil {
		return "", fmt.Errorf("jsondiffpatch: decoding delta: %w", err)
	}

	result, err := Patch(lv, dv)
	if err != nil {
		return "", err
	}
	return encodeJSONText(result)
}

// UnpatchString parses right and delta as JSON text, reverses the patch,
// and returns the recovered left-side value as JSON text.
func UnpatchString(right, delta string) (string, error) {
	rv, err := decodeJSONText(right)
	if err != nil {
		return "", fmt.Errorf("jsondiffpatch: decoding right: %w", err)
	}
	dv, err := decodeJSONText(delta)
	if err != nil {
		return "", fmt.Errorf("jsondiffpatch: decoding delta: %w", err)
	}

	result, err := Unpatch(rv, dv)
	if err != nil {
		return "", err
	}
	return encodeJSONText(result)
}

// decodeJSONText treats an empty string as the JSON empty-string scalar,
// matching diffValue's null-coercion convention rather than erroring on
// missing input.
func decodeJSONText(text string) (any, error) {
	if text == "" {
		return "", nil
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func encodeJSONText(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("jsondiffpatch: encoding result: %w", err)
	}
	return string(b), nil
}
