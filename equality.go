package jsondiffpatch

import "encoding/json"

// DeepEqual reports whether a and b are the same JSON value: scalars
// compared by value, arrays element-wise in order, objects by equal key
// set with equal values per key regardless of key order.
func DeepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, exists := bv[k]
			if !exists || !DeepEqual(v, other) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// canonicalToken renders v as a minified JSON string with deterministic
// key order, used to accelerate the LCS engine's equality matrix: two
// elements are equal iff their tokens are equal. encoding/json already
// sorts map[string]any keys on marshal, so this agrees with DeepEqual
// without any extra bookkeeping.
func canonicalToken(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func canonicalTokens(values []any) ([]string, error) {
	tokens := make([]string, len(values))
	for i, v := range values {
		t, err := canonicalToken(v)
		if err != nil {
			return nil, err
		}
		tokens[i] = t
	}
	return tokens, nil
}
