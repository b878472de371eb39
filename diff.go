package jsondiffpatch

import (
	"fmt"
	"sort"
)

const (
	deltaOpDelete   = float64(0)
	deltaOpTextDiff = float64(2)
	deltaOpMove     = float64(3)
)

// Diff computes the delta that transforms left into right. It returns nil
// if left and right are the same JSON value. The returned delta never
// aliases left or right.
//
// Diff recurses once per level of JSON nesting and does not convert that
// recursion to an explicit stack, so extremely deep documents consume
// goroutine stack proportional to their nesting depth.
func Diff(left, right any, opts ...Option) (any, error) {
	ro := resolve(opts)
	delta, err := diffValue(nil, left, right, ro)
	if err != nil || delta == nil {
		return delta, err
	}
	cloned, err := deepCopyJSON(delta)
	if err != nil {
		return nil, fmt.Errorf("jsondiffpatch: cloning delta: %w", err)
	}
	return cloned, nil
}

// diffValue implements spec.md §4.5: object/object recurses property-wise,
// array/array invokes the array differ, anything else is deepEqual-or-
// replace. path tracks the current location for excludePaths matching.
func diffValue(path []string, left, right any, ro resolvedOptions) (any, error) {
	if !ro.strictNullHandling {
		if left == nil {
			left = ""
		}
		if right == nil {
			right = ""
		}
	}

	lo, lIsObj := left.(map[string]any)
	ro2, rIsObj := right.(map[string]any)
	if lIsObj && rIsObj {
		return diffObject(path, lo, ro2, ro)
	}

	la, lIsArr := left.([]any)
	ra, rIsArr := right.([]any)
	if lIsArr && rIsArr {
		if ro.arrayMode == Simple {
			if DeepEqual(left, right) {
				return nil, nil
			}
			return []any{left, right}, nil
		}
		return diffArray(path, la, ra, ro)
	}

	if DeepEqual(left, right) {
		return nil, nil
	}
	return []any{left, right}, nil
}

// diffObject implements spec.md §4.4, grounded in the teacher's
// compareObjects: a single deterministic pass over the union of key sets.
func diffObject(path []string, left, right map[string]any, ro resolvedOptions) (any, error) {
	keys := make(map[string]struct{}, len(left)+len(right))
	for k := range left {
		keys[k] = struct{}{}
	}
	for k := range right {
		keys[k] = struct{}{}
	}
	sortedKeys := make([]string, 0, len(keys))
	for k := range keys {
		sortedKeys = append(sortedKeys, k)
	}
	sort.Strings(sortedKeys)

	delta := make(map[string]any)
	for _, k := range sortedKeys {
		childPath := append(append([]string{}, path...), k)
		lv, lok := left[k]
		rv, rok := right[k]

		switch {
		case lok && rok:
			if ro.excluded(childPath) {
				continue
			}
			child, err := diffValue(childPath, lv, rv, ro)
			if err != nil {
				return nil, err
			}
			if child != nil {
				delta[k] = child
			}
		case lok && !rok:
			if ro.excluded(childPath) || ro.behaviors.has(IgnoreMissingProperties) {
				continue
			}
			delta[k] = []any{lv, deltaOpDelete, deltaOpDelete}
		case !lok && rok:
			if ro.excluded(childPath) || ro.behaviors.has(IgnoreNewProperties) {
				continue
			}
			delta[k] = []any{rv}
		}
	}

	if len(delta) == 0 {
		return nil, nil
	}
	return delta, nil
}
