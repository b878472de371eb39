package jsondiffpatch

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Patch applies delta to left and returns the resulting right-side value.
// left is never mutated; the applier clones before mutating, matching
// spec.md §3's "a delta never mutates its source" invariant.
func Patch(left, delta any) (any, error) {
	cloned, err := deepCopyJSON(left)
	if err != nil {
		return nil, fmt.Errorf("jsondiffpatch: cloning left before patch: %w", err)
	}
	return applyPatch(cloned, delta)
}

func applyPatch(left, delta any) (any, error) {
	if delta == nil {
		return left, nil
	}
	if s, ok := delta.(string); ok && s == "" {
		return left, nil
	}

	switch d := delta.(type) {
	case []any:
		return applyScalarPatch(d)
	case map[string]any:
		if arr, ok := left.([]any); ok {
			if t, hasT := d["_t"]; hasT && t == "a" {
				return applyArrayPatch(arr, d)
			}
		}
		return applyObjectPatch(left, d)
	default:
		return nil, fmt.Errorf("%w: unrecognized delta shape %T", ErrInvalidDelta, delta)
	}
}

// applyScalarPatch implements the array-form deltas of spec.md §3: add,
// replace, and delete. Any other operation code, including a move marker
// outside an array delta, is rejected.
func applyScalarPatch(d []any) (any, error) {
	switch len(d) {
	case 1:
		return d[0], nil
	case 2:
		return d[1], nil
	case 3:
		op, ok := toFloat(d[2])
		if !ok {
			return nil, fmt.Errorf("%w: non-numeric operation code %v", ErrInvalidDelta, d[2])
		}
		switch op {
		case deltaOpDelete:
			return nil, nil
		case deltaOpTextDiff:
			return nil, fmt.Errorf("%w: text diff is not supported", ErrUnsupportedOperation)
		default:
			return nil, fmt.Errorf("%w: unrecognized operation code %v", ErrInvalidDelta, op)
		}
	default:
		return nil, fmt.Errorf("%w: scalar delta has %d elements", ErrInvalidDelta, len(d))
	}
}

// applyObjectPatch implements spec.md §4.6's object-patch branch.
func applyObjectPatch(left any, delta map[string]any) (any, error) {
	target, _ := left.(map[string]any)
	if target == nil {
		target = make(map[string]any, len(delta))
	} else {
		target = shallowCloneMap(target)
	}

	for k, v := range delta {
		if entry, ok := v.([]any); ok && len(entry) == 3 {
			if op, isNum := toFloat(entry[2]); isNum && op == deltaOpDelete {
				delete(target, k)
				continue
			}
		}

		existing, present := target[k]
		if !present {
			added, err := applyPatch(nil, v)
			if err != nil {
				return nil, err
			}
			target[k] = added
			continue
		}
		patched, err := applyPatch(existing, v)
		if err != nil {
			return nil, err
		}
		target[k] = patched
	}

	return target, nil
}

// applyArrayPatch implements spec.md §4.6's array-patch branch: partition
// into removes/inserts/modifies, then execute removes (descending), inserts
// (ascending), and modifies, in that order. A moved element's value is
// taken from left while partitioning, before any removal shifts indices.
func applyArrayPatch(left []any, delta map[string]any) (any, error) {
	result := append([]any(nil), left...)

	var toRemove []int
	type insertion struct {
		index int
		value any
	}
	var toInsert []insertion
	type modification struct {
		index int
		delta any
	}
	var toModify []modification

	for k, v := range delta {
		if k == "_t" {
			continue
		}
		entry, isArr := v.([]any)

		if !strings.HasPrefix(k, "_") {
			if isArr && len(entry) == 3 {
				return nil, fmt.Errorf("%w: right-side key %q carries a 3-element array delta", ErrInvalidDelta, k)
			}
			idx, err := parseIndex(k)
			if err != nil {
				return nil, err
			}
			if isArr && len(entry) == 1 {
				toInsert = append(toInsert, insertion{index: idx, value: entry[0]})
				continue
			}
			toModify = append(toModify, modification{index: idx, delta: v})
			continue
		}

		leftIdx, err := parseIndex(k[1:])
		if err != nil {
			return nil, err
		}
		if !isArr || len(entry) != 3 {
			return nil, fmt.Errorf("%w: left-side key %q must carry a delete or move payload", ErrInvalidDelta, k)
		}
		op, isNum := toFloat(entry[2])
		if !isNum {
			return nil, fmt.Errorf("%w: non-numeric operation code for key %q", ErrInvalidDelta, k)
		}
		switch op {
		case deltaOpDelete:
			toRemove = append(toRemove, leftIdx)
		case deltaOpMove:
			newIdx, ok := toFloat(entry[1])
			if !ok {
				return nil, fmt.Errorf("%w: non-numeric move destination for key %q", ErrInvalidDelta, k)
			}
			if leftIdx < 0 || leftIdx >= len(left) {
				return nil, fmt.Errorf("%w: move source index %d out of range", ErrInvalidDelta, leftIdx)
			}
			moved, cerr := deepCopyJSON(left[leftIdx])
			if cerr != nil {
				return nil, cerr
			}
			patched, perr := applyPatch(moved, entry[0])
			if perr != nil {
				return nil, perr
			}
			toRemove = append(toRemove, leftIdx)
			toInsert = append(toInsert, insertion{index: int(newIdx), value: patched})
		case deltaOpTextDiff:
			return nil, fmt.Errorf("%w: text diff is not supported", ErrUnsupportedOperation)
		default:
			return nil, fmt.Errorf("%w: unrecognized operation code %v for key %q", ErrInvalidDelta, op, k)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(toRemove)))
	for _, idx := range toRemove {
		if idx < 0 || idx >= len(result) {
			return nil, fmt.Errorf("%w: remove index %d out of range", ErrInvalidDelta, idx)
		}
		result = append(result[:idx], result[idx+1:]...)
	}

	sort.Slice(toInsert, func(i, j int) bool { return toInsert[i].index < toInsert[j].index })
	for _, ins := range toInsert {
		if ins.index < 0 || ins.index > len(result) {
			return nil, fmt.Errorf("%w: insert index %d out of range", ErrInvalidDelta, ins.index)
		}
		result = append(result, nil)
		copy(result[ins.index+1:], result[ins.index:])
		result[ins.index] = ins.value
	}

	for _, mod := range toModify {
		if mod.index < 0 || mod.index >= len(result) {
			return nil, fmt.Errorf("%w: modify index %d out of range", ErrInvalidDelta, mod.index)
		}
		patched, err := applyPatch(result[mod.index], mod.delta)
		if err != nil {
			return nil, err
		}
		result[mod.index] = patched
	}

	return result, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric array delta key %q", ErrInvalidDelta, s)
	}
	return n, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func shallowCloneMap(m map[string]any) map[string]any {
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// deepCopyJSON round-trips through encoding/json to produce a value that
// shares no structure with v, the same technique the teacher's
// deepCopyAny uses.
func deepCopyJSON(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
