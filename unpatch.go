package jsondiffpatch

import (
	"fmt"
	"sort"
)

// Unpatch applies delta to right in reverse and returns the left-side value
// it was produced from. right is never mutated.
func Unpatch(right, delta any) (any, error) {
	cloned, err := deepCopyJSON(right)
	if err != nil {
		return nil, fmt.Errorf("jsondiffpatch: cloning right before unpatch: %w", err)
	}
	return applyUnpatch(cloned, delta)
}

func applyUnpatch(right, delta any) (any, error) {
	if delta == nil {
		return right, nil
	}
	if s, ok := delta.(string); ok && s == "" {
		return right, nil
	}

	switch d := delta.(type) {
	case []any:
		return applyScalarUnpatch(d)
	case map[string]any:
		if arr, ok := right.([]any); ok {
			if t, hasT := d["_t"]; hasT && t == "a" {
				return applyArrayUnpatch(arr, d)
			}
		}
		return applyObjectUnpatch(right, d)
	default:
		return nil, fmt.Errorf("%w: unrecognized delta shape %T", ErrInvalidDelta, delta)
	}
}

// applyScalarUnpatch mirrors applyScalarPatch under reversal: an add
// becomes a deletion, a replace yields the old value, a delete restores
// the old value, and text diff is still rejected.
func applyScalarUnpatch(d []any) (any, error) {
	switch len(d) {
	case 1:
		return nil, nil
	case 2:
		return d[0], nil
	case 3:
		op, ok := toFloat(d[2])
		if !ok {
			return nil, fmt.Errorf("%w: non-numeric operation code %v", ErrInvalidDelta, d[2])
		}
		switch op {
		case deltaOpDelete:
			return d[0], nil
		case deltaOpTextDiff:
			return nil, fmt.Errorf("%w: text diff is not supported", ErrUnsupportedOperation)
		default:
			return nil, fmt.Errorf("%w: unrecognized operation code %v", ErrInvalidDelta, op)
		}
	default:
		return nil, fmt.Errorf("%w: scalar delta has %d elements", ErrInvalidDelta, len(d))
	}
}

// applyObjectUnpatch mirrors applyObjectPatch: an add encoding ([v]) is
// removed, a missing property is restored via unpatch(nil, v), and
// everything else recurses.
func applyObjectUnpatch(right any, delta map[string]any) (any, error) {
	target, _ := right.(map[string]any)
	if target == nil {
		target = make(map[string]any, len(delta))
	} else {
		target = shallowCloneMap(target)
	}

	for k, v := range delta {
		if entry, ok := v.([]any); ok && len(entry) == 1 {
			delete(target, k)
			continue
		}

		existing, present := target[k]
		if !present {
			restored, err := applyUnpatch(nil, v)
			if err != nil {
				return nil, err
			}
			target[k] = restored
			continue
		}
		restored, err := applyUnpatch(existing, v)
		if err != nil {
			return nil, err
		}
		target[k] = restored
	}

	return target, nil
}

// applyArrayUnpatch implements spec.md §4.7: deletes-from-original become
// inserts, moves become "remove the element currently at newIdx and
// insert its clone back at the left index", adds become removes, and
// modifies recurse — executed modifies-first, then removes descending,
// then inserts ascending, since modifies reference indices in the
// right-side (post-patch) space that structural changes would disturb.
func applyArrayUnpatch(right []any, delta map[string]any) (any, error) {
	result := append([]any(nil), right...)

	type insertion struct {
		index int
		value any
	}
	var toInsert []insertion
	var toRemove []int
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

		if k[0] == '_' {
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
				toInsert = append(toInsert, insertion{index: leftIdx, value: entry[0]})
			case deltaOpMove:
				newIdxF, ok := toFloat(entry[1])
				if !ok {
					return nil, fmt.Errorf("%w: non-numeric move destination for key %q", ErrInvalidDelta, k)
				}
				newIdx := int(newIdxF)
				if newIdx < 0 || newIdx >= len(right) {
					return nil, fmt.Errorf("%w: move destination index %d out of range", ErrInvalidDelta, newIdx)
				}
				// The element at right[newIdx] is left[leftIdx] after its
				// own nested delta was applied; unpatch it now, while
				// right's original indices are still intact, to recover
				// the pre-patch value that belongs back at leftIdx.
				restored, uerr := applyUnpatch(right[newIdx], entry[0])
				if uerr != nil {
					return nil, uerr
				}
				toRemove = append(toRemove, newIdx)
				toInsert = append(toInsert, insertion{index: leftIdx, value: restored})
			case deltaOpTextDiff:
				return nil, fmt.Errorf("%w: text diff is not supported", ErrUnsupportedOperation)
			default:
				return nil, fmt.Errorf("%w: unrecognized operation code %v for key %q", ErrInvalidDelta, op, k)
			}
			continue
		}

		idx, err := parseIndex(k)
		if err != nil {
			return nil, err
		}
		if isArr && len(entry) == 1 {
			toRemove = append(toRemove, idx)
			continue
		}
		toModify = append(toModify, modification{index: idx, delta: v})
	}

	sort.Slice(toModify, func(i, j int) bool { return toModify[i].index < toModify[j].index })
	for _, mod := range toModify {
		if mod.index < 0 || mod.index >= len(result) {
			return nil, fmt.Errorf("%w: modify index %d out of range", ErrInvalidDelta, mod.index)
		}
		restored, err := applyUnpatch(result[mod.index], mod.delta)
		if err != nil {
			return nil, err
		}
		result[mod.index] = restored
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

	return result, nil
}
