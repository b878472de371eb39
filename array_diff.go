package jsondiffpatch

import (
	"fmt"
	"strconv"

	"github.com/agentflare-ai/jsondiffpatch/internal/lcs"
)

// diffArray implements spec.md §4.3: trim the common head and tail, run
// the LCS engine over the remaining middle, then assemble the keyed array
// delta object in the documented order (edits/moves, then adds, then
// removes).
func diffArray(path []string, left, right []any, ro resolvedOptions) (any, error) {
	if DeepEqual(left, right) {
		return nil, nil
	}

	bound := min(len(left), len(right))
	head := 0
	for head < bound && DeepEqual(left[head], right[head]) {
		head++
	}
	tailBound := bound - head
	tail := 0
	for tail < tailBound && DeepEqual(left[len(left)-1-tail], right[len(right)-1-tail]) {
		tail++
	}

	midLeft := left[head : len(left)-tail]
	midRight := right[head : len(right)-tail]

	leftTokens, err := canonicalTokens(midLeft)
	if err != nil {
		return nil, fmt.Errorf("jsondiffpatch: tokenizing array for diff: %w", err)
	}
	rightTokens, err := canonicalTokens(midRight)
	if err != nil {
		return nil, fmt.Errorf("jsondiffpatch: tokenizing array for diff: %w", err)
	}
	equal := func(i, j int) bool { return leftTokens[i] == rightTokens[j] }
	result := lcs.Compute(len(midLeft), len(midRight), equal, head)

	delta := map[string]any{"_t": "a"}

	ops := make([]lcs.Pair, 0, len(result.ToDiff)+len(result.ToMove))
	ops = append(ops, result.ToDiff...)
	ops = append(ops, result.ToMove...)

	// spec.md §4.3 step 6: whether a pair is an in-place edit or a move is
	// decided by li == ri, not by which list (toDiff vs toMove) it came
	// from — a toDiff pair can have li != ri (the leftover zip pairs
	// ascending left with ascending right regardless of position).
	for _, op := range ops {
		elemPath := append(append([]string{}, path...), strconv.Itoa(op.Right))
		if ro.excluded(elemPath) {
			continue
		}
		child, err := diffValue(elemPath, left[op.Left], right[op.Right], ro)
		if err != nil {
			return nil, err
		}
		if op.Left == op.Right {
			if child != nil {
				delta[strconv.Itoa(op.Right)] = child
			}
			continue
		}
		nested := child
		if nested == nil {
			nested = ""
		}
		delta["_"+strconv.Itoa(op.Left)] = []any{nested, float64(op.Right), deltaOpMove}
	}

	for _, ri := range result.ToAdd {
		delta[strconv.Itoa(ri)] = []any{right[ri]}
	}
	for _, li := range result.ToRemove {
		delta["_"+strconv.Itoa(li)] = []any{left[li], deltaOpDelete, deltaOpDelete}
	}

	return delta, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
