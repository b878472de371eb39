// Package lcs computes the longest common subsequence of two JSON element
// sequences under deep equality, classifying leftover indices into adds,
// removes, moves, and in-place edits for the array delta engine.
//
// The matrix-fill-then-backtrack shape follows the classical LCS DP
// algorithm (see golcs's table-based approach), but the backtrack tie-break
// and the move/edit classification passes that follow it are specific to
// the jsondiffpatch array delta convention and have no golcs analogue.
package lcs

import "sort"

// Pair is a (left, right) index pair, already rebased by the caller's head
// offset.
type Pair struct {
	Left  int
	Right int
}

// Result is the classified outcome of comparing two element sequences.
type Result struct {
	// LCS holds the longest common subsequence pairs in ascending order.
	LCS []Pair
	// ToRemove holds left indices with no counterpart in right, ascending.
	ToRemove []int
	// ToAdd holds right indices with no counterpart in left, ascending.
	ToAdd []int
	// ToMove holds (left, right) pairs where a leftover left element is
	// deeply equal to a leftover right element and should be relocated.
	ToMove []Pair
	// ToDiff holds (left, right) pairs of leftover elements positionally
	// re-paired for recursive in-place modification.
	ToDiff []Pair
}

// Equal reports whether the elements at the given indices of left and
// right are the same JSON value. Implementations must be a proper
// equivalence relation (reflexive, symmetric, transitive).
type Equal func(leftIndex, rightIndex int) bool

// Compute runs the LCS engine over left[0:len(left)] and right[0:len(right)],
// rebasing every returned index by headOffset so callers can invoke it on a
// head/tail-trimmed middle slice and still get indices into the original
// arrays.
func Compute(leftLen, rightLen int, equal Equal, headOffset int) Result {
	if leftLen == 0 && rightLen == 0 {
		return Result{}
	}
	if leftLen == 0 {
		return Result{ToAdd: rangeInts(rightLen, headOffset)}
	}
	if rightLen == 0 {
		return Result{ToRemove: rangeInts(leftLen, headOffset)}
	}

	m, n := leftLen, rightLen

	// E[i][j] caches equal(i,j); each pair is evaluated once.
	e := make([][]bool, m)
	for i := range e {
		e[i] = make([]bool, n)
		for j := range e[i] {
			e[i][j] = equal(i, j)
		}
	}

	// M[i+1][j+1] is the LCS length of left[:i+1] and right[:j+1].
	mtx := make([][]int, m+1)
	for i := range mtx {
		mtx[i] = make([]int, n+1)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if e[i][j] {
				mtx[i+1][j+1] = mtx[i][j] + 1
			} else if mtx[i][j+1] >= mtx[i+1][j] {
				mtx[i+1][j+1] = mtx[i][j+1]
			} else {
				mtx[i+1][j+1] = mtx[i+1][j]
			}
		}
	}

	pairedLeft := make([]bool, m)
	pairedRight := make([]bool, n)
	var lcsPairs []Pair

	// Iterative backtrack from (m-1,n-1) toward (0,0); no recursion, so
	// arbitrarily large arrays never risk a stack overflow here.
	i, j := m-1, n-1
	for i >= 0 && j >= 0 {
		if e[i][j] {
			lcsPairs = append(lcsPairs, Pair{Left: i + headOffset, Right: j + headOffset})
			pairedLeft[i] = true
			pairedRight[j] = true
			i--
			j--
			continue
		}
		// Discard the index on the axis with the larger LCS length; ties
		// go to the right side (discard j), giving the favor-last-on-left
		// property the array delta's worked examples rely on.
		if mtx[i][j+1] > mtx[i+1][j] {
			i--
		} else {
			j--
		}
	}
	for k := 0; k < len(lcsPairs)/2; k++ {
		lcsPairs[k], lcsPairs[len(lcsPairs)-1-k] = lcsPairs[len(lcsPairs)-1-k], lcsPairs[k]
	}

	var leftoverLeft, leftoverRight []int
	for idx, paired := range pairedLeft {
		if !paired {
			leftoverLeft = append(leftoverLeft, idx)
		}
	}
	for idx, paired := range pairedRight {
		if !paired {
			leftoverRight = append(leftoverRight, idx)
		}
	}

	var toMove []Pair
	remainingRight := leftoverRight
	var nextLeft []int
	for _, li := range leftoverLeft {
		matched := -1
		for k, ri := range remainingRight {
			if e[li][ri] {
				matched = k
				break
			}
		}
		if matched == -1 {
			nextLeft = append(nextLeft, li)
			continue
		}
		toMove = append(toMove, Pair{Left: li + headOffset, Right: remainingRight[matched] + headOffset})
		remainingRight = append(remainingRight[:matched], remainingRight[matched+1:]...)
	}
	leftoverLeft = nextLeft
	leftoverRight = remainingRight

	sort.Ints(leftoverLeft)
	sort.Ints(leftoverRight)

	var toDiff []Pair
	zipped := len(leftoverLeft)
	if len(leftoverRight) < zipped {
		zipped = len(leftoverRight)
	}
	for k := 0; k < zipped; k++ {
		toDiff = append(toDiff, Pair{Left: leftoverLeft[k] + headOffset, Right: leftoverRight[k] + headOffset})
	}
	leftoverLeft = leftoverLeft[zipped:]
	leftoverRight = leftoverRight[zipped:]

	return Result{
		LCS:      lcsPairs,
		ToRemove: addOffset(leftoverLeft, headOffset),
		ToAdd:    addOffset(leftoverRight, headOffset),
		ToMove:   toMove,
		ToDiff:   toDiff,
	}
}

func rangeInts(n, offset int) []int {
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + offset
	}
	return out
}

func addOffset(indices []int, offset int) []int {
	if len(indices) == 0 {
		return nil
	}
	out := make([]int, len(indices))
	for i, v := range indices {
		out[i] = v + offset
	}
	return out
}
