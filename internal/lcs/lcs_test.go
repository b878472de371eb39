package lcs

import (
	"reflect"
	"testing"
)

func equalOf(left, right []int) Equal {
	return func(i, j int) bool { return left[i] == right[j] }
}

func TestCompute_TieBreakFavorsLastOnLeft(t *testing.T) {
	left := []int{1, 1, 2, 3, 4, 1, 1}
	right := []int{1, 2, 3, 1}

	got := Compute(len(left), len(right), equalOf(left, right), 0)

	want := []Pair{{1, 0}, {2, 1}, {3, 2}, {6, 3}}
	if !reflect.DeepEqual(got.LCS, want) {
		t.Fatalf("LCS = %v, want %v", got.LCS, want)
	}
}

func TestCompute_MovesOnFullReversal(t *testing.T) {
	left := []int{1, 2, 3, 4}
	right := []int{4, 3, 2, 1}

	got := Compute(len(left), len(right), equalOf(left, right), 0)

	if want := []Pair{{3, 0}}; !reflect.DeepEqual(got.LCS, want) {
		t.Fatalf("LCS = %v, want %v", got.LCS, want)
	}
	want := []Pair{{0, 3}, {1, 2}, {2, 1}}
	if !reflect.DeepEqual(got.ToMove, want) {
		t.Fatalf("ToMove = %v, want %v", got.ToMove, want)
	}
	if len(got.ToRemove) != 0 || len(got.ToAdd) != 0 || len(got.ToDiff) != 0 {
		t.Fatalf("expected a pure move, got %+v", got)
	}
}

func TestCompute_HeadOffsetRebasesEveryIndex(t *testing.T) {
	left := []int{9, 1}
	right := []int{1, 9}

	got := Compute(len(left), len(right), equalOf(left, right), 5)

	for _, p := range got.LCS {
		if p.Left < 5 || p.Right < 5 {
			t.Fatalf("LCS pair %+v not rebased by head offset", p)
		}
	}
	for _, p := range got.ToMove {
		if p.Left < 5 || p.Right < 5 {
			t.Fatalf("move pair %+v not rebased by head offset", p)
		}
	}
}

func TestCompute_EmptySides(t *testing.T) {
	left := []int{1, 2, 3}
	var right []int

	got := Compute(len(left), len(right), equalOf(left, right), 0)
	want := []int{0, 1, 2}
	if !reflect.DeepEqual(got.ToRemove, want) {
		t.Fatalf("ToRemove = %v, want %v", got.ToRemove, want)
	}
	if len(got.LCS) != 0 || len(got.ToAdd) != 0 {
		t.Fatalf("expected only removes, got %+v", got)
	}

	got2 := Compute(len(right), len(left), equalOf(right, left), 0)
	if !reflect.DeepEqual(got2.ToAdd, want) {
		t.Fatalf("ToAdd = %v, want %v", got2.ToAdd, want)
	}
}

func TestCompute_EditPairsPositionalZip(t *testing.T) {
	// No shared elements at all: leftovers zip into edits up to the shorter
	// side, and the surplus right index becomes an add.
	left := []int{100, 101}
	right := []int{200, 201, 202}

	got := Compute(len(left), len(right), equalOf(left, right), 0)
	wantDiff := []Pair{{0, 0}, {1, 1}}
	if !reflect.DeepEqual(got.ToDiff, wantDiff) {
		t.Fatalf("ToDiff = %v, want %v", got.ToDiff, wantDiff)
	}
	if want := []int{2}; !reflect.DeepEqual(got.ToAdd, want) {
		t.Fatalf("ToAdd = %v, want %v", got.ToAdd, want)
	}
	if len(got.ToRemove) != 0 {
		t.Fatalf("expected no removes, got %v", got.ToRemove)
	}
}
