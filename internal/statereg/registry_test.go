package statereg

import (
	"testing"

	"github.com/katalvlaran/mugs-search/fdr"
)

func TestIntern_SameValuesShareID(t *testing.T) {
	r := New()
	a := r.Intern(&fdr.State{Values: []fdr.Value{0, 1}})
	b := r.Intern(&fdr.State{Values: []fdr.Value{0, 1}})
	if a != b {
		t.Fatalf("expected interning an equal state to return the same id, got %d and %d", a, b)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 distinct state, got %d", r.Len())
	}
}

func TestIntern_DifferentValuesGetDifferentIDs(t *testing.T) {
	r := New()
	a := r.Intern(&fdr.State{Values: []fdr.Value{0, 1}})
	b := r.Intern(&fdr.State{Values: []fdr.Value{1, 0}})
	if a == b {
		t.Fatal("expected distinct states to receive distinct ids")
	}
}

func TestIntern_ClonesRatherThanAliases(t *testing.T) {
	r := New()
	s := &fdr.State{Values: []fdr.Value{0}}
	id := r.Intern(s)
	s.Values[0] = 1
	if r.State(id).Values[0] != 0 {
		t.Fatal("expected the registry's copy to be unaffected by later mutation of the caller's state")
	}
}

func TestLookup_ReportsMissingState(t *testing.T) {
	r := New()
	r.Intern(&fdr.State{Values: []fdr.Value{0}})
	if _, ok := r.Lookup(&fdr.State{Values: []fdr.Value{1}}); ok {
		t.Fatal("expected Lookup to report no id for a state never interned")
	}
}

func TestPath_ReconstructsApplicationOrder(t *testing.T) {
	r := New()
	s0 := r.Intern(&fdr.State{Values: []fdr.Value{0}})
	s1 := r.Intern(&fdr.State{Values: []fdr.Value{1}})
	s2 := r.Intern(&fdr.State{Values: []fdr.Value{2}})

	r.SetParent(s1, s0, 7)
	r.SetParent(s2, s1, 9)

	path := r.Path(s2)
	if len(path) != 2 || path[0] != 7 || path[1] != 9 {
		t.Fatalf("expected path [7 9], got %v", path)
	}
}

func TestPath_EmptyForInitialState(t *testing.T) {
	r := New()
	s0 := r.Intern(&fdr.State{Values: []fdr.Value{0}})
	if path := r.Path(s0); len(path) != 0 {
		t.Fatalf("expected no operators for a state with no recorded parent, got %v", path)
	}
}
