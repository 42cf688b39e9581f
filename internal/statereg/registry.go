package statereg

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/mugs-search/fdr"
)

// StateID is a dense, zero-based index into a Registry; it is what the
// open list, closed map, and parent-pointer table of spec §4.E actually
// store instead of a full fdr.State.
type StateID uint32

// key canonicalizes a state into a comparable map key. States are total
// assignments over a fixed variable order (fdr.State), so a delimited
// decimal encoding round-trips without ambiguity and is cheap enough for
// the search driver's hot insert path.
func key(s *fdr.State) string {
	var b strings.Builder
	for i, v := range s.Values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

// Registry interns fdr.States into StateIDs. The zero value is ready to
// use.
type Registry struct {
	byKey   map[string]StateID
	states  []fdr.State
	parents []StateID // parents[id] is the id of the state that expanded id
	ops     []fdr.OperatorID
	hasPrnt []bool
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byKey: make(map[string]StateID)}
}

// Intern returns the StateID for s, assigning a new one (and storing an
// independent clone of s) the first time a given state is seen.
func (r *Registry) Intern(s *fdr.State) StateID {
	k := key(s)
	if id, ok := r.byKey[k]; ok {
		return id
	}
	if r.byKey == nil {
		r.byKey = make(map[string]StateID)
	}
	id := StateID(len(r.states))
	r.byKey[k] = id
	r.states = append(r.states, s.Clone())
	r.parents = append(r.parents, 0)
	r.ops = append(r.ops, 0)
	r.hasPrnt = append(r.hasPrnt, false)
	return id
}

// Lookup returns the StateID already assigned to s, if any.
func (r *Registry) Lookup(s *fdr.State) (StateID, bool) {
	id, ok := r.byKey[key(s)]
	return id, ok
}

// State returns the state interned under id. Panics if id is out of range,
// matching the registry's role as an internal, driver-owned data structure.
func (r *Registry) State(id StateID) *fdr.State {
	return &r.states[id]
}

// SetParent records that id was reached by applying op from parent. Used to
// walk parent pointers back to the initial state when a goal is found
// (spec §4.E step 3: "emit a plan by walking parent pointers").
func (r *Registry) SetParent(id, parent StateID, op fdr.OperatorID) {
	r.parents[id] = parent
	r.ops[id] = op
	r.hasPrnt[id] = true
}

// Path reconstructs the operator sequence from the initial state to id, in
// application order.
func (r *Registry) Path(id StateID) []fdr.OperatorID {
	var rev []fdr.OperatorID
	for r.hasPrnt[id] {
		rev = append(rev, r.ops[id])
		id = r.parents[id]
	}
	out := make([]fdr.OperatorID, len(rev))
	for i, op := range rev {
		out[len(rev)-1-i] = op
	}
	return out
}

// Len returns the number of distinct states interned so far.
func (r *Registry) Len() int { return len(r.states) }
