package fdr

// MaxSoftGoals is the widest soft-goal partition this module can represent:
// goalset.Subset is a fixed-width 64-bit machine word (spec §3: "w ≤ 64").
const MaxSoftGoals = 64

// Task bundles a finite-domain planning problem: variables, operators, an
// initial state, and a goal split into hard goals (must hold) and soft
// goals (may be dropped — the dimension this module searches subsets of).
// Mutexes are optional pairwise mutual-exclusion hints; nil is valid.
type Task struct {
	Name      string
	Variables []Variable
	Operators []Operator
	Initial   State
	HardGoals []Fact
	SoftGoals []Fact
	Mutexes   []MutexPair
}

// NewTask validates and returns a Task. It does not mutate its arguments.
//
// Validation performed (spec §3 invariants plus the obvious well-formedness
// checks a task reader would otherwise have caught):
//   - at least one variable;
//   - every fact referenced (initial state, goals, operator pre/effects)
//     names a variable and value in range;
//   - the initial state assigns every variable;
//   - no fact appears in both HardGoals and SoftGoals;
//   - len(SoftGoals) <= MaxSoftGoals;
//   - no operator declares a negative cost.
func NewTask(
	name string,
	variables []Variable,
	operators []Operator,
	initial State,
	hardGoals, softGoals []Fact,
	mutexes []MutexPair,
) (*Task, error) {
	if len(variables) == 0 {
		return nil, ErrNoVariables
	}
	if len(initial.Values) != len(variables) {
		return nil, ErrIncompleteInitialState
	}
	if len(softGoals) > MaxSoftGoals {
		return nil, ErrGoalTooWide
	}

	t := &Task{
		Name:      name,
		Variables: append([]Variable(nil), variables...),
		Operators: append([]Operator(nil), operators...),
		Initial:   initial.Clone(),
		HardGoals: append([]Fact(nil), hardGoals...),
		SoftGoals: append([]Fact(nil), softGoals...),
		Mutexes:   append([]MutexPair(nil), mutexes...),
	}

	if err := t.validateFacts(); err != nil {
		return nil, err
	}
	if err := t.validateGoalPartition(); err != nil {
		return nil, err
	}
	for i := range t.Operators {
		if t.Operators[i].Cost < 0 {
			return nil, ErrNegativeCost
		}
	}
	return t, nil
}

func (t *Task) validateFact(f Fact) error {
	if int(f.Var) < 0 || int(f.Var) >= len(t.Variables) {
		return ErrUnknownVariable
	}
	if int(f.Val) < 0 || int(f.Val) >= t.Variables[f.Var].DomainSize() {
		return ErrUnknownValue
	}
	return nil
}

func (t *Task) validateFacts() error {
	for i, v := range t.Initial.Values {
		if err := t.validateFact(Fact{Var: VarID(i), Val: v}); err != nil {
			return err
		}
	}
	for _, f := range t.HardGoals {
		if err := t.validateFact(f); err != nil {
			return err
		}
	}
	for _, f := range t.SoftGoals {
		if err := t.validateFact(f); err != nil {
			return err
		}
	}
	for _, op := range t.Operators {
		for _, f := range op.Preconditions {
			if err := t.validateFact(f); err != nil {
				return err
			}
		}
		for _, f := range op.Effects {
			if err := t.validateFact(f); err != nil {
				return err
			}
		}
	}
	for _, m := range t.Mutexes {
		if err := t.validateFact(m.A); err != nil {
			return err
		}
		if err := t.validateFact(m.B); err != nil {
			return err
		}
	}
	return nil
}

func (t *Task) validateGoalPartition() error {
	seen := make(map[Fact]bool, len(t.HardGoals))
	for _, f := range t.HardGoals {
		seen[f] = true
	}
	for _, f := range t.SoftGoals {
		if seen[f] {
			return ErrGoalOverlap
		}
	}
	return nil
}

// ApplicableOperators returns the ids of every operator whose precondition
// holds in s, in Task.Operators order.
func (t *Task) ApplicableOperators(s State) []OperatorID {
	out := make([]OperatorID, 0, 4)
	for i := range t.Operators {
		if t.Operators[i].Applicable(s) {
			out = append(out, OperatorID(i))
		}
	}
	return out
}

// AllGoals returns HardGoals followed by SoftGoals, the order §6 uses for
// "two ordered fact lists for hard and soft goals".
func (t *Task) AllGoals() []Fact {
	out := make([]Fact, 0, len(t.HardGoals)+len(t.SoftGoals))
	out = append(out, t.HardGoals...)
	out = append(out, t.SoftGoals...)
	return out
}
