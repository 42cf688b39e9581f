package fdr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// docFact is the on-disk shape of a Fact: [variable index, value index].
type docFact [2]int

func (f docFact) toFact() Fact { return Fact{Var: VarID(f[0]), Val: Value(f[1])} }

// docOperator mirrors Operator for YAML decoding.
type docOperator struct {
	Name          string    `yaml:"name"`
	Preconditions []docFact `yaml:"pre"`
	Effects       []docFact `yaml:"effects"`
	Cost          int64     `yaml:"cost"`
}

// docMutex mirrors MutexPair for YAML decoding.
type docMutex struct {
	A docFact `yaml:"a"`
	B docFact `yaml:"b"`
}

// docVariable mirrors Variable for YAML decoding.
type docVariable struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// docTask is the abstract input task format of spec §6, rendered as YAML:
// variables with integer domains, operators with conjunctive preconditions
// and unconditional effects, an initial total state, and two ordered fact
// lists for hard and soft goals. This is not a PDDL/SAS parser — it is the
// minimal finite-domain document shape the CLI and fixtures load directly.
type docTask struct {
	Name      string        `yaml:"name"`
	Variables []docVariable `yaml:"variables"`
	Operators []docOperator `yaml:"operators"`
	Initial   []int         `yaml:"initial"`
	HardGoals []docFact     `yaml:"hard_goals"`
	SoftGoals []docFact     `yaml:"soft_goals"`
	Mutexes   []docMutex    `yaml:"mutexes"`
}

// LoadTaskYAML parses the abstract task document format from raw into a
// validated Task.
func LoadTaskYAML(raw []byte) (*Task, error) {
	var doc docTask
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("fdr: parsing task document: %w", err)
	}

	variables := make([]Variable, len(doc.Variables))
	for i, v := range doc.Variables {
		variables[i] = Variable{Name: v.Name, ValueNames: v.Values}
	}

	operators := make([]Operator, len(doc.Operators))
	for i, o := range doc.Operators {
		pre := make([]Fact, len(o.Preconditions))
		for j, f := range o.Preconditions {
			pre[j] = f.toFact()
		}
		eff := make([]Fact, len(o.Effects))
		for j, f := range o.Effects {
			eff[j] = f.toFact()
		}
		operators[i] = Operator{Name: o.Name, Preconditions: pre, Effects: eff, Cost: Cost(o.Cost)}
	}

	initial := State{Values: make([]Value, len(doc.Initial))}
	for i, v := range doc.Initial {
		initial.Values[i] = Value(v)
	}

	hard := make([]Fact, len(doc.HardGoals))
	for i, f := range doc.HardGoals {
		hard[i] = f.toFact()
	}
	soft := make([]Fact, len(doc.SoftGoals))
	for i, f := range doc.SoftGoals {
		soft[i] = f.toFact()
	}
	mutexes := make([]MutexPair, len(doc.Mutexes))
	for i, m := range doc.Mutexes {
		mutexes[i] = MutexPair{A: m.A.toFact(), B: m.B.toFact()}
	}

	return NewTask(doc.Name, variables, operators, initial, hard, soft, mutexes)
}
