package relax

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mugs-search/fdr"
)

// docNode is one lattice entry: a task document (the same shape
// fdr.LoadTaskYAML accepts) plus its lower-cover/upper-cover neighbor
// indices into the enclosing document's node list (spec §6: "optional
// relaxed-task definitions ... each naming the task, ... lower-cover and
// upper-cover neighbor ids").
type docNode struct {
	Name       string    `yaml:"name"`
	Task       yaml.Node `yaml:"task"`
	LowerCover []int     `yaml:"lower_cover"`
	UpperCover []int     `yaml:"upper_cover"`
}

type docLattice struct {
	Nodes []docNode `yaml:"nodes"`
}

// LoadLatticeYAML parses a relaxed-task lattice document into a Lattice.
// Each node's task sub-document is re-encoded and handed to
// fdr.LoadTaskYAML, so the lattice format never duplicates task-validation
// logic.
func LoadLatticeYAML(raw []byte) (*Lattice, error) {
	var doc docLattice
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("relax: parsing lattice document: %w", err)
	}

	nodes := make([]Node, len(doc.Nodes))
	for i, n := range doc.Nodes {
		taskBytes, err := yaml.Marshal(&n.Task)
		if err != nil {
			return nil, fmt.Errorf("relax: re-encoding task %q: %w", n.Name, err)
		}
		task, err := fdr.LoadTaskYAML(taskBytes)
		if err != nil {
			return nil, fmt.Errorf("relax: loading task %q: %w", n.Name, err)
		}
		if n.Name != "" {
			task.Name = n.Name
		}

		lower := make([]NodeID, len(n.LowerCover))
		for j, id := range n.LowerCover {
			lower[j] = NodeID(id)
		}
		upper := make([]NodeID, len(n.UpperCover))
		for j, id := range n.UpperCover {
			upper[j] = NodeID(id)
		}
		nodes[i] = Node{Name: task.Name, Task: task, LowerCover: lower, UpperCover: upper}
	}
	return &Lattice{Nodes: nodes}, nil
}
