// Package fdr holds the finite-domain representation (FDR) data model the
// rest of this module searches over: variables with finite domains, facts
// as (variable, value) pairs, operators with conjunctive preconditions and
// unconditional effects, and a Task tying all of it together with an
// initial state and a hard/soft goal partition.
//
// fdr is deliberately a data model, not a parser: building a Task from an
// on-disk PDDL/SAS file is an external collaborator's job. LoadTaskYAML
// (yaml.go) is the thin YAML loader used by the CLI and fixtures; it
// parses bytes the caller has already read.
// Every exported type here is a plain, comparable-where-possible Go value;
// nothing in this package touches the filesystem or blocks.
package fdr
