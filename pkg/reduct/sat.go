package reduct

import (
	"github.com/crillab/gophersat/bf"
	"github.com/sirupsen/logrus"

	"github.com/johnHostetter/rough-theory/pkg/api"
)

// findSAT encodes the discernibility function as a boolean formula, one
// OR clause per matrix entry, and reads a cover off a satisfying model.
// The model is an arbitrary hitting set, so the shared cleanup pass
// still has to shrink it to a minimal one. An unsatisfiable formula
// would mean an entry with no attributes at all, which the matrix build
// rules out.
func findSAT(p *problem) ([]bool, error) {
	if len(p.entries) == 0 {
		return make([]bool, len(p.attributes)), nil
	}

	clauses := make([]bf.Formula, 0, len(p.entries))
	for _, entry := range p.entries {
		ors := make([]bf.Formula, 0, len(entry))
		for _, attribute := range entry {
			ors = append(ors, bf.Var(p.attributes[attribute]))
		}
		clauses = append(clauses, bf.Or(ors...))
	}

	model := bf.Solve(bf.And(clauses...))
	if model == nil {
		return nil, &api.NoReductExistsError{Attributes: p.attributes, Pair: p.witnesses[0]}
	}
	logrus.Debugf("Discernibility function satisfiable, model over %d variables.", len(model))

	member := make([]bool, len(p.attributes))
	var chosen []int
	for i, name := range p.attributes {
		if model[name] {
			member[i] = true
			chosen = append(chosen, i)
		}
	}
	cleanup(member, chosen, p.entries)
	return member, nil
}
