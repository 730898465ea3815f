// Package table analyzes decision tables: the consistency of the rules
// an information system encodes, and their simplification down to
// per-object value cores and value reducts.
package table

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
	"github.com/johnHostetter/rough-theory/pkg/approx"
	"github.com/johnHostetter/rough-theory/pkg/discern"
	"github.com/johnHostetter/rough-theory/pkg/reduct"
)

// Analyzer inspects one system as a decision table.
type Analyzer struct {
	builder *discern.Builder
	approx  *approx.Analyzer
}

func NewAnalyzer(builder *discern.Builder) *Analyzer {
	return &Analyzer{
		builder: builder,
		approx:  approx.NewAnalyzer(builder.Engine()),
	}
}

// Decompose splits the objects into consistent rules, whose condition
// values determine their decision values, and inconsistent ones, which
// share condition values with an object of a different decision class.
func (a *Analyzer) Decompose(conditions, decisions []string) (consistent, inconsistent api.ObjectSet, err error) {
	consistent, err = a.approx.PositiveRegion(conditions, decisions)
	if err != nil {
		return nil, nil, err
	}
	inconsistent = a.builder.Engine().System().Universe().Subtract(consistent)
	return consistent, inconsistent, nil
}

// RemoveRedundant drops condition attributes which the decision
// attributes never need, keeping the positive region intact: the result
// is one relative reduct of the condition set, found greedily in
// attribute name order.
func (a *Analyzer) RemoveRedundant(conditions, decisions []string) ([]string, error) {
	remaining := slices.Clone(conditions)
	slices.Sort(remaining)
	remaining = slices.Compact(remaining)

	for _, attribute := range slices.Clone(remaining) {
		dispensable, err := a.approx.DispensableRelative(remaining, attribute, decisions)
		if err != nil {
			return nil, err
		}
		if dispensable {
			logrus.Debugf("Dropping redundant attribute %s.", attribute)
			i := slices.Index(remaining, attribute)
			remaining = slices.Delete(remaining, i, i+1)
		}
	}
	return remaining, nil
}

// Simplification holds the per-object outcome of table simplification.
// Objects whose value core is empty are absent from Cores.
type Simplification struct {
	// Attributes is the redundancy-free condition set the values refer to.
	Attributes []string
	// Cores maps object ids to the attributes no rule rewrite can drop.
	Cores map[string]api.Reduct
	// Reducts maps object ids to their minimal sufficient value sets.
	Reducts map[string][]api.Reduct
}

// Simplify reduces the decision table in two steps: first the condition
// set is freed of redundant attributes, then each object's rule is
// reduced to its value core and value reducts. An object's value reducts
// are the minimal hitting sets of the matrix entries involving it; its
// value core is the union of its singleton entries.
func (a *Analyzer) Simplify(conditions, decisions []string) (*Simplification, error) {
	reduced, err := a.RemoveRedundant(conditions, decisions)
	if err != nil {
		return nil, err
	}
	matrix, err := a.builder.BuildRelative(reduced, decisions)
	if err != nil {
		return nil, err
	}

	simplification := &Simplification{
		Attributes: reduced,
		Cores:      map[string]api.Reduct{},
		Reducts:    map[string][]api.Reduct{},
	}
	for _, id := range a.builder.Engine().System().ObjectIDs() {
		var entries [][]string
		core := map[string]struct{}{}
		for _, pair := range matrix.Pairs() {
			if pair.A != id && pair.B != id {
				continue
			}
			entry := matrix.Entries[pair]
			entries = append(entries, entry)
			if len(entry) == 1 {
				core[entry[0]] = struct{}{}
			}
		}
		if len(entries) == 0 {
			continue
		}
		if len(core) > 0 {
			simplification.Cores[id] = api.SortedNames(core)
		}
		covers, _, err := reduct.AllMinimalCovers(reduced, entries, roughconf.Budget{})
		if err != nil {
			return nil, err
		}
		simplification.Reducts[id] = covers
	}
	return simplification, nil
}
