// Package approx derives rough set approximations from indiscernibility
// partitions: lower and upper approximations of target sets, the regions
// they induce, and the dependency measures built on top of them.
package approx

import (
	"fmt"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/indisc"
)

// Definability classifies how well an attribute subset can express a
// target set.
type Definability string

const (
	// Definable: lower and upper approximation coincide with the target.
	Definable Definability = "definable"
	// RoughlyDefinable: some members are certain, some non-members too.
	RoughlyDefinable Definability = "roughly-definable"
	// InternallyUndefinable: no member is certain, but some non-members are.
	InternallyUndefinable Definability = "internally-undefinable"
	// ExternallyUndefinable: some members are certain, no non-member is.
	ExternallyUndefinable Definability = "externally-undefinable"
	// TotallyUndefinable: nothing about the target can be decided.
	TotallyUndefinable Definability = "totally-undefinable"
)

// Analyzer evaluates approximations against one information system,
// sharing the partition cache of its engine.
type Analyzer struct {
	engine *indisc.Engine
}

func NewAnalyzer(engine *indisc.Engine) *Analyzer {
	return &Analyzer{engine: engine}
}

func (a *Analyzer) checkTarget(target api.ObjectSet) error {
	for id := range target {
		if !a.engine.System().HasObject(id) {
			return fmt.Errorf("object %s does not exist", id)
		}
	}
	return nil
}

// Lower returns the union of the equivalence classes fully contained in
// the target: the objects certainly belonging to it.
func (a *Analyzer) Lower(attributes []string, target api.ObjectSet) (api.ObjectSet, error) {
	if err := a.checkTarget(target); err != nil {
		return nil, err
	}
	partition, err := a.engine.Partition(attributes)
	if err != nil {
		return nil, err
	}
	lower := api.ObjectSet{}
	for _, class := range partition.Classes {
		if class.SubsetOf(target) {
			lower = lower.Union(class)
		}
	}
	return lower, nil
}

// Upper returns the union of the equivalence classes intersecting the
// target: the objects possibly belonging to it.
func (a *Analyzer) Upper(attributes []string, target api.ObjectSet) (api.ObjectSet, error) {
	if err := a.checkTarget(target); err != nil {
		return nil, err
	}
	partition, err := a.engine.Partition(attributes)
	if err != nil {
		return nil, err
	}
	upper := api.ObjectSet{}
	for _, class := range partition.Classes {
		if len(class.Intersect(target)) > 0 {
			upper = upper.Union(class)
		}
	}
	return upper, nil
}

// Boundary returns the undecidable region: objects in the upper but not
// the lower approximation.
func (a *Analyzer) Boundary(attributes []string, target api.ObjectSet) (api.ObjectSet, error) {
	lower, err := a.Lower(attributes, target)
	if err != nil {
		return nil, err
	}
	upper, err := a.Upper(attributes, target)
	if err != nil {
		return nil, err
	}
	return upper.Subtract(lower), nil
}

// Negative returns the objects certainly outside the target.
func (a *Analyzer) Negative(attributes []string, target api.ObjectSet) (api.ObjectSet, error) {
	upper, err := a.Upper(attributes, target)
	if err != nil {
		return nil, err
	}
	return a.engine.System().Universe().Subtract(upper), nil
}

// Accuracy is the ratio of lower to upper approximation size. An empty
// target has no meaningful accuracy and is rejected.
func (a *Analyzer) Accuracy(attributes []string, target api.ObjectSet) (float64, error) {
	if len(target) == 0 {
		return 0, fmt.Errorf("accuracy is undefined for an empty target set")
	}
	lower, err := a.Lower(attributes, target)
	if err != nil {
		return 0, err
	}
	upper, err := a.Upper(attributes, target)
	if err != nil {
		return 0, err
	}
	return float64(len(lower)) / float64(len(upper)), nil
}

// Roughness is the complement of accuracy.
func (a *Analyzer) Roughness(attributes []string, target api.ObjectSet) (float64, error) {
	accuracy, err := a.Accuracy(attributes, target)
	if err != nil {
		return 0, err
	}
	return 1 - accuracy, nil
}

// Definability classifies the target under the attribute subset.
func (a *Analyzer) Definability(attributes []string, target api.ObjectSet) (Definability, error) {
	if len(target) == 0 {
		return "", fmt.Errorf("definability is undefined for an empty target set")
	}
	lower, err := a.Lower(attributes, target)
	if err != nil {
		return "", err
	}
	upper, err := a.Upper(attributes, target)
	if err != nil {
		return "", err
	}
	universe := a.engine.System().Universe()

	switch {
	case lower.Equal(upper):
		return Definable, nil
	case len(lower) > 0 && !upper.Equal(universe):
		return RoughlyDefinable, nil
	case len(lower) == 0 && !upper.Equal(universe):
		return InternallyUndefinable, nil
	case len(lower) > 0:
		return ExternallyUndefinable, nil
	}
	return TotallyUndefinable, nil
}
