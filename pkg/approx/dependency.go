package approx

import (
	"fmt"

	"github.com/johnHostetter/rough-theory/pkg/api"
)

// PositiveRegion returns the objects which the condition attributes
// classify into single classes of the decision partition: the union of
// the lower approximations of every decision class.
func (a *Analyzer) PositiveRegion(attributes, relative []string) (api.ObjectSet, error) {
	decisions, err := a.engine.Partition(relative)
	if err != nil {
		return nil, err
	}
	positive := api.ObjectSet{}
	for _, class := range decisions.Classes {
		lower, err := a.Lower(attributes, class)
		if err != nil {
			return nil, err
		}
		positive = positive.Union(lower)
	}
	return positive, nil
}

// DependencyDegree measures how far the decision attributes depend on
// the condition attributes: the fraction of the universe inside the
// positive region. Degree 1 means full functional dependency.
func (a *Analyzer) DependencyDegree(attributes, relative []string) (float64, error) {
	positive, err := a.PositiveRegion(attributes, relative)
	if err != nil {
		return 0, err
	}
	return float64(len(positive)) / float64(len(a.engine.System().Objects())), nil
}

// DependsOn reports whether the decision attributes depend fully on the
// condition attributes.
func (a *Analyzer) DependsOn(attributes, relative []string) (bool, error) {
	degree, err := a.DependencyDegree(attributes, relative)
	if err != nil {
		return false, err
	}
	return degree == 1, nil
}

// Significance of an attribute is the drop in dependency degree caused
// by removing it from the condition set.
func (a *Analyzer) Significance(attributes []string, attribute string, relative []string) (float64, error) {
	full, err := a.DependencyDegree(attributes, relative)
	if err != nil {
		return 0, err
	}
	reduced, err := a.DependencyDegree(without(attributes, attribute), relative)
	if err != nil {
		return 0, err
	}
	return full - reduced, nil
}

// Dispensable reports whether removing the attribute leaves the induced
// partition unchanged.
func (a *Analyzer) Dispensable(attributes []string, attribute string) (bool, error) {
	if !contains(attributes, attribute) {
		return false, fmt.Errorf("attribute %s is not part of %v", attribute, attributes)
	}
	full, err := a.engine.Partition(attributes)
	if err != nil {
		return false, err
	}
	reduced, err := a.engine.Partition(without(attributes, attribute))
	if err != nil {
		return false, err
	}
	return full.Equal(reduced), nil
}

// DispensableRelative reports whether removing the attribute leaves the
// positive region of the decision attributes unchanged.
func (a *Analyzer) DispensableRelative(attributes []string, attribute string, relative []string) (bool, error) {
	if !contains(attributes, attribute) {
		return false, fmt.Errorf("attribute %s is not part of %v", attribute, attributes)
	}
	full, err := a.PositiveRegion(attributes, relative)
	if err != nil {
		return false, err
	}
	reduced, err := a.PositiveRegion(without(attributes, attribute), relative)
	if err != nil {
		return false, err
	}
	return full.Equal(reduced), nil
}

// Independent reports whether every attribute of the subset is
// indispensable.
func (a *Analyzer) Independent(attributes []string) (bool, error) {
	for _, attribute := range attributes {
		dispensable, err := a.Dispensable(attributes, attribute)
		if err != nil {
			return false, err
		}
		if dispensable {
			return false, nil
		}
	}
	return true, nil
}

// IndependentRelative reports whether every attribute is indispensable
// with respect to the decision attributes.
func (a *Analyzer) IndependentRelative(attributes, relative []string) (bool, error) {
	for _, attribute := range attributes {
		dispensable, err := a.DispensableRelative(attributes, attribute, relative)
		if err != nil {
			return false, err
		}
		if dispensable {
			return false, nil
		}
	}
	return true, nil
}

func without(attributes []string, attribute string) []string {
	remaining := make([]string, 0, len(attributes))
	for _, name := range attributes {
		if name != attribute {
			remaining = append(remaining, name)
		}
	}
	return remaining
}

func contains(attributes []string, attribute string) bool {
	for _, name := range attributes {
		if name == attribute {
			return true
		}
	}
	return false
}
