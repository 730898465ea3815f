package discern

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
)

// familySystem turns named partitions of the universe into an
// attribute-value table: every block of a family becomes one value of
// the corresponding attribute.
func familySystem(universe []string, families map[string][][]string, decision string) *api.InformationSystem {
	names := maps.Keys(families)
	slices.Sort(names)

	attributes := make([]api.Attribute, 0, len(names))
	for _, name := range names {
		attributes = append(attributes, api.Attribute{Name: name})
	}

	objects := make([]api.Object, 0, len(universe))
	for _, id := range universe {
		values := map[string]string{}
		for _, name := range names {
			for block, members := range families[name] {
				if slices.Contains(members, id) {
					values[name] = strconv.Itoa(block)
					break
				}
			}
		}
		objects = append(objects, api.Object{ID: id, Values: values})
	}

	system, err := api.NewInformationSystem(objects, attributes, decision, roughconf.MissingReject)
	if err != nil {
		panic(err)
	}
	return system
}

// fiveObjects is a five-object system over the attributes a..d whose
// matrices, minimized or not, are small enough to state in full.
func fiveObjects() *api.InformationSystem {
	return familySystem([]string{"1", "2", "3", "4", "5"}, map[string][][]string{
		"a": {{"1"}, {"2", "3", "5"}, {"4"}},
		"b": {{"3"}, {"1", "4", "5"}, {"2"}},
		"c": {{"2", "4", "5"}, {"3"}, {"1"}},
		"d": {{"1", "3"}, {"4"}, {"2", "5"}},
	}, "")
}

// mushrooms is a tiny decision table with one pair of objects which agree
// on every condition but differ in the decision.
func mushrooms() *api.InformationSystem {
	objects := []api.Object{
		{ID: "1", Values: map[string]string{"Color": "Red", "Size": "Small", "Edible": "no"}},
		{ID: "2", Values: map[string]string{"Color": "Red", "Size": "Small", "Edible": "yes"}},
		{ID: "3", Values: map[string]string{"Color": "Green", "Size": "Small", "Edible": "yes"}},
		{ID: "4", Values: map[string]string{"Color": "Red", "Size": "Big", "Edible": "no"}},
	}
	attributes := []api.Attribute{{Name: "Color"}, {Name: "Size"}, {Name: "Edible"}}
	system, err := api.NewInformationSystem(objects, attributes, "Edible", roughconf.MissingReject)
	if err != nil {
		panic(err)
	}
	return system
}

func pair(a, b string) api.ObjectPair {
	return api.NewObjectPair(a, b)
}
