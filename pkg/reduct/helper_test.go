package reduct

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
	"github.com/johnHostetter/rough-theory/pkg/discern"
	"github.com/johnHostetter/rough-theory/pkg/indisc"
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

func builderFor(system *api.InformationSystem) *discern.Builder {
	return discern.NewBuilder(indisc.NewEngine(system))
}

func ints(n int) []string {
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	return ids
}

// knowledgeBase is the eight-object example system with condition
// attributes a..c and the attributes d, e acting as decisions.
func knowledgeBase() *api.InformationSystem {
	return familySystem(ints(8), map[string][][]string{
		"a": {{"2", "8"}, {"1", "4", "5"}, {"3", "6", "7"}},
		"b": {{"1", "3", "5"}, {"2", "4", "7", "8"}, {"6"}},
		"c": {{"3", "4", "6"}, {"2", "7", "8"}, {"1", "5"}},
		"d": {{"5", "8"}, {"2", "3", "6", "7"}, {"1", "4"}},
		"e": {{"1"}, {"3", "5", "6", "8"}, {"2", "4", "7"}},
	}, "")
}

// threeFamilies is an eight-object system whose absolute reducts over
// {P, Q, R} are {P, Q} and {P, R}.
func threeFamilies() *api.InformationSystem {
	return familySystem(
		[]string{"x1", "x2", "x3", "x4", "x5", "x6", "x7", "x8"},
		map[string][][]string{
			"P": {{"x1", "x4", "x5"}, {"x2", "x8"}, {"x3"}, {"x6", "x7"}},
			"Q": {{"x1", "x3", "x5"}, {"x6"}, {"x2", "x4", "x7", "x8"}},
			"R": {{"x1", "x5"}, {"x6"}, {"x2", "x7", "x8"}, {"x3", "x4"}},
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
