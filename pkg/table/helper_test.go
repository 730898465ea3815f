package table

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

func analyzerFor(system *api.InformationSystem) *Analyzer {
	return NewAnalyzer(discern.NewBuilder(indisc.NewEngine(system)))
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

// sevenRules is a seven-rule decision table over the conditions a..d
// and the decision e, with c redundant for the decision.
func sevenRules() *api.InformationSystem {
	return familySystem(ints(7), map[string][][]string{
		"a": {{"3"}, {"1", "2", "4", "5"}, {"6", "7"}},
		"b": {{"1", "2", "3"}, {"4", "5", "6"}, {"7"}},
		"c": {{"1", "2", "3", "4", "5", "6"}, {"7"}},
		"d": {{"2", "3"}, {"1", "4"}, {"5", "6", "7"}},
		"e": {{"3", "4"}, {"1", "2"}, {"5", "6", "7"}},
	}, "")
}
