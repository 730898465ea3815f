package reduct

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
)

// AllMinimalCovers enumerates the minimal hitting sets of arbitrary
// attribute-set entries, the primitive behind both global reducts and
// per-object value reducts. The truncated flag mirrors FindAll: a
// budget-bound enumeration may be incomplete.
func AllMinimalCovers(attributes []string, entries [][]string, budget roughconf.Budget) ([]api.Reduct, bool, error) {
	canonical := slices.Clone(attributes)
	slices.Sort(canonical)
	canonical = slices.Compact(canonical)
	index := map[string]int{}
	for i, name := range canonical {
		index[name] = i
	}

	p := &problem{attributes: canonical}
	seen := map[string]struct{}{}
	for _, names := range entries {
		if len(names) == 0 {
			return nil, false, fmt.Errorf("entry with no attributes cannot be covered")
		}
		key := api.SubsetKey(names)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		entry := make([]int, 0, len(names))
		for _, name := range names {
			i, exists := index[name]
			if !exists {
				return nil, false, fmt.Errorf("attribute %s is outside the cover space %v", name, canonical)
			}
			entry = append(entry, i)
		}
		slices.Sort(entry)
		entry = slices.Compact(entry)
		p.entries = append(p.entries, entry)
		p.witnesses = append(p.witnesses, api.ObjectPair{})
	}

	found, _, truncated := sweep(p, budget, time.Now())
	covers := make([]api.Reduct, 0, len(found))
	for _, member := range found {
		covers = append(covers, p.toReduct(member))
	}
	return covers, truncated, nil
}
