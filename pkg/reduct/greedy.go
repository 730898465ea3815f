package reduct

import (
	"github.com/sirupsen/logrus"

	"github.com/johnHostetter/rough-theory/pkg/api"
)

// findGreedy grows a cover of the matrix entries by repeatedly taking
// the attribute hitting the most still-unhit entries, then minimizes it
// with the shared cleanup pass. Ties fall to the alphabetically first
// attribute, keeping runs deterministic.
func findGreedy(p *problem) ([]bool, error) {
	member := make([]bool, len(p.attributes))
	hit := make([]bool, len(p.entries))
	remaining := len(p.entries)

	var chosen []int
	for remaining > 0 {
		counts := make([]int, len(p.attributes))
		for i, entry := range p.entries {
			if hit[i] {
				continue
			}
			for _, attribute := range entry {
				counts[attribute]++
			}
		}

		best := -1
		for i, count := range counts {
			if count > 0 && (best == -1 || count > counts[best]) {
				best = i
			}
		}
		if best == -1 {
			// every remaining entry is empty, which the matrix build
			// rules out; see prepare
			for i := range p.entries {
				if !hit[i] {
					return nil, &api.NoReductExistsError{Attributes: p.attributes, Pair: p.witnesses[i]}
				}
			}
		}

		member[best] = true
		chosen = append(chosen, best)
		for i, entry := range p.entries {
			if !hit[i] && hitsEntry(member, entry) {
				hit[i] = true
				remaining--
			}
		}
		logrus.Debugf("Greedy pick %s covers %d of %d entries.",
			p.attributes[best], len(p.entries)-remaining, len(p.entries))
	}

	cleanup(member, chosen, p.entries)
	return member, nil
}
