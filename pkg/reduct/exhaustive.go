package reduct

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
)

// FindAll enumerates minimal reducts with a breadth-first sweep over the
// attribute power set, smallest subsets first. Because hitting the
// matrix is monotone in the subset, a subset that hits it and contains
// no smaller reduct is itself minimal, and branches containing a found
// reduct are pruned wholesale. The caller-supplied budget bounds the
// worst-case exponential walk; exceeding any bound stops the search and
// flags the result as truncated, so a bounded result is never mistaken
// for the complete reduct set.
func (e *Engine) FindAll(budget roughconf.Budget) (*Result, error) {
	start := time.Now()
	p, err := e.prepare()
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Exhaustive search over %d attributes, %d distinct entries, budget %+v.",
		len(p.attributes), len(p.entries), budget)
	found, nodes, truncated := sweep(p, budget, start)

	result := &Result{
		Phase:        PhaseFound,
		Core:         p.core(),
		Inconsistent: slices.Clone(p.matrix.Inconsistent),
		Truncated:    truncated,
		Nodes:        nodes,
		Elapsed:      time.Since(start),
	}
	if truncated {
		result.Phase = PhaseBudgetExhausted
		logrus.Warnf("Reduct search budget exhausted after %d nodes; the %d returned reducts may be incomplete.",
			nodes, len(found))
	}
	for _, member := range found {
		result.Reducts = append(result.Reducts, p.toReduct(member))
	}
	return result, nil
}

type candidate struct {
	attributes []int
	member     []bool
}

func newCandidate(attributes []int, width int) candidate {
	member := make([]bool, width)
	for _, a := range attributes {
		member[a] = true
	}
	return candidate{attributes: attributes, member: member}
}

func sweep(p *problem, budget roughconf.Budget, start time.Time) (found [][]bool, nodes int, truncated bool) {
	if len(p.entries) == 0 {
		// nothing to discern: the empty subset is the unique reduct
		return [][]bool{make([]bool, len(p.attributes))}, 1, false
	}

	frontier := []candidate{newCandidate(nil, len(p.attributes))}
	for len(frontier) > 0 {
		// drop branches that already contain a reduct: any superset is
		// valid but cannot be minimal
		pending := frontier[:0]
		for _, c := range frontier {
			if !containsFound(c.member, found) {
				pending = append(pending, c)
			}
		}

		allowed := len(pending)
		if budget.MaxNodes > 0 && budget.MaxNodes-nodes < allowed {
			allowed = budget.MaxNodes - nodes
			truncated = true
		}
		if budget.MaxTime > 0 && time.Since(start) > budget.MaxTime {
			allowed = 0
			truncated = true
		}
		pending = pending[:allowed]

		hits := evaluate(p, pending, budget.Workers)
		nodes += len(pending)

		var next []candidate
		for i, c := range pending {
			if hits[i] {
				found = append(found, c.member)
				if budget.MaxReducts > 0 && len(found) >= budget.MaxReducts {
					if len(pending)-1 > i || len(next) > 0 || moreLevels(c, p) {
						truncated = true
					}
					return found, nodes, truncated
				}
				continue
			}
			base := 0
			if len(c.attributes) > 0 {
				base = c.attributes[len(c.attributes)-1] + 1
			}
			for a := base; a < len(p.attributes); a++ {
				grown := append(slices.Clone(c.attributes), a)
				next = append(next, newCandidate(grown, len(p.attributes)))
			}
		}
		if truncated {
			return found, nodes, true
		}
		frontier = next
	}
	return found, nodes, truncated
}

// moreLevels reports whether the candidate could still be extended, used
// to decide if stopping at the reduct budget actually cut anything off.
func moreLevels(c candidate, p *problem) bool {
	return len(c.attributes) < len(p.attributes)
}

// containsFound reports whether some already-found reduct is a subset of
// the candidate.
func containsFound(member []bool, found [][]bool) bool {
	for _, reduct := range found {
		subset := true
		for i, chosen := range reduct {
			if chosen && !member[i] {
				subset = false
				break
			}
		}
		if subset {
			return true
		}
	}
	return false
}

// evaluate tests candidates against the matrix, optionally across
// workers. Each worker only reads the shared immutable problem and
// writes its own slot, so the parallel path needs no locking beyond the
// wait group.
func evaluate(p *problem, pending []candidate, workers int) []bool {
	hits := make([]bool, len(pending))
	if workers < 2 || len(pending) < 2*workers {
		for i, c := range pending {
			hits[i] = hitsAll(c.member, p.entries)
		}
		return hits
	}

	var wg sync.WaitGroup
	work := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				hits[i] = hitsAll(pending[i].member, p.entries)
			}
		}()
	}
	for i := range pending {
		work <- i
	}
	close(work)
	wg.Wait()
	return hits
}
