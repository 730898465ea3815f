// Package reduct searches for minimal attribute subsets which preserve
// the discriminatory power of the full attribute set. The search is a
// minimal-hitting-set problem over the discernibility matrix: a subset
// is a reduct exactly when it intersects every matrix entry and no
// proper subset does.
package reduct

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
	"github.com/johnHostetter/rough-theory/pkg/discern"
)

// Phase tracks the lifecycle of one search invocation. Failures in the
// partitioning or matrix phase are fatal to the invocation; nothing is
// retried.
type Phase string

const (
	PhaseNotStarted      Phase = "NotStarted"
	PhasePartitioning    Phase = "Partitioning"
	PhaseMatrixBuilt     Phase = "MatrixBuilt"
	PhaseSearching       Phase = "Searching"
	PhaseFound           Phase = "Found"
	PhaseBudgetExhausted Phase = "BudgetExhausted"
	PhaseNoReductExists  Phase = "NoReductExists"
)

// Result carries the reducts of one search together with its
// diagnostics. Truncated results are explicitly flagged: a budget-bound
// search may have missed reducts, it never silently drops them.
type Result struct {
	Phase        Phase
	Reducts      []api.Reduct
	Core         api.Reduct
	Inconsistent []api.ObjectPair
	Truncated    bool
	Nodes        int
	Elapsed      time.Duration
}

// Engine searches one condition attribute set, optionally relative to
// decision attributes. Absolute mode (no decision) preserves the
// partition of the full attribute set; relative mode preserves the
// separation of decision classes.
type Engine struct {
	builder    *discern.Builder
	attributes []string
	relative   []string
}

// New searches all condition attributes of the builder's system,
// relative to its decision attribute when one is designated.
func New(builder *discern.Builder) *Engine {
	system := builder.Engine().System()
	var relative []string
	if decision, exists := system.Decision(); exists {
		relative = []string{decision}
	}
	engine, _ := NewOver(builder, system.ConditionNames(), relative)
	return engine
}

// NewOver searches an explicit condition subset relative to an explicit
// decision subset. An empty relative set requests absolute reducts.
func NewOver(builder *discern.Builder, attributes, relative []string) (*Engine, error) {
	system := builder.Engine().System()
	if err := system.CheckSubset(attributes); err != nil {
		return nil, err
	}
	if err := system.CheckSubset(relative); err != nil {
		return nil, err
	}
	canonical := slices.Clone(attributes)
	slices.Sort(canonical)
	canonical = slices.Compact(canonical)
	return &Engine{builder: builder, attributes: canonical, relative: relative}, nil
}

// problem is the hitting-set view of a discernibility matrix: entries as
// attribute index sets, deduplicated, each with a witness pair.
type problem struct {
	attributes []string
	entries    [][]int
	witnesses  []api.ObjectPair
	matrix     *discern.Matrix
}

func (e *Engine) prepare() (*problem, error) {
	logrus.Debugf("Partitioning %d objects under %v.",
		len(e.builder.Engine().System().Objects()), e.attributes)
	matrix, err := e.builder.BuildRelative(e.attributes, e.relative)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Matrix built: %d entries, %d inconsistent pairs.",
		len(matrix.Entries), len(matrix.Inconsistent))

	index := map[string]int{}
	for i, name := range e.attributes {
		index[name] = i
	}

	p := &problem{attributes: e.attributes, matrix: matrix}
	seen := map[string]int{}
	for _, pair := range matrix.Pairs() {
		names := matrix.Entries[pair]
		if len(names) == 0 {
			// cannot happen: empty differing sets are diverted into
			// the inconsistency diagnostics during the matrix build
			return nil, &api.NoReductExistsError{Attributes: e.attributes, Pair: pair}
		}
		key := api.SubsetKey(names)
		if _, exists := seen[key]; exists {
			continue
		}
		entry := make([]int, 0, len(names))
		for _, name := range names {
			entry = append(entry, index[name])
		}
		slices.Sort(entry)
		seen[key] = len(p.entries)
		p.entries = append(p.entries, entry)
		p.witnesses = append(p.witnesses, pair)
	}
	return p, nil
}

func hitsAll(member []bool, entries [][]int) bool {
	for _, entry := range entries {
		if !hitsEntry(member, entry) {
			return false
		}
	}
	return true
}

func hitsEntry(member []bool, entry []int) bool {
	for _, attribute := range entry {
		if member[attribute] {
			return true
		}
	}
	return false
}

// cleanup drops chosen attributes whose removal keeps every entry hit,
// most recently chosen first, which turns any cover into a minimal one.
func cleanup(member []bool, chosen []int, entries [][]int) {
	for i := len(chosen) - 1; i >= 0; i-- {
		member[chosen[i]] = false
		if !hitsAll(member, entries) {
			member[chosen[i]] = true
		}
	}
}

func (p *problem) toReduct(member []bool) api.Reduct {
	var reduct api.Reduct
	for i, chosen := range member {
		if chosen {
			reduct = append(reduct, p.attributes[i])
		}
	}
	return reduct
}

// core returns the attributes appearing in singleton entries; these are
// exactly the attributes contained in every reduct.
func (p *problem) core() api.Reduct {
	set := map[string]struct{}{}
	for _, entry := range p.entries {
		if len(entry) == 1 {
			set[p.attributes[entry[0]]] = struct{}{}
		}
	}
	return api.SortedNames(set)
}

// FindOne returns a single valid reduct. The greedy strategy ranks
// attributes by how many matrix entries they appear in; the sat strategy
// delegates the cover to a SAT solver. Both finish with a cleanup pass,
// so the returned reduct is minimal even though it need not be of
// minimum size.
func (e *Engine) FindOne(strategy roughconf.Strategy) (*Result, error) {
	if strategy == "" {
		strategy = roughconf.StrategyGreedy
	}
	if err := strategy.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	p, err := e.prepare()
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Searching for one reduct of %v with the %s strategy.", e.attributes, strategy)
	var member []bool
	switch strategy {
	case roughconf.StrategyGreedy:
		member, err = findGreedy(p)
	case roughconf.StrategySAT:
		member, err = findSAT(p)
	case roughconf.StrategyExhaustive:
		budget := roughconf.Budget{MaxReducts: 1}
		result, err := e.FindAll(budget)
		if err != nil {
			return nil, err
		}
		result.Elapsed = time.Since(start)
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Phase:        PhaseFound,
		Reducts:      []api.Reduct{p.toReduct(member)},
		Core:         p.core(),
		Inconsistent: slices.Clone(p.matrix.Inconsistent),
		Nodes:        1,
		Elapsed:      time.Since(start),
	}, nil
}

// Core returns the intersection of all reducts without enumerating
// them: the attributes no other attribute can stand in for.
func (e *Engine) Core() (api.Reduct, error) {
	p, err := e.prepare()
	if err != nil {
		return nil, err
	}
	return p.core(), nil
}

// Validate reports whether the candidate is a reduct of this engine's
// search space: it must hit every matrix entry and lose coverage when
// any single attribute is removed.
func (e *Engine) Validate(candidate api.Reduct) (bool, error) {
	p, err := e.prepare()
	if err != nil {
		return false, err
	}
	member := make([]bool, len(p.attributes))
	index := map[string]int{}
	for i, name := range p.attributes {
		index[name] = i
	}
	for _, name := range candidate {
		i, exists := index[name]
		if !exists {
			return false, fmt.Errorf("attribute %s is outside the search space %v", name, p.attributes)
		}
		member[i] = true
	}
	if !hitsAll(member, p.entries) {
		return false, nil
	}
	for _, name := range candidate {
		member[index[name]] = false
		if hitsAll(member, p.entries) {
			return false, nil
		}
		member[index[name]] = true
	}
	return true, nil
}
