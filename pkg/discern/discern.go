// Package discern builds discernibility matrices: for pairs of objects,
// the set of attributes on which the two objects differ.
package discern

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/indisc"
)

const defaultCacheSize = 512

// Matrix maps object pairs to the attributes discerning them. Pairs
// which no attribute of the subset discerns are either omitted
// (unrestricted mode) or collected as inconsistencies (relative mode).
type Matrix struct {
	// Attributes is the condition subset the matrix was built over.
	Attributes []string
	// Relative holds the decision attributes restricting the pair set;
	// empty means every object pair was considered.
	Relative []string
	// Entries holds the non-empty differing-attribute sets, sorted.
	Entries map[api.ObjectPair][]string
	// Inconsistent lists pairs from different decision classes which
	// agree on every condition attribute. Only populated in relative
	// mode.
	Inconsistent []api.ObjectPair
}

// Diagnostic returns the inconsistent pairs as an error value, or nil
// when the matrix is consistent.
func (m *Matrix) Diagnostic() error {
	if len(m.Inconsistent) == 0 {
		return nil
	}
	return &api.InconsistentDataError{Pairs: slices.Clone(m.Inconsistent)}
}

// Pairs returns the entry keys in canonical order.
func (m *Matrix) Pairs() []api.ObjectPair {
	pairs := maps.Keys(m.Entries)
	slices.SortFunc(pairs, func(a, b api.ObjectPair) int {
		if a.A != b.A {
			return strings.Compare(a.A, b.A)
		}
		return strings.Compare(a.B, b.B)
	})
	return pairs
}

// Builder derives matrices for one information system, reusing the
// partition engine's cache for the per-attribute membership checks.
// Matrices are memoized per condition/decision subset pair.
type Builder struct {
	engine *indisc.Engine
	cache  *lru.Cache[string, *Matrix]
}

func NewBuilder(engine *indisc.Engine) *Builder {
	cache, _ := lru.New[string, *Matrix](defaultCacheSize)
	return &Builder{engine: engine, cache: cache}
}

func (b *Builder) Engine() *indisc.Engine { return b.engine }

// Build computes the matrix over the given condition subset. When
// decisionAware is set, only pairs from different classes of the
// system's decision attribute are considered; pairs already separated by
// the decision partition alone never constrain a reduct. Without
// decision awareness every unordered object pair enters the scan, which
// is quadratic in the object count regardless of data regularity, so
// unrestricted matrices on large systems are deliberate choices.
func (b *Builder) Build(attributes []string, decisionAware bool) (*Matrix, error) {
	if !decisionAware {
		return b.BuildRelative(attributes, nil)
	}
	decision, exists := b.engine.System().Decision()
	if !exists {
		return nil, fmt.Errorf("system has no decision attribute, cannot build a decision-aware matrix")
	}
	return b.BuildRelative(attributes, []string{decision})
}

// BuildRelative computes the matrix of condition attributes relative to
// an explicit set of decision attributes. Pairs inside one class of the
// decision partition are skipped; pairs across decision classes which no
// condition attribute discerns are reported as inconsistencies.
func (b *Builder) BuildRelative(attributes, relative []string) (*Matrix, error) {
	system := b.engine.System()
	if err := system.CheckSubset(attributes); err != nil {
		return nil, err
	}
	if err := system.CheckSubset(relative); err != nil {
		return nil, err
	}

	key := api.SubsetKey(attributes) + "|" + api.SubsetKey(relative)
	if cached, exists := b.cache.Get(key); exists {
		return cached, nil
	}

	matrix, err := b.compute(attributes, relative)
	if err != nil {
		return nil, err
	}
	b.cache.ContainsOrAdd(key, matrix)
	if cached, exists := b.cache.Get(key); exists {
		return cached, nil
	}
	return matrix, nil
}

func (b *Builder) compute(attributes, relative []string) (*Matrix, error) {
	conditions, err := b.engine.Partition(attributes)
	if err != nil {
		return nil, err
	}

	var decisions *api.Partition
	if len(relative) > 0 {
		decisions, err = b.engine.Partition(relative)
		if err != nil {
			return nil, err
		}
	}

	// membership[i] assigns each object its class under the i-th
	// attribute alone; two objects differ on the attribute exactly when
	// their classes differ. The single-attribute partitions come out of
	// the shared cache, so the differing sets cost map lookups instead
	// of value comparisons.
	matrix := &Matrix{
		Attributes: conditions.Attributes,
		Entries:    map[api.ObjectPair][]string{},
	}
	if decisions != nil {
		matrix.Relative = decisions.Attributes
	}
	membership := make([]map[string]int, len(matrix.Attributes))
	for i, attribute := range matrix.Attributes {
		single, err := b.engine.Partition([]string{attribute})
		if err != nil {
			return nil, err
		}
		membership[i] = single.ByObject
	}

	ids := b.engine.System().ObjectIDs()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, z := ids[i], ids[j]
			if decisions != nil && decisions.ByObject[a] == decisions.ByObject[z] {
				continue
			}
			if conditions.ByObject[a] == conditions.ByObject[z] {
				if decisions != nil {
					matrix.Inconsistent = append(matrix.Inconsistent, api.NewObjectPair(a, z))
				}
				continue
			}
			var differing []string
			for k, attribute := range matrix.Attributes {
				if membership[k][a] != membership[k][z] {
					differing = append(differing, attribute)
				}
			}
			matrix.Entries[api.NewObjectPair(a, z)] = differing
		}
	}

	if len(matrix.Inconsistent) > 0 {
		logrus.Warnf("Matrix over %v relative to %v has %d inconsistent object pairs.",
			matrix.Attributes, matrix.Relative, len(matrix.Inconsistent))
	}
	logrus.Debugf("Built matrix with %d entries over %v.", len(matrix.Entries), matrix.Attributes)
	return matrix, nil
}

// Minimize applies absorption to the matrix: each entry is replaced by
// the smallest entry of the matrix it contains, ties broken by attribute
// name order. Hitting the minimized matrix is equivalent to hitting the
// original one, with far fewer distinct constraint sets.
func Minimize(matrix *Matrix) *Matrix {
	minimized := &Matrix{
		Attributes:   matrix.Attributes,
		Relative:     matrix.Relative,
		Entries:      map[api.ObjectPair][]string{},
		Inconsistent: matrix.Inconsistent,
	}

	candidates := maps.Values(matrix.Entries)
	slices.SortFunc(candidates, func(a, b []string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return slices.Compare(a, b)
	})
	candidates = slices.CompactFunc(candidates, func(a, b []string) bool {
		return slices.Equal(a, b)
	})

	for pair, entry := range matrix.Entries {
		for _, candidate := range candidates {
			if subsetOf(candidate, entry) {
				minimized.Entries[pair] = candidate
				break
			}
		}
	}
	return minimized
}

// subsetOf expects both slices sorted.
func subsetOf(sub, super []string) bool {
	i := 0
	for _, name := range sub {
		for i < len(super) && super[i] < name {
			i++
		}
		if i >= len(super) || super[i] != name {
			return false
		}
		i++
	}
	return true
}
