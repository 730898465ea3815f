// Package indisc computes indiscernibility relations: it partitions the
// objects of an information system into equivalence classes under a
// chosen attribute subset.
package indisc

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/johnHostetter/rough-theory/pkg/api"
)

const defaultCacheSize = 4096

// Engine partitions one immutable information system. Results are
// memoized per canonical attribute subset, so repeated queries during a
// reduct search cost one cache lookup. The cache lives and dies with the
// engine; analyzing another system means constructing another engine.
type Engine struct {
	system *api.InformationSystem
	cache  *lru.Cache[string, *api.Partition]
}

func NewEngine(system *api.InformationSystem) *Engine {
	// lru.New only fails on a non-positive size
	cache, _ := lru.New[string, *api.Partition](defaultCacheSize)
	return &Engine{system: system, cache: cache}
}

// NewEngineWithCacheSize bounds the memo table for very wide systems.
func NewEngineWithCacheSize(system *api.InformationSystem, size int) (*Engine, error) {
	cache, err := lru.New[string, *api.Partition](size)
	if err != nil {
		return nil, err
	}
	return &Engine{system: system, cache: cache}, nil
}

func (e *Engine) System() *api.InformationSystem { return e.system }

// Partition groups the objects into equivalence classes under the given
// attribute subset. Two objects share a class exactly when they agree on
// every attribute of the subset. The empty subset yields the coarsest
// partition: a single class holding every object.
func (e *Engine) Partition(attributes []string) (*api.Partition, error) {
	if err := e.system.CheckSubset(attributes); err != nil {
		return nil, err
	}
	canonical := canonicalize(attributes)
	key := api.SubsetKey(canonical)
	if cached, exists := e.cache.Get(key); exists {
		return cached, nil
	}

	partition, err := e.compute(canonical)
	if err != nil {
		return nil, err
	}

	// insert-if-absent: the first writer wins, a concurrent loser
	// discards its redundant computation and returns the stored value
	e.cache.ContainsOrAdd(key, partition)
	if cached, exists := e.cache.Get(key); exists {
		return cached, nil
	}
	return partition, nil
}

// compute builds the partition in one pass over the objects by hashing
// the tuple of comparison tokens, O(n*k) for n objects and k attributes.
// Each token is length-framed inside the tuple key, so tokens containing
// arbitrary bytes cannot run into each other.
func (e *Engine) compute(attributes []string) (*api.Partition, error) {
	partition := &api.Partition{
		Attributes: attributes,
		ByObject:   map[string]int{},
	}

	classByTuple := map[string]int{}
	var tuple strings.Builder
	for _, object := range e.system.Objects() {
		tuple.Reset()
		for _, attribute := range attributes {
			token, err := e.system.Token(object.ID, attribute)
			if err != nil {
				return nil, err
			}
			tuple.WriteString(strconv.Itoa(len(token)))
			tuple.WriteByte(':')
			tuple.WriteString(token)
		}

		class, exists := classByTuple[tuple.String()]
		if !exists {
			class = len(partition.Classes)
			classByTuple[tuple.String()] = class
			partition.Classes = append(partition.Classes, api.ObjectSet{})
		}
		partition.Classes[class].Add(object.ID)
		partition.ByObject[object.ID] = class
	}

	logrus.Debugf("Partitioned %d objects into %d classes under %v.",
		len(partition.ByObject), len(partition.Classes), attributes)
	return partition, nil
}

func canonicalize(attributes []string) []string {
	canonical := slices.Clone(attributes)
	slices.Sort(canonical)
	return slices.Compact(canonical)
}
