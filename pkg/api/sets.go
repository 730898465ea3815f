package api

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ObjectSet is a set of object ids.
type ObjectSet map[string]struct{}

func NewObjectSet(ids ...string) ObjectSet {
	set := make(ObjectSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s ObjectSet) Contains(id string) bool {
	_, exists := s[id]
	return exists
}

func (s ObjectSet) Add(id string) { s[id] = struct{}{} }

func (s ObjectSet) Union(other ObjectSet) ObjectSet {
	union := make(ObjectSet, len(s)+len(other))
	maps.Copy(union, s)
	maps.Copy(union, other)
	return union
}

func (s ObjectSet) Intersect(other ObjectSet) ObjectSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	intersection := ObjectSet{}
	for id := range small {
		if large.Contains(id) {
			intersection.Add(id)
		}
	}
	return intersection
}

func (s ObjectSet) Subtract(other ObjectSet) ObjectSet {
	difference := ObjectSet{}
	for id := range s {
		if !other.Contains(id) {
			difference.Add(id)
		}
	}
	return difference
}

func (s ObjectSet) SubsetOf(other ObjectSet) bool {
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

func (s ObjectSet) Equal(other ObjectSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Sorted returns the member ids in sorted order.
func (s ObjectSet) Sorted() []string {
	ids := maps.Keys(s)
	slices.Sort(ids)
	return ids
}
