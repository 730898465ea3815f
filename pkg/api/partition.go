package api

// Partition is the family of equivalence classes induced on the object
// set by one attribute subset. Classes are pairwise disjoint, ordered by
// first appearance in the object load order, and cover the universe.
type Partition struct {
	// Attributes is the canonicalized subset the partition was built for.
	Attributes []string
	// Classes holds each equivalence class as a set of object ids.
	Classes []ObjectSet
	// ByObject maps each object id to the index of its class.
	ByObject map[string]int
}

// ClassOf returns the equivalence class containing the object.
func (p *Partition) ClassOf(objectID string) (ObjectSet, bool) {
	i, exists := p.ByObject[objectID]
	if !exists {
		return nil, false
	}
	return p.Classes[i], true
}

// Refines reports whether every class of p is contained in some class
// of q. A partition over a superset of attributes always refines the
// partition over the subset.
func (p *Partition) Refines(q *Partition) bool {
	for _, class := range p.Classes {
		var anchor ObjectSet
		for id := range class {
			target, exists := q.ClassOf(id)
			if !exists {
				return false
			}
			if anchor == nil {
				anchor = target
			}
		}
		if !class.SubsetOf(anchor) {
			return false
		}
	}
	return true
}

// Equal reports whether both partitions induce the same classes,
// independent of class order.
func (p *Partition) Equal(q *Partition) bool {
	if len(p.Classes) != len(q.Classes) || len(p.ByObject) != len(q.ByObject) {
		return false
	}
	for id, i := range p.ByObject {
		j, exists := q.ByObject[id]
		if !exists {
			return false
		}
		if !p.Classes[i].Equal(q.Classes[j]) {
			return false
		}
	}
	return true
}

// Sorted returns a deterministic view of the classes: each class sorted
// by object id, classes ordered by their smallest member.
func (p *Partition) Sorted() [][]string {
	classes := make([][]string, 0, len(p.Classes))
	for _, class := range p.Classes {
		classes = append(classes, class.Sorted())
	}
	for i := 1; i < len(classes); i++ {
		for j := i; j > 0 && classes[j][0] < classes[j-1][0]; j-- {
			classes[j], classes[j-1] = classes[j-1], classes[j]
		}
	}
	return classes
}

// Reduct is a minimal attribute subset preserving the discriminatory
// power of the full attribute set, kept in sorted order.
type Reduct []string
