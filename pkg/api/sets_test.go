package api

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestObjectSetOperations(t *testing.T) {
	g := NewGomegaWithT(t)
	left := NewObjectSet("1", "2", "3")
	right := NewObjectSet("3", "4")

	g.Expect(left.Contains("2")).Should(BeTrue())
	g.Expect(left.Contains("4")).Should(BeFalse())

	g.Expect(left.Union(right).Sorted()).Should(Equal([]string{"1", "2", "3", "4"}))
	g.Expect(left.Intersect(right).Sorted()).Should(Equal([]string{"3"}))
	g.Expect(right.Intersect(left).Sorted()).Should(Equal([]string{"3"}))
	g.Expect(left.Subtract(right).Sorted()).Should(Equal([]string{"1", "2"}))
	g.Expect(right.Subtract(left).Sorted()).Should(Equal([]string{"4"}))

	// the operands are left untouched
	g.Expect(left.Sorted()).Should(Equal([]string{"1", "2", "3"}))
	g.Expect(right.Sorted()).Should(Equal([]string{"3", "4"}))
}

func TestObjectSetRelations(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(NewObjectSet("1").SubsetOf(NewObjectSet("1", "2"))).Should(BeTrue())
	g.Expect(NewObjectSet("1", "3").SubsetOf(NewObjectSet("1", "2"))).Should(BeFalse())
	g.Expect(ObjectSet{}.SubsetOf(NewObjectSet("1"))).Should(BeTrue())

	g.Expect(NewObjectSet("1", "2").Equal(NewObjectSet("2", "1"))).Should(BeTrue())
	g.Expect(NewObjectSet("1", "2").Equal(NewObjectSet("1"))).Should(BeFalse())
	g.Expect(ObjectSet{}.Equal(ObjectSet{})).Should(BeTrue())
}

func TestPartitionClassOf(t *testing.T) {
	g := NewGomegaWithT(t)
	partition := &Partition{
		Attributes: []string{"a"},
		Classes:    []ObjectSet{NewObjectSet("1", "2"), NewObjectSet("3")},
		ByObject:   map[string]int{"1": 0, "2": 0, "3": 1},
	}

	class, exists := partition.ClassOf("2")
	g.Expect(exists).Should(BeTrue())
	g.Expect(class.Sorted()).Should(Equal([]string{"1", "2"}))

	_, exists = partition.ClassOf("4")
	g.Expect(exists).Should(BeFalse())
}

func TestPartitionRefinesAndEqual(t *testing.T) {
	g := NewGomegaWithT(t)
	coarse := &Partition{
		Classes:  []ObjectSet{NewObjectSet("1", "2", "3"), NewObjectSet("4")},
		ByObject: map[string]int{"1": 0, "2": 0, "3": 0, "4": 1},
	}
	fine := &Partition{
		Classes:  []ObjectSet{NewObjectSet("1", "2"), NewObjectSet("3"), NewObjectSet("4")},
		ByObject: map[string]int{"1": 0, "2": 0, "3": 1, "4": 2},
	}
	reordered := &Partition{
		Classes:  []ObjectSet{NewObjectSet("4"), NewObjectSet("3"), NewObjectSet("1", "2")},
		ByObject: map[string]int{"4": 0, "3": 1, "1": 2, "2": 2},
	}

	g.Expect(fine.Refines(coarse)).Should(BeTrue())
	g.Expect(coarse.Refines(fine)).Should(BeFalse())
	g.Expect(fine.Refines(fine)).Should(BeTrue())

	g.Expect(fine.Equal(reordered)).Should(BeTrue())
	g.Expect(fine.Equal(coarse)).Should(BeFalse())
}

func TestPartitionSorted(t *testing.T) {
	g := NewGomegaWithT(t)
	partition := &Partition{
		Classes:  []ObjectSet{NewObjectSet("3"), NewObjectSet("2", "4"), NewObjectSet("1")},
		ByObject: map[string]int{"3": 0, "2": 1, "4": 1, "1": 2},
	}

	g.Expect(partition.Sorted()).Should(Equal([][]string{{"1"}, {"2", "4"}, {"3"}}))
}
