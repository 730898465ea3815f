package reduct

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
)

func TestAllMinimalCovers(t *testing.T) {
	g := NewGomegaWithT(t)

	tests := []struct {
		name       string
		attributes []string
		entries    [][]string
		covers     []api.Reduct
	}{
		{name: "pairwise entries",
			attributes: []string{"a", "b", "c"},
			entries:    [][]string{{"a", "b"}, {"b", "c"}, {"a", "c"}},
			covers:     []api.Reduct{{"a", "b"}, {"a", "c"}, {"b", "c"}}},
		{name: "singleton forces membership",
			attributes: []string{"a", "b", "c"},
			entries:    [][]string{{"b"}, {"a", "c"}},
			covers:     []api.Reduct{{"a", "b"}, {"b", "c"}}},
		{name: "duplicate entries collapse",
			attributes: []string{"a", "b"},
			entries:    [][]string{{"a", "b"}, {"b", "a"}, {"a", "b"}},
			covers:     []api.Reduct{{"a"}, {"b"}}},
		{name: "no entries",
			attributes: []string{"a", "b"},
			entries:    nil,
			covers:     []api.Reduct{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			covers, truncated, err := AllMinimalCovers(tt.attributes, tt.entries, roughconf.Budget{})
			g.Expect(err).Should(BeNil())
			g.Expect(truncated).Should(BeFalse())
			g.Expect(covers).Should(Equal(tt.covers))
		})
	}
}

func TestAllMinimalCoversErrors(t *testing.T) {
	g := NewGomegaWithT(t)

	_, _, err := AllMinimalCovers([]string{"a"}, [][]string{{}}, roughconf.Budget{})
	g.Expect(err).To(MatchError("entry with no attributes cannot be covered"))

	_, _, err = AllMinimalCovers([]string{"a"}, [][]string{{"b"}}, roughconf.Budget{})
	g.Expect(err).To(MatchError("attribute b is outside the cover space [a]"))
}

func TestAllMinimalCoversHonorsBudget(t *testing.T) {
	g := NewGomegaWithT(t)

	covers, truncated, err := AllMinimalCovers(
		[]string{"a", "b", "c"},
		[][]string{{"a", "b"}, {"b", "c"}, {"a", "c"}},
		roughconf.Budget{MaxReducts: 2})
	g.Expect(err).Should(BeNil())
	g.Expect(truncated).Should(BeTrue())
	g.Expect(covers).Should(Equal([]api.Reduct{{"a", "b"}, {"a", "c"}}))
}
