package api

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
)

// Comparator maps raw attribute values to comparison keys. Two values of
// an attribute are indiscernible exactly when their keys are equal. This
// keeps partitioning a single hashing pass instead of a pairwise scan.
type Comparator interface {
	Key(value string) string
}

// ExactMatch compares categorical values verbatim. It is the default
// comparison rule for every attribute.
type ExactMatch struct{}

func (ExactMatch) Key(value string) string { return value }

// Attribute is a named column of an information system together with its
// comparison rule. A nil Compare falls back to ExactMatch.
type Attribute struct {
	Name    string
	Compare Comparator
}

func (a Attribute) comparator() Comparator {
	if a.Compare == nil {
		return ExactMatch{}
	}
	return a.Compare
}

// Object is one row: an identifier plus its attribute values. Attributes
// without an entry in Values are undefined for the object.
type Object struct {
	ID     string
	Values map[string]string
}

// InformationSystem is an immutable view over a table of objects and
// attributes, optionally with one attribute designated as the decision.
// All derived artifacts (partitions, matrices, reducts) are recomputed
// from it and never written back.
type InformationSystem struct {
	objects    []Object
	objIndex   map[string]int
	attributes []Attribute
	attrIndex  map[string]int
	decision   string
	policy     roughconf.MissingValuePolicy
}

// NewInformationSystem validates and freezes a table. The decision name
// may be empty; if set it must name one of the attributes. Under the
// reject policy every object must define every attribute.
func NewInformationSystem(objects []Object, attributes []Attribute, decision string, policy roughconf.MissingValuePolicy) (*InformationSystem, error) {
	if policy == "" {
		policy = roughconf.MissingReject
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	conditions := len(attributes)
	if decision != "" {
		conditions--
	}
	if len(objects) == 0 || conditions <= 0 {
		return nil, &EmptyDatasetError{Objects: len(objects), Attributes: conditions}
	}

	attrIndex := map[string]int{}
	for i, a := range attributes {
		if a.Name == "" {
			return nil, &InconsistentSchemaError{Reason: "attribute with empty name"}
		}
		if _, exists := attrIndex[a.Name]; exists {
			return nil, &InconsistentSchemaError{Attribute: a.Name, Reason: "declared twice"}
		}
		attrIndex[a.Name] = i
	}
	if decision != "" {
		if _, exists := attrIndex[decision]; !exists {
			return nil, &InconsistentSchemaError{Attribute: decision, Reason: "decision attribute is not declared"}
		}
	}

	objIndex := map[string]int{}
	for i, o := range objects {
		if o.ID == "" {
			return nil, &InconsistentSchemaError{Reason: fmt.Sprintf("object at position %d has an empty id", i)}
		}
		if _, exists := objIndex[o.ID]; exists {
			return nil, &InconsistentSchemaError{Object: o.ID, Reason: "object id occurs twice"}
		}
		objIndex[o.ID] = i

		for name := range o.Values {
			if _, exists := attrIndex[name]; !exists {
				return nil, &InconsistentSchemaError{Object: o.ID, Attribute: name, Reason: "value for undeclared attribute"}
			}
		}
		if policy == roughconf.MissingReject {
			for _, a := range attributes {
				if _, exists := o.Values[a.Name]; !exists {
					return nil, &MissingValueError{Object: o.ID, Attribute: a.Name}
				}
			}
		}
	}

	return &InformationSystem{
		objects:    slices.Clone(objects),
		objIndex:   objIndex,
		attributes: slices.Clone(attributes),
		attrIndex:  attrIndex,
		decision:   decision,
		policy:     policy,
	}, nil
}

// Objects returns the rows in load order.
func (s *InformationSystem) Objects() []Object { return s.objects }

// ObjectIDs returns all object ids in load order.
func (s *InformationSystem) ObjectIDs() []string {
	ids := make([]string, 0, len(s.objects))
	for _, o := range s.objects {
		ids = append(ids, o.ID)
	}
	return ids
}

func (s *InformationSystem) HasObject(id string) bool {
	_, exists := s.objIndex[id]
	return exists
}

// Universe returns all object ids as a set.
func (s *InformationSystem) Universe() ObjectSet {
	return NewObjectSet(s.ObjectIDs()...)
}

// Attributes returns every declared attribute, decision included.
func (s *InformationSystem) Attributes() []Attribute { return s.attributes }

// AttributeNames returns the names of all attributes in declaration order.
func (s *InformationSystem) AttributeNames() []string {
	names := make([]string, 0, len(s.attributes))
	for _, a := range s.attributes {
		names = append(names, a.Name)
	}
	return names
}

// ConditionNames returns the names of all non-decision attributes in
// declaration order.
func (s *InformationSystem) ConditionNames() []string {
	names := make([]string, 0, len(s.attributes))
	for _, a := range s.attributes {
		if a.Name != s.decision {
			names = append(names, a.Name)
		}
	}
	return names
}

// Decision returns the designated decision attribute name, if any.
func (s *InformationSystem) Decision() (string, bool) {
	return s.decision, s.decision != ""
}

func (s *InformationSystem) Policy() roughconf.MissingValuePolicy { return s.policy }

// HasAttribute reports whether name is declared, decision included.
func (s *InformationSystem) HasAttribute(name string) bool {
	_, exists := s.attrIndex[name]
	return exists
}

// ValueOf returns the stored value of an attribute for an object. An
// undefined value fails with MissingValueError regardless of the
// missing-value policy; the policy only changes how partitioning treats
// the gap, never whether the caller can observe it.
func (s *InformationSystem) ValueOf(objectID, attribute string) (string, error) {
	i, exists := s.objIndex[objectID]
	if !exists {
		return "", fmt.Errorf("object %s does not exist", objectID)
	}
	if _, exists := s.attrIndex[attribute]; !exists {
		return "", fmt.Errorf("attribute %s does not exist", attribute)
	}
	value, exists := s.objects[i].Values[attribute]
	if !exists {
		return "", &MissingValueError{Object: objectID, Attribute: attribute}
	}
	return value, nil
}

// Token returns the comparison key an object contributes to a partition
// over the given attribute. Under the distinct policy an undefined value
// yields a token unique to the object, so it never matches anything.
// Tokens carry their kind as a prefix: a stored value whose text looks
// like a missing marker still compares unequal to one.
func (s *InformationSystem) Token(objectID, attribute string) (string, error) {
	i, exists := s.objIndex[objectID]
	if !exists {
		return "", fmt.Errorf("object %s does not exist", objectID)
	}
	ai, exists := s.attrIndex[attribute]
	if !exists {
		return "", fmt.Errorf("attribute %s does not exist", attribute)
	}
	value, exists := s.objects[i].Values[attribute]
	if !exists {
		if s.policy == roughconf.MissingDistinct {
			return "missing:" + objectID, nil
		}
		return "", &MissingValueError{Object: objectID, Attribute: attribute}
	}
	return "value:" + s.attributes[ai].comparator().Key(value), nil
}

// CheckSubset verifies that every name is a declared attribute.
func (s *InformationSystem) CheckSubset(attributes []string) error {
	for _, name := range attributes {
		if !s.HasAttribute(name) {
			return fmt.Errorf("attribute %s does not exist", name)
		}
	}
	return nil
}

// SubsetKey canonicalizes an attribute subset into an order-independent
// cache key.
func SubsetKey(attributes []string) string {
	sorted := slices.Clone(attributes)
	slices.Sort(sorted)
	key := ""
	for i, name := range sorted {
		if i > 0 {
			key += "\x1f"
		}
		key += name
	}
	return key
}

// SortedNames returns a sorted copy of a set of attribute names.
func SortedNames(set map[string]struct{}) []string {
	names := maps.Keys(set)
	slices.Sort(names)
	return names
}
