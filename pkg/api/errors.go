package api

import (
	"fmt"
	"strings"
)

// EmptyDatasetError is returned when a system is constructed with no
// objects or no condition attributes.
type EmptyDatasetError struct {
	Objects    int
	Attributes int
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("empty dataset: %d objects, %d condition attributes", e.Objects, e.Attributes)
}

// InconsistentSchemaError is returned when objects and attributes do not
// line up, for example a value for an undeclared attribute.
type InconsistentSchemaError struct {
	Object    string
	Attribute string
	Reason    string
}

func (e *InconsistentSchemaError) Error() string {
	msg := "inconsistent schema"
	if e.Object != "" {
		msg += fmt.Sprintf(", object %s", e.Object)
	}
	if e.Attribute != "" {
		msg += fmt.Sprintf(", attribute %s", e.Attribute)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// MissingValueError is returned when an object does not define a value
// for an attribute and the reject policy is active.
type MissingValueError struct {
	Object    string
	Attribute string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("object %s has no value for attribute %s", e.Object, e.Attribute)
}

// ObjectPair is an unordered pair of object ids in canonical order.
type ObjectPair struct {
	A string
	B string
}

// NewObjectPair normalizes the pair so that A sorts before B.
func NewObjectPair(a, b string) ObjectPair {
	if b < a {
		a, b = b, a
	}
	return ObjectPair{A: a, B: b}
}

func (p ObjectPair) String() string {
	return fmt.Sprintf("(%s, %s)", p.A, p.B)
}

// InconsistentDataError reports object pairs which share every condition
// value but fall into different decision classes. It is a diagnostic
// carried alongside results: the pairs bound the best reachable reduct
// quality, they do not abort the computation.
type InconsistentDataError struct {
	Pairs []ObjectPair
}

func (e *InconsistentDataError) Error() string {
	pairs := make([]string, 0, len(e.Pairs))
	for _, p := range e.Pairs {
		pairs = append(pairs, p.String())
	}
	return fmt.Sprintf("inconsistent data: %d object pairs agree on all condition attributes but differ in decision: %s",
		len(e.Pairs), strings.Join(pairs, ", "))
}

// NoReductExistsError is returned when even the full attribute set fails
// to discern some pair that the matrix requires to be discerned. With
// inconsistent pairs diverted into diagnostics this cannot happen, so an
// occurrence points at an internal invariant violation rather than at
// the data.
type NoReductExistsError struct {
	Attributes []string
	Pair       ObjectPair
}

func (e *NoReductExistsError) Error() string {
	return fmt.Sprintf("no reduct exists: pair %s cannot be discerned by any of the attributes %v", e.Pair, e.Attributes)
}
