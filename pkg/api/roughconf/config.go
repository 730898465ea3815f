package roughconf

import (
	"fmt"
	"time"
)

// MissingValuePolicy controls how undefined attribute values are treated.
type MissingValuePolicy string

const (
	// MissingReject fails construction and lookups on undefined values.
	MissingReject MissingValuePolicy = "reject"
	// MissingDistinct treats an undefined value as different from every
	// other value, including other undefined values.
	MissingDistinct MissingValuePolicy = "distinct"
)

func (p MissingValuePolicy) Validate() error {
	switch p {
	case MissingReject, MissingDistinct:
		return nil
	}
	return fmt.Errorf("unknown missing-value policy %q", string(p))
}

// Strategy selects the reduct search algorithm.
type Strategy string

const (
	StrategyGreedy     Strategy = "greedy"
	StrategyExhaustive Strategy = "exhaustive"
	StrategySAT        Strategy = "sat"
)

func (s Strategy) Validate() error {
	switch s {
	case StrategyGreedy, StrategyExhaustive, StrategySAT:
		return nil
	}
	return fmt.Errorf("unknown search strategy %q", string(s))
}

// Budget bounds an exhaustive reduct search. Zero-valued fields mean
// unlimited. The search stops as soon as any single bound is exceeded
// and marks its result as truncated.
type Budget struct {
	MaxNodes   int           `json:"max-nodes,omitempty"`
	MaxTime    time.Duration `json:"max-time,omitempty"`
	MaxReducts int           `json:"max-reducts,omitempty"`
	// Workers enables data-parallel evaluation of the search frontier.
	// Values below 2 keep the search sequential.
	Workers int `json:"workers,omitempty"`
}

func (b Budget) Unlimited() bool {
	return b.MaxNodes == 0 && b.MaxTime == 0 && b.MaxReducts == 0
}

// Row is one object of a dataset document.
type Row struct {
	ID     string            `json:"id,omitempty"`
	Values map[string]string `json:"values"`
}

// Dataset is the YAML document format accepted as an alternative to
// plain CSV input. Values are categorical strings; numeric columns must
// be discretized before they end up here.
type Dataset struct {
	Name          string             `json:"name,omitempty"`
	Attributes    []string           `json:"attributes"`
	Decision      string             `json:"decision,omitempty"`
	MissingValues MissingValuePolicy `json:"missing-values,omitempty"`
	Rows          []Row              `json:"rows"`
}

// ReductReport is the serializable result of a reduct search.
type ReductReport struct {
	Attributes        []string   `json:"attributes"`
	Strategy          Strategy   `json:"strategy"`
	Reducts           [][]string `json:"reducts"`
	Core              []string   `json:"core,omitempty"`
	InconsistentPairs [][]string `json:"inconsistent-pairs,omitempty"`
	Truncated         bool       `json:"truncated,omitempty"`
	Nodes             int        `json:"nodes,omitempty"`
}
