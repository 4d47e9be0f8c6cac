// SPDX-License-Identifier: MIT
// Package: lvdeadlock/simulator
//
// scenario.go — level definitions, the canned catalog and its YAML form.
//
// YAML layout:
//
//	levels:
//	  - level: 1
//	    description: Two processes, three resource types
//	    max:        [[7, 5, 3], [3, 2, 2]]
//	    allocation: [[0, 1, 0], [2, 0, 0]]
//	    available:  [5, 4, 3]

package simulator

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvdeadlock/banker"
)

// Scenario is the initial matrix state of one level.
type Scenario struct {
	Level       int           `yaml:"level,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Max         banker.Matrix `yaml:"max"`
	Allocation  banker.Matrix `yaml:"allocation"`
	Available   banker.Vector `yaml:"available"`
}

// Processes returns P.
func (s Scenario) Processes() int { return s.Max.Rows() }

// Resources returns R.
func (s Scenario) Resources() int { return s.Max.Cols() }

// Validate checks shapes and ranges via banker.ValidateState.
func (s Scenario) Validate() error {
	return banker.ValidateState(s.Max, s.Allocation, s.Available)
}

// Clone returns a deep copy.
func (s Scenario) Clone() Scenario {
	return Scenario{
		Level:       s.Level,
		Description: s.Description,
		Max:         s.Max.Clone(),
		Allocation:  s.Allocation.Clone(),
		Available:   s.Available.Clone(),
	}
}

// Safety runs the Banker's safety check on the scenario.
func (s Scenario) Safety() banker.SafetyResult {
	return banker.IsSafe(s.Max, s.Allocation, s.Available)
}

// Catalog maps level numbers to canned scenarios. Levels without an entry
// are generated randomly.
type Catalog map[int]Scenario

// DefaultCatalog returns the two canned classroom levels.
//
// Level 1 gives R0..R2 a total supply of [7, 5, 3] so both processes can
// finish (P1 first). Level 2 is the first four processes of the textbook
// five-process example; its safe order is [1, 3, 0, 2].
func DefaultCatalog() Catalog {
	return Catalog{
		1: {
			Level:       1,
			Description: "Basic scenario with 2 processes and 3 resource types",
			Max:         banker.Matrix{{7, 5, 3}, {3, 2, 2}},
			Allocation:  banker.Matrix{{0, 1, 0}, {2, 0, 0}},
			Available:   banker.Vector{5, 4, 3},
		},
		2: {
			Level:       2,
			Description: "Intermediate scenario with 4 processes",
			Max:         banker.Matrix{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}, {2, 2, 2}},
			Allocation:  banker.Matrix{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}},
			Available:   banker.Vector{3, 3, 2},
		},
	}
}

// Levels returns the catalog's level numbers in ascending order.
func (c Catalog) Levels() []int {
	out := make([]int, 0, len(c))
	for l := range c {
		out = append(out, l)
	}
	sort.Ints(out)

	return out
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for l, s := range c {
		out[l] = s.Clone()
	}

	return out
}

// catalogFile is the YAML document shape.
type catalogFile struct {
	Levels []Scenario `yaml:"levels"`
}

// LoadCatalog decodes a YAML catalog and validates every scenario.
// Levels must be >= 1 and unique.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var doc catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}

	c := make(Catalog, len(doc.Levels))
	for k, s := range doc.Levels {
		if s.Level < 1 {
			return nil, fmt.Errorf("LoadCatalog: entry %d: level %d: %w", k, s.Level, ErrBadLevel)
		}
		if _, dup := c[s.Level]; dup {
			return nil, fmt.Errorf("LoadCatalog: entry %d: duplicate level %d: %w", k, s.Level, ErrBadLevel)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("LoadCatalog: level %d: %w", s.Level, err)
		}
		c[s.Level] = s
	}

	return c, nil
}

// LoadCatalogFile opens path and calls LoadCatalog.
func LoadCatalogFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCatalogFile: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// LoadScenario decodes a single YAML scenario document and validates it.
func LoadScenario(r io.Reader) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("LoadScenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("LoadScenario: %w", err)
	}

	return s, nil
}

// LoadScenarioFile opens path and calls LoadScenario.
func LoadScenarioFile(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("LoadScenarioFile: %w", err)
	}
	defer f.Close()

	return LoadScenario(f)
}

// WriteCatalog encodes c as YAML in ascending level order.
func WriteCatalog(w io.Writer, c Catalog) error {
	doc := catalogFile{Levels: make([]Scenario, 0, len(c))}
	for _, l := range c.Levels() {
		s := c[l]
		s.Level = l
		doc.Levels = append(doc.Levels, s)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteCatalog: %w", err)
	}

	return enc.Close()
}
