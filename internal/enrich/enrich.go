package enrich

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// Value is one derived field.
type Value struct {
	Field string
	Value interface{}
}

// Enricher derives field values from a record's own text. Derive returns
// nil when it finds nothing; it never invents a value and never fails.
type Enricher interface {
	Name() string
	Fields() []string
	Derive(c *course.Course) []Value
}

// Tables holds the lookup data the default enrichers use. Any nil table
// falls back to the built-in default.
type Tables struct {
	Architects  Table         `yaml:"architects"`
	Continents  Table         `yaml:"continents"`
	CourseTypes Table         `yaml:"course_types"`
	Places      []Place       `yaml:"places"`
	Regions     []RegionPoint `yaml:"regions"`
}

// Set builds the named enrichers.
type Set map[string]Enricher

// NewSet builds every enricher from tables, filling gaps with defaults.
func NewSet(t Tables) Set {
	if t.Architects == nil {
		t.Architects = DefaultArchitects
	}
	if t.Continents == nil {
		t.Continents = DefaultContinents
	}
	if t.CourseTypes == nil {
		t.CourseTypes = DefaultCourseTypes
	}
	if t.Places == nil {
		t.Places = DefaultPlaces
	}
	if t.Regions == nil {
		t.Regions = DefaultRegions
	}

	enrichers := []Enricher{
		&Architect{Table: t.Architects},
		&Established{Min: MinYear, Max: MaxYear},
		&Continent{Table: t.Continents},
		&CourseType{Table: t.CourseTypes, Default: DefaultCourseType},
		&Coordinates{Places: t.Places, Regions: t.Regions},
	}

	set := make(Set, len(enrichers))
	for _, e := range enrichers {
		set[e.Name()] = e
	}
	return set
}

// Names returns the enricher names in a stable order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the named enrichers in the given order. No names selects
// all of them.
func (s Set) Select(names ...string) ([]Enricher, error) {
	if len(names) == 0 {
		names = s.Names()
	}

	out := make([]Enricher, 0, len(names))
	for _, name := range names {
		e, ok := s[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown enricher %q (available: %s)", name, strings.Join(s.Names(), ", "))
		}
		out = append(out, e)
	}
	return out, nil
}

// Unset reports whether none of the enricher's fields are set on c.
func Unset(e Enricher, c *course.Course) bool {
	for _, f := range e.Fields() {
		if c.Has(f) {
			return false
		}
	}
	return true
}
