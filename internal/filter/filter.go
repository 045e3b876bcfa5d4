// Package filter selects course records for reports.
//
// A filter combines criteria; a record must pass every active criterion:
//   - Names and locations (substring matching, case-insensitive)
//   - Continents, types, batches and categories (exact, case-insensitive)
//   - Founding year range
//   - Records missing a complete two-paragraph blurb
//   - Excluding generated igolf records
//
// Example usage:
//
//	f, err := filter.Parse("continent=Europe; type=links; established=1890-1930")
//	selected := f.Apply(cat.Courses)
package filter

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/igolf"
)

// Filter represents record selection criteria
type Filter struct {
	// Name filtering (case-insensitive substring match)
	Names []string `json:"names,omitempty"`

	// Location filtering (case-insensitive substring match)
	Locations []string `json:"locations,omitempty"`

	// Exact, case-insensitive matches on derived fields
	Continents []string `json:"continents,omitempty"`
	Types      []string `json:"types,omitempty"`
	Batches    []string `json:"batches,omitempty"`
	Categories []string `json:"categories,omitempty"`

	// Founding year range, inclusive; zero means open
	EstablishedFrom int `json:"established_from,omitempty"`
	EstablishedTo   int `json:"established_to,omitempty"`

	// Only records without a complete blurb
	IncompleteBlurb bool `json:"incomplete_blurb,omitempty"`

	// Drop generated igolf records
	ExcludeIgolf bool `json:"exclude_igolf,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all records until criteria are added.
func NewFilter() *Filter {
	return &Filter{}
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.Names) == 0 &&
		len(f.Locations) == 0 &&
		len(f.Continents) == 0 &&
		len(f.Types) == 0 &&
		len(f.Batches) == 0 &&
		len(f.Categories) == 0 &&
		f.EstablishedFrom == 0 &&
		f.EstablishedTo == 0 &&
		!f.IncompleteBlurb &&
		!f.ExcludeIgolf
}

// Matches checks if a record matches all active filter criteria.
// An empty filter matches all records. A year range never matches a record
// without a founding year.
func (f *Filter) Matches(c *course.Course) bool {
	if f.IsEmpty() {
		return true
	}

	if !containsAny(c.Name(), f.Names) {
		return false
	}
	if !containsAny(c.Location(), f.Locations) {
		return false
	}
	if !equalsAny(c.Continent(), f.Continents) {
		return false
	}
	if !equalsAny(c.Type(), f.Types) {
		return false
	}
	if !equalsAny(c.Batch(), f.Batches) {
		return false
	}
	if !equalsAny(c.Category(), f.Categories) {
		return false
	}

	if f.EstablishedFrom != 0 || f.EstablishedTo != 0 {
		year, ok := c.Established()
		if !ok {
			return false
		}
		if f.EstablishedFrom != 0 && year < f.EstablishedFrom {
			return false
		}
		if f.EstablishedTo != 0 && year > f.EstablishedTo {
			return false
		}
	}

	if f.IncompleteBlurb && BlurbComplete(c) {
		return false
	}

	if f.ExcludeIgolf && igolf.IsIgolf(c) {
		return false
	}

	return true
}

// BlurbComplete reports whether the record has two non-empty paragraphs.
func BlurbComplete(c *course.Course) bool {
	blurb := c.Blurb()
	if len(blurb) != 2 {
		return false
	}
	return strings.TrimSpace(blurb[0]) != "" && strings.TrimSpace(blurb[1]) != ""
}

// containsAny reports whether value contains one of the needles. No needles
// always matches.
func containsAny(value string, needles []string) bool {
	if len(needles) == 0 {
		return true
	}
	lower := strings.ToLower(value)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func equalsAny(value string, options []string) bool {
	if len(options) == 0 {
		return true
	}
	for _, o := range options {
		if strings.EqualFold(value, o) {
			return true
		}
	}
	return false
}

// Apply returns the matching records in order.
// If the filter is empty, returns the original list unchanged.
func (f *Filter) Apply(courses []*course.Course) []*course.Course {
	if f.IsEmpty() {
		return courses
	}

	var filtered []*course.Course
	for _, c := range courses {
		if f.Matches(c) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: "Continents: Europe | Types: links | Established: 1890-1930"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if len(f.Names) > 0 {
		parts = append(parts, fmt.Sprintf("Names: %s", strings.Join(f.Names, ", ")))
	}
	if len(f.Locations) > 0 {
		parts = append(parts, fmt.Sprintf("Locations: %s", strings.Join(f.Locations, ", ")))
	}
	if len(f.Continents) > 0 {
		parts = append(parts, fmt.Sprintf("Continents: %s", strings.Join(f.Continents, ", ")))
	}
	if len(f.Types) > 0 {
		parts = append(parts, fmt.Sprintf("Types: %s", strings.Join(f.Types, ", ")))
	}
	if len(f.Batches) > 0 {
		parts = append(parts, fmt.Sprintf("Batches: %s", strings.Join(f.Batches, ", ")))
	}
	if len(f.Categories) > 0 {
		parts = append(parts, fmt.Sprintf("Categories: %s", strings.Join(f.Categories, ", ")))
	}

	switch {
	case f.EstablishedFrom != 0 && f.EstablishedTo != 0:
		parts = append(parts, fmt.Sprintf("Established: %d-%d", f.EstablishedFrom, f.EstablishedTo))
	case f.EstablishedFrom != 0:
		parts = append(parts, fmt.Sprintf("Established: from %d", f.EstablishedFrom))
	case f.EstablishedTo != 0:
		parts = append(parts, fmt.Sprintf("Established: until %d", f.EstablishedTo))
	}

	if f.IncompleteBlurb {
		parts = append(parts, "Incomplete blurb")
	}
	if f.ExcludeIgolf {
		parts = append(parts, "No igolf")
	}

	return strings.Join(parts, " | ")
}

// Clone creates a deep copy of the filter.
func (f *Filter) Clone() *Filter {
	clone := *f
	clone.Names = cloneStrings(f.Names)
	clone.Locations = cloneStrings(f.Locations)
	clone.Continents = cloneStrings(f.Continents)
	clone.Types = cloneStrings(f.Types)
	clone.Batches = cloneStrings(f.Batches)
	clone.Categories = cloneStrings(f.Categories)
	return &clone
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
