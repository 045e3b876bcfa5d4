package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByStore     SortOrder = "store"
	SortByID        SortOrder = "id"
	SortByName      SortOrder = "name"
	SortByContinent SortOrder = "continent"
	SortByBatch     SortOrder = "batch"
)

// parseSortOrder validates a --sort value.
func parseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	switch order {
	case "":
		return SortByStore, nil
	case SortByStore, SortByID, SortByName, SortByContinent, SortByBatch:
		return order, nil
	}
	return "", fmt.Errorf("invalid sort order: %s (must be store, id, name, continent or batch)", s)
}

// sortCourses returns the records in the requested order. Store order is
// returned as is; the input slice is never reordered.
func sortCourses(courses []*course.Course, order SortOrder) []*course.Course {
	if order == SortByStore || order == "" {
		return courses
	}

	sorted := make([]*course.Course, len(courses))
	copy(sorted, courses)

	switch order {
	case SortByID:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ID() < sorted[j].ID()
		})
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return compareByName(sorted[i], sorted[j])
		})
	case SortByContinent:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Continent() != sorted[j].Continent() {
				return lessBlankLast(sorted[i].Continent(), sorted[j].Continent())
			}
			// If continents are equal, sort by name
			return compareByName(sorted[i], sorted[j])
		})
	case SortByBatch:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Batch() != sorted[j].Batch() {
				return lessBlankLast(sorted[i].Batch(), sorted[j].Batch())
			}
			return compareByName(sorted[i], sorted[j])
		})
	}
	return sorted
}

// compareByName compares two records by name, case-insensitively, then id.
func compareByName(i, j *course.Course) bool {
	ni, nj := strings.ToLower(i.Name()), strings.ToLower(j.Name())
	if ni != nj {
		return ni < nj
	}
	return i.ID() < j.ID()
}

// lessBlankLast orders values alphabetically with empty values last.
func lessBlankLast(a, b string) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	return a < b
}
