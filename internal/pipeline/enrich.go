package pipeline

import (
	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/enrich"
)

// EnrichStats counts derived values per enricher.
type EnrichStats struct {
	Derived map[string]int `json:"derived"`
	Missed  map[string]int `json:"missed"`
	Kept    map[string]int `json:"kept"`
}

// PlanEnrich runs each enricher over every record. Records whose fields are
// already set are left alone unless overwrite is true. Enrichers read only
// the record they derive for.
func PlanEnrich(cat *course.Catalog, enrichers []enrich.Enricher, overwrite bool) ([]Update, *EnrichStats) {
	stats := &EnrichStats{
		Derived: make(map[string]int),
		Missed:  make(map[string]int),
		Kept:    make(map[string]int),
	}

	var updates []Update
	for _, c := range cat.Courses {
		for _, e := range enrichers {
			if !overwrite && !enrich.Unset(e, c) {
				stats.Kept[e.Name()]++
				continue
			}
			values := e.Derive(c)
			if len(values) == 0 {
				stats.Missed[e.Name()]++
				continue
			}
			stats.Derived[e.Name()]++
			for _, v := range values {
				updates = append(updates, Update{ID: c.ID(), Field: v.Field, Value: v.Value})
			}
		}
	}
	return updates, stats
}
