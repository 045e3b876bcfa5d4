package pipeline

import (
	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// DefaultStudioFeatures describes the lidar-mapped studio version.
var DefaultStudioFeatures = course.Features{
	MappingType: "Lidar",
	Accuracy:    "Sub-Centimeter",
	Resolution:  "True 4K Native",
	Physics:     "Advanced Slope Engine",
	FileSize:    "5 GB",
}

// DefaultStandardFeatures describes the standard version shipped next to a
// studio version.
var DefaultStandardFeatures = course.Features{
	MappingType: "Satellite",
	Accuracy:    "1m",
	Resolution:  "HD (1080p)",
	Physics:     "Standard Terrain Model",
	FileSize:    "500 MB",
}

// StudioConfig lists the studio courses. Empty feature blocks use the
// defaults. DropFeatures removes the studio fields from records that are
// not in the list instead of only clearing isStudio.
type StudioConfig struct {
	IDs          []string        `yaml:"ids"`
	Studio       course.Features `yaml:"studio_features"`
	Standard     course.Features `yaml:"standard_features"`
	DropFeatures bool            `yaml:"drop_features"`
}

// studioOnlyFields are removed from former studio courses by DropFeatures.
var studioOnlyFields = []string{
	course.FieldHasStandardVersion,
	course.FieldStudioFeatures,
	course.FieldStandardFeatures,
}

// StudioStats counts what a studio pass changed.
type StudioStats struct {
	Marked   []string `json:"marked"`
	Cleared  []string `json:"cleared,omitempty"`
	Dropped  []string `json:"dropped,omitempty"`
	NotFound []string `json:"not_found,omitempty"`
}

// PlanStudio marks the configured ids as studio courses with a standard
// version and both feature blocks. Any other record still flagged isStudio
// is cleared; its feature blocks are left in place unless DropFeatures is
// set.
func PlanStudio(cat *course.Catalog, cfg StudioConfig) ([]Update, *StudioStats) {
	if cfg.Studio == (course.Features{}) {
		cfg.Studio = DefaultStudioFeatures
	}
	if cfg.Standard == (course.Features{}) {
		cfg.Standard = DefaultStandardFeatures
	}

	stats := &StudioStats{}
	wanted := make(map[string]bool, len(cfg.IDs))
	for _, id := range cfg.IDs {
		if wanted[id] {
			continue
		}
		wanted[id] = true
		if cat.ByID(id) == nil {
			stats.NotFound = append(stats.NotFound, id)
		}
	}

	var updates []Update
	seen := make(map[string]bool)
	for _, c := range cat.Courses {
		id := c.ID()
		if seen[id] {
			continue
		}
		seen[id] = true

		if wanted[id] {
			stats.Marked = append(stats.Marked, id)
			updates = append(updates,
				Update{ID: id, Field: course.FieldIsStudio, Value: true},
				Update{ID: id, Field: course.FieldHasStandardVersion, Value: true},
				Update{ID: id, Field: course.FieldStudioFeatures, Value: cfg.Studio},
				Update{ID: id, Field: course.FieldStandardFeatures, Value: cfg.Standard},
			)
			continue
		}

		var studio bool
		if c.Get(course.FieldIsStudio, &studio) && studio {
			stats.Cleared = append(stats.Cleared, id)
			updates = append(updates, Update{ID: id, Field: course.FieldIsStudio, Value: false})
		}
		// Only former studio courses carry a feature block; igolf records
		// keep their hasStandardVersion flag.
		if !cfg.DropFeatures || (c.Raw(course.FieldStudioFeatures) == nil && c.Raw(course.FieldStandardFeatures) == nil) {
			continue
		}
		stats.Dropped = append(stats.Dropped, id)
		for _, field := range studioOnlyFields {
			if c.Raw(field) != nil {
				updates = append(updates, Update{ID: id, Field: field, Remove: true})
			}
		}
	}
	return updates, stats
}
