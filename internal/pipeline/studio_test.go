package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

func TestPlanStudio(t *testing.T) {
	cat := loadCatalog(t, testStore)
	cat.ByID("bethpage-black").Set(course.FieldIsStudio, true) // nolint:errcheck

	updates, stats := PlanStudio(cat, StudioConfig{IDs: []string{"pebble-beach", "cabot-cliffs", "pebble-beach"}})

	assert.Equal(t, []string{"pebble-beach"}, stats.Marked)
	assert.Equal(t, []string{"bethpage-black"}, stats.Cleared)
	assert.Equal(t, []string{"cabot-cliffs"}, stats.NotFound)

	report, err := Merge(cat, updates)
	require.NoError(t, err)
	assert.Empty(t, report.Missing)

	pebble := cat.ByID("pebble-beach")
	var studio, standard bool
	assert.True(t, pebble.Get(course.FieldIsStudio, &studio))
	assert.True(t, studio)
	assert.True(t, pebble.Get(course.FieldHasStandardVersion, &standard))
	assert.True(t, standard)

	var features course.Features
	require.True(t, pebble.Get(course.FieldStudioFeatures, &features))
	assert.Equal(t, DefaultStudioFeatures, features)
	require.True(t, pebble.Get(course.FieldStandardFeatures, &features))
	assert.Equal(t, "Satellite", features.MappingType)

	var cleared bool
	assert.True(t, cat.ByID("bethpage-black").Get(course.FieldIsStudio, &cleared))
	assert.False(t, cleared)
	assert.False(t, cat.ByID("whistling-straits-irish").Has(course.FieldIsStudio))
}

func TestPlanStudio_RerunIsNoOp(t *testing.T) {
	cat := loadCatalog(t, testStore)
	cfg := StudioConfig{
		IDs:    []string{"whistling-straits-irish"},
		Studio: course.Features{MappingType: "Photogrammetry"},
	}

	updates, _ := PlanStudio(cat, cfg)
	_, err := Merge(cat, updates)
	require.NoError(t, err)
	before, _ := json.Marshal(cat)

	updates, stats := PlanStudio(cat, cfg)
	report, err := Merge(cat, updates)
	require.NoError(t, err)
	assert.Zero(t, report.Applied)
	assert.Empty(t, stats.Cleared)

	after, _ := json.Marshal(cat)
	assert.Equal(t, string(before), string(after))

	var features course.Features
	require.True(t, cat.ByID("whistling-straits-irish").Get(course.FieldStudioFeatures, &features))
	assert.Equal(t, "Photogrammetry", features.MappingType)
}

func TestPlanStudio_DropFeatures(t *testing.T) {
	cat := loadCatalog(t, `[
  {"id": "old-studio", "name": "Old", "isStudio": true, "hasStandardVersion": true,
   "studioFeatures": {"mappingType": "Lidar"}, "standardFeatures": {"mappingType": "Satellite"}},
  {"id": "igolf-x", "name": "X", "isIgolf": true, "isStudio": false, "hasStandardVersion": false},
  {"id": "new-studio", "name": "New"}
]`)

	updates, stats := PlanStudio(cat, StudioConfig{IDs: []string{"new-studio"}, DropFeatures: true})
	assert.Equal(t, []string{"old-studio"}, stats.Cleared)
	assert.Equal(t, []string{"old-studio"}, stats.Dropped)

	report, err := Merge(cat, updates)
	require.NoError(t, err)

	old := cat.ByID("old-studio")
	assert.Equal(t, []string{"id", "name", "isStudio"}, old.Keys())
	assert.True(t, cat.ByID("igolf-x").Has(course.FieldHasStandardVersion))

	removed := 0
	for _, ch := range report.Changes {
		if ch.ID == "old-studio" && ch.New == nil {
			removed++
			assert.NotNil(t, ch.Old)
		}
	}
	assert.Equal(t, 3, removed)

	// Nothing left to drop on a rerun.
	updates, stats = PlanStudio(cat, StudioConfig{IDs: []string{"new-studio"}, DropFeatures: true})
	assert.Empty(t, stats.Dropped)
	report, err = Merge(cat, updates)
	require.NoError(t, err)
	assert.Zero(t, report.Applied)
}
