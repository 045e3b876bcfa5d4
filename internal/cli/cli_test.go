package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/golfapi"
	"github.com/pfrederiksen/golf-catalog/internal/igolf"
	"github.com/pfrederiksen/golf-catalog/internal/storage"
)

const cliStore = `[
  {
    "id": "pebble-beach",
    "name": "Pebble Beach Golf Links",
    "location": "Pebble Beach, California",
    "description": "Opened in 1919 on the ocean cliffs."
  },
  {
    "id": "royal-dornoch",
    "name": "Royal Dornoch Golf Club",
    "location": "Dornoch, Scotland",
    "description": "Classic links shaped by Old Tom Morris, founded in 1877."
  }
]
`

const cliCorpus = `Batch 1: The Absolute Icons & Major Venues
Pebble Beach Golf Links
Paragraph 1: Cliffs and sea.
Paragraph 2: The eighth hole.

Royal Dornoch
Paragraph 1: Northern links.
Paragraph 2: Donald Ross grew up here.

Unknown Driving Range
Paragraph 1: Buckets.
Paragraph 2: Balls.
`

// workspace switches to a temp dir holding the store, so the default
// config file and side file paths resolve inside it.
func workspace(t *testing.T, store string) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("courses.json", []byte(store), 0644))
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--store", "courses.json"))
	err := cmd.Execute()
	return out.String(), err
}

func loadStore(t *testing.T) *course.Catalog {
	t.Helper()
	s, err := storage.New("courses.json", "")
	require.NoError(t, err)
	cat, err := s.Load()
	require.NoError(t, err)
	return cat
}

func TestIngest(t *testing.T) {
	workspace(t, cliStore)
	require.NoError(t, os.WriteFile("corpus.txt", []byte(cliCorpus), 0644))

	out, err := runCLI(t, "ingest", "corpus.txt", "--format", "json")
	require.NoError(t, err)

	var result IngestOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.Plan.Entries)
	assert.Len(t, result.Plan.Matched, 2)
	require.Len(t, result.Plan.Unmatched, 1)
	assert.Equal(t, "Unknown Driving Range", result.Plan.Unmatched[0].Name)
	assert.True(t, result.Pass.Written)
	assert.NotEmpty(t, result.Pass.RunID)

	cat := loadStore(t)
	assert.Equal(t, []string{"Northern links.", "Donald Ross grew up here."}, cat.ByID("royal-dornoch").Blurb())
	assert.Equal(t, "Absolute Icons & Major Venues", cat.ByID("pebble-beach").Batch())

	descriptions, err := os.ReadFile("course_descriptions.json")
	require.NoError(t, err)
	assert.Contains(t, string(descriptions), `"royal-dornoch"`)

	// A second run leaves the store byte-identical.
	before, err := os.ReadFile("courses.json")
	require.NoError(t, err)
	_, err = runCLI(t, "ingest", "corpus.txt")
	require.NoError(t, err)
	after, err := os.ReadFile("courses.json")
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestIngest_TextOutput(t *testing.T) {
	workspace(t, cliStore)
	require.NoError(t, os.WriteFile("corpus.txt", []byte(cliCorpus), 0644))

	out, err := runCLI(t, "ingest", "corpus.txt", "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "Matched:   2")
	assert.Contains(t, out, "Unknown Driving Range")
	assert.Contains(t, out, "dry run, not written")

	data, err := os.ReadFile("courses.json")
	require.NoError(t, err)
	assert.Equal(t, cliStore, string(data))
}

func TestIngest_NoCorpus(t *testing.T) {
	workspace(t, cliStore)
	t.Setenv("CATALOG_CORPUS", "")

	_, err := runCLI(t, "ingest")
	assert.ErrorContains(t, err, "no corpus file")
}

func TestEnrich(t *testing.T) {
	workspace(t, cliStore)

	out, err := runCLI(t, "enrich", "continent", "established")
	require.NoError(t, err)
	assert.Contains(t, out, "continent")

	cat := loadStore(t)
	assert.Equal(t, "North America", cat.ByID("pebble-beach").Continent())
	assert.Equal(t, "Europe", cat.ByID("royal-dornoch").Continent())
	year, ok := cat.ByID("royal-dornoch").Established()
	assert.True(t, ok)
	assert.Equal(t, 1877, year)
	assert.False(t, cat.ByID("pebble-beach").Has(course.FieldArchitect))
}

func TestEnrich_UnknownEnricher(t *testing.T) {
	workspace(t, cliStore)

	_, err := runCLI(t, "enrich", "price")
	assert.ErrorContains(t, err, `unknown enricher "price"`)
}

func TestDedupe(t *testing.T) {
	workspace(t, `[
  {"id": "a", "name": "First"},
  {"id": "b", "name": "Second"},
  {"id": "a", "name": "Repeat"}
]`)

	out, err := runCLI(t, "dedupe", "--format", "json")
	require.NoError(t, err)

	var result DedupeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"a"}, result.Removed)

	cat := loadStore(t)
	require.Equal(t, 2, cat.Len())
	assert.Equal(t, "First", cat.ByID("a").Name())
}

func TestIgolfAdd(t *testing.T) {
	workspace(t, cliStore)
	require.NoError(t, os.WriteFile("seeds.yaml", []byte(`
- name: "Brampton Park Golf Club"
  location: "Brampton, England"
  continent: Europe
  type: parkland
  lat: 52.3209
  lng: -0.2206
  desc: "A pleasant parkland course."
`), 0644))

	out, err := runCLI(t, "igolf", "add", "--seeds", "seeds.yaml", "--format", "json")
	require.NoError(t, err)

	var result IgolfOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"igolf-brampton-park-golf-club"}, result.Result.Added)

	cat := loadStore(t)
	assert.Equal(t, 3, cat.Len())
	assert.True(t, igolf.IsIgolf(cat.ByID("igolf-brampton-park-golf-club")))

	out, err = runCLI(t, "igolf", "add", "--seeds", "seeds.yaml", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Empty(t, result.Result.Added)
	assert.Equal(t, []string{"igolf-brampton-park-golf-club"}, result.Result.Skipped)
	assert.Equal(t, 3, loadStore(t).Len())
}

func TestStudio_FromConfig(t *testing.T) {
	workspace(t, cliStore)
	require.NoError(t, os.WriteFile("catalog.yaml", []byte(`
studio:
  ids: [pebble-beach, cypress-point]
  studio_features:
    mapping_type: Lidar
    file_size: 6 GB
`), 0644))

	out, err := runCLI(t, "studio", "--format", "json")
	require.NoError(t, err)

	var result StudioOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"pebble-beach"}, result.Stats.Marked)
	assert.Equal(t, []string{"cypress-point"}, result.Stats.NotFound)

	pebble := loadStore(t).ByID("pebble-beach")
	var studio bool
	require.True(t, pebble.Get(course.FieldIsStudio, &studio))
	assert.True(t, studio)
	var features course.Features
	require.True(t, pebble.Get(course.FieldStudioFeatures, &features))
	assert.Equal(t, "6 GB", features.FileSize)
}

func TestStudio_ArgsReplaceConfig(t *testing.T) {
	workspace(t, cliStore)

	_, err := runCLI(t, "studio", "pebble-beach")
	require.NoError(t, err)

	out, err := runCLI(t, "studio", "royal-dornoch", "--format", "json")
	require.NoError(t, err)

	var result StudioOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"royal-dornoch"}, result.Stats.Marked)
	assert.Equal(t, []string{"pebble-beach"}, result.Stats.Cleared)

	var studio bool
	cat := loadStore(t)
	require.True(t, cat.ByID("pebble-beach").Get(course.FieldIsStudio, &studio))
	assert.False(t, studio)
	assert.True(t, cat.ByID("pebble-beach").Has(course.FieldStudioFeatures))

	out, err = runCLI(t, "studio", "royal-dornoch", "--drop-features")
	require.NoError(t, err)
	assert.Contains(t, out, "Dropped:   1")
	assert.False(t, loadStore(t).ByID("pebble-beach").Has(course.FieldStudioFeatures))
}

func TestStudio_NoIDs(t *testing.T) {
	workspace(t, cliStore)

	_, err := runCLI(t, "studio")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "studio.ids")
}

const checkStore = `[
  {"id": "complete", "name": "Complete", "continent": "Europe", "batch": "One", "blurb": ["First.", "Second."]},
  {"id": "short", "name": "Short", "continent": "Europe", "blurb": ["Only one."]},
  {"id": "none", "name": "None", "continent": "Asia"},
  {"id": "legacy", "name": "Legacy", "continent": "Asia", "blurb": "A single string."},
  {"id": "blank", "name": "Blank", "continent": "Europe", "blurb": ["First.", "  "]},
  {"id": "null", "name": "Null", "continent": "Asia", "blurb": null}
]`

func TestCheck(t *testing.T) {
	workspace(t, checkStore)

	out, err := runCLI(t, "check", "--format", "json")
	require.NoError(t, err)

	var report CheckReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 1, report.Complete)
	assert.Equal(t, []CourseRef{{ID: "none", Name: "None"}, {ID: "null", Name: "Null"}}, report.Missing)
	assert.Equal(t, []IncompleteRef{
		{CourseRef: CourseRef{ID: "short", Name: "Short"}, Reason: "has 1 paragraphs"},
		{CourseRef: CourseRef{ID: "legacy", Name: "Legacy"}, Reason: "not a list of paragraphs"},
		{CourseRef: CourseRef{ID: "blank", Name: "Blank"}, Reason: "paragraph 2 is empty"},
	}, report.Incomplete)
	assert.Equal(t, map[string]int{"One": 1}, report.ByBatch)
	assert.Nil(t, report.SideFile, "no side file on disk")
}

func TestCheck_SideFile(t *testing.T) {
	workspace(t, checkStore)
	require.NoError(t, os.WriteFile("course_descriptions.json", []byte(`{
  "complete": ["First.", "Second."],
  "short": ["Changed."],
  "gone": ["Removed record."]
}`), 0644))

	out, err := runCLI(t, "check", "--format", "json")
	require.NoError(t, err)

	var report CheckReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotNil(t, report.SideFile)
	assert.Equal(t, 3, report.SideFile.Entries)
	assert.Equal(t, []string{"short", "legacy", "blank"}, report.SideFile.Stale)
	assert.Equal(t, []string{"gone"}, report.SideFile.Orphaned)

	out, err = runCLI(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "3 stale, 1 orphaned of 3 entries")
}

func TestCheck_FilterAndSort(t *testing.T) {
	workspace(t, checkStore)

	out, err := runCLI(t, "check", "--filter", "continent=Europe", "--sort", "name")
	require.NoError(t, err)

	assert.Contains(t, out, "Filter: Continents: Europe")
	assert.Contains(t, out, "Total:      3")
	assert.Less(t, strings.Index(out, "blank: Blank"), strings.Index(out, "short: Short"))
	assert.NotContains(t, out, "legacy")
}

func TestCheck_Strict(t *testing.T) {
	workspace(t, checkStore)

	_, err := runCLI(t, "check", "--strict")
	assert.ErrorIs(t, err, errIncomplete)

	_, err = runCLI(t, "check", "--strict", "--filter", "name=complete")
	assert.NoError(t, err)
}

func TestCheck_BadFilter(t *testing.T) {
	workspace(t, checkStore)

	_, err := runCLI(t, "check", "--filter", "price=10")
	assert.ErrorContains(t, err, "unknown filter field")
}

func TestPublish(t *testing.T) {
	dir := workspace(t, cliStore)
	output := filepath.Join(dir, "public", "courses.json")

	out, err := runCLI(t, "publish", "--output", output, "--format", "json")
	require.NoError(t, err)

	var result PublishOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, output, result.Report.Path)
	assert.Equal(t, 2, result.Report.Records)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hasImage": false`)

	// The store itself is not annotated.
	store, err := os.ReadFile("courses.json")
	require.NoError(t, err)
	assert.Equal(t, cliStore, string(store))
}

func TestPublish_NotConfigured(t *testing.T) {
	workspace(t, cliStore)
	t.Setenv("PUBLISH_OUTPUT", "")

	_, err := runCLI(t, "publish")
	assert.ErrorContains(t, err, "no public copy path")
}

func TestYardage(t *testing.T) {
	workspace(t, `[
  {"id": "royal-dornoch", "name": "Royal Dornoch Golf Club", "location": "Dornoch, Scotland"}
]`)

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(golfapi.SearchResult{Courses: []golfapi.CourseInfo{ // nolint:errcheck
			{
				ClubName: "Royal Dornoch Golf Club",
				Location: golfapi.Location{City: "Dornoch", Country: "Scotland", Latitude: 57.8815, Longitude: -4.0266},
				Tees: golfapi.Tees{Male: []golfapi.TeeInfo{
					{TeeName: "Championship", TotalYards: 6748},
				}},
			},
		}})
	}))
	t.Cleanup(server.Close)

	t.Setenv("GOLF_COURSE_API_KEY", "test-api-key")
	t.Setenv("GOLF_COURSE_API_URL", server.URL)
	t.Setenv("GOLF_COURSE_API_CACHE", "cache/course-api.json")

	out, err := runCLI(t, "yardage", "--format", "json")
	require.NoError(t, err)

	var result YardageOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Golf Course API", result.Source)
	assert.Equal(t, 1, result.Stats.FromAPI)
	assert.Equal(t, 1, result.Stats.Coordinates)

	c := loadStore(t).ByID("royal-dornoch")
	yards, ok := c.Yardage()
	assert.True(t, ok)
	assert.Equal(t, 6748, yards)
	lat, lng, ok := c.Coordinates()
	assert.True(t, ok)
	assert.Equal(t, 57.8815, lat)
	assert.Equal(t, -4.0266, lng)

	_, err = os.Stat("cache/course-api.json")
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestInvalidFormat(t *testing.T) {
	workspace(t, cliStore)

	_, err := runCLI(t, "check", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestMissingStore(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := runCLI(t, "enrich")
	assert.ErrorIs(t, err, storage.ErrStoreNotFound)
}

func TestYardage_KnownCoursesWithoutKey(t *testing.T) {
	workspace(t, cliStore)
	t.Setenv("GOLF_COURSE_API_KEY", "")

	out, err := runCLI(t, "yardage", "--format", "json")
	require.NoError(t, err)

	var result YardageOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "known courses", result.Source)
	assert.GreaterOrEqual(t, result.Stats.FromKnown, 1)

	yards, ok := loadStore(t).ByID("pebble-beach").Yardage()
	assert.True(t, ok)
	assert.Equal(t, 6828, yards)
}

func TestYardage_InvalidSource(t *testing.T) {
	workspace(t, cliStore)

	_, err := runCLI(t, "yardage", "--source", "ghin")
	assert.ErrorContains(t, err, "invalid source")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
