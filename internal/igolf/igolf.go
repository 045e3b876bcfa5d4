package igolf

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// Category is the category tag on generated records.
const Category = "igolf"

// Rating and yardage ranges for generated records.
const (
	MinRating  = 3.0
	MaxRating  = 3.8
	MinYardage = 6000
	MaxYardage = 6800
)

//go:embed seeds.yaml
var defaultSeeds []byte

// Seed is the input for one generated record.
type Seed struct {
	Name      string  `yaml:"name"`
	Location  string  `yaml:"location"`
	Continent string  `yaml:"continent"`
	Type      string  `yaml:"type"`
	Lat       float64 `yaml:"lat"`
	Lng       float64 `yaml:"lng"`
	Desc      string  `yaml:"desc"`
}

// DefaultFeatures describes radar-mapped courses.
var DefaultFeatures = course.Features{
	MappingType: "Radar",
	Accuracy:    "+/-5m",
	Resolution:  "Standard",
	Physics:     "Basic Terrain Model",
	FileSize:    "200 MB",
}

// DefaultSeeds returns the built-in seed list.
func DefaultSeeds() ([]Seed, error) {
	return DecodeSeeds(bytes.NewReader(defaultSeeds))
}

// LoadSeeds reads a YAML seed file.
func LoadSeeds(path string) ([]Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seeds: %w", err)
	}
	defer f.Close() // nolint:errcheck

	return DecodeSeeds(f)
}

// DecodeSeeds decodes a YAML list of seeds. Unknown keys are rejected.
func DecodeSeeds(r io.Reader) ([]Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seeds []Seed
	if err := dec.Decode(&seeds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding seeds: %w", err)
	}

	for i, s := range seeds {
		if s.Name == "" {
			return nil, fmt.Errorf("seed %d: name is required", i)
		}
	}
	return seeds, nil
}

// ID returns the record id for a seed name.
func ID(name string) string {
	return "igolf-" + course.Slug(name)
}

// Stats returns the rating and yardage for id. They are derived from the id
// alone, so regenerating a record gives the same numbers.
func Stats(id string) (rating float64, yardage int) {
	h := fnv.New64a()
	h.Write([]byte(id)) // nolint:errcheck
	r := rand.New(rand.NewSource(int64(h.Sum64())))

	rating = MinRating + r.Float64()*(MaxRating-MinRating)
	rating = math.Round(rating*10) / 10
	yardage = MinYardage + r.Intn(MaxYardage-MinYardage+1)
	return rating, yardage
}

// Build creates the record for one seed. Fields the seed leaves out are
// written as null so the enrichers can fill them later; a 0,0 coordinate
// pair counts as left out.
func Build(s Seed) (*course.Course, error) {
	id := ID(s.Name)
	rating, yardage := Stats(id)

	var lat, lng, blurb interface{}
	if s.Lat != 0 || s.Lng != 0 {
		lat, lng = s.Lat, s.Lng
	}
	if strings.TrimSpace(s.Desc) != "" {
		blurb = []string{strings.TrimSpace(s.Desc)}
	}

	c := course.New(id)
	fields := []struct {
		key   string
		value interface{}
	}{
		{course.FieldName, s.Name},
		{course.FieldDescription, optional(s.Desc)},
		{course.FieldLocation, optional(s.Location)},
		{course.FieldRating, rating},
		{course.FieldCategory, Category},
		{course.FieldType, optional(s.Type)},
		{course.FieldContinent, optional(s.Continent)},
		{course.FieldLatitude, lat},
		{course.FieldLongitude, lng},
		{course.FieldYardage, yardage},
		{course.FieldIsIgolf, true},
		{course.FieldHasImage, false},
		{course.FieldIsStudio, false},
		{course.FieldHasStandardVersion, false},
		{course.FieldBlurb, blurb},
		{course.FieldIgolfFeatures, DefaultFeatures},
		{course.FieldImages, map[string]interface{}{"hero": nil, "additional": []string{}}},
		{course.FieldImageURL, nil},
	}
	for _, f := range fields {
		if _, err := c.Set(f.key, f.value); err != nil {
			return nil, fmt.Errorf("building %s: %w", id, err)
		}
	}
	return c, nil
}

// optional returns nil for a blank string.
func optional(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// Result lists what Add did.
type Result struct {
	Added   []string `json:"added"`
	Skipped []string `json:"skipped,omitempty"`
}

// Add appends a record for every seed whose id is not already in the
// catalog. Existing records are never touched.
func Add(cat *course.Catalog, seeds []Seed) (*Result, error) {
	result := &Result{}
	for _, s := range seeds {
		id := ID(s.Name)
		if cat.ByID(id) != nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		c, err := Build(s)
		if err != nil {
			return result, err
		}
		if err := cat.Add(c); err != nil {
			return result, err
		}
		result.Added = append(result.Added, id)
	}
	return result, nil
}

// IsIgolf reports whether a record was generated by this package.
func IsIgolf(c *course.Course) bool {
	var flag bool
	return c.Get(course.FieldIsIgolf, &flag) && flag
}
