package cli

import (
	"testing"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

func sortFixture(t *testing.T) []*course.Course {
	t.Helper()
	rows := []struct{ id, name, continent, batch string }{
		{"c", "carnoustie", "Europe", "B"},
		{"a", "Augusta National", "North America", ""},
		{"b", "Barnbougle Dunes", "", "A"},
		{"d", "Durban Country Club", "Africa", "A"},
	}
	var out []*course.Course
	for _, r := range rows {
		c := course.New(r.id)
		for field, v := range map[string]string{
			course.FieldName:      r.name,
			course.FieldContinent: r.continent,
			course.FieldBatch:     r.batch,
		} {
			if v == "" {
				continue
			}
			if _, err := c.Set(field, v); err != nil {
				t.Fatalf("Set(%q) error = %v", field, err)
			}
		}
		out = append(out, c)
	}
	return out
}

func ids(courses []*course.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID()
	}
	return out
}

func TestSortCourses(t *testing.T) {
	tests := []struct {
		order SortOrder
		want  []string
	}{
		{SortByStore, []string{"c", "a", "b", "d"}},
		{SortByID, []string{"a", "b", "c", "d"}},
		{SortByName, []string{"a", "b", "c", "d"}},
		{SortByContinent, []string{"d", "c", "a", "b"}},
		{SortByBatch, []string{"b", "d", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			courses := sortFixture(t)
			got := ids(sortCourses(courses, tt.order))
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("sortCourses(%s) = %v, want %v", tt.order, got, tt.want)
				}
			}
			if first := courses[0].ID(); first != "c" {
				t.Errorf("input reordered: first = %s, want c", first)
			}
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    SortOrder
		wantErr bool
	}{
		{input: "", want: SortByStore},
		{input: "Name", want: SortByName},
		{input: " continent ", want: SortByContinent},
		{input: "date", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseSortOrder(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSortOrder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSortOrder(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
