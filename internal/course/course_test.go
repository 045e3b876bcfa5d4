package course

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCourse_RoundTrip(t *testing.T) {
	input := `{"id":"pebble-beach","name":"Pebble Beach Golf Links","rating":4.90,"images":{"hero":"pebble_hero.jpg","additional":[]},"isStudio":true,"notes":"A & B <tee>"}`

	var c Course
	if err := json.Unmarshal([]byte(input), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	got, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(got) != input {
		t.Errorf("MarshalJSON() = %s, want %s", got, input)
	}

	wantKeys := []string{"id", "name", "rating", "images", "isStudio", "notes"}
	if !reflect.DeepEqual(c.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", c.Keys(), wantKeys)
	}
}

func TestCourse_SetAppendsNewKeys(t *testing.T) {
	var c Course
	if err := json.Unmarshal([]byte(`{"id":"a","name":"A"}`), &c); err != nil {
		t.Fatal(err)
	}

	changed, err := c.Set(FieldContinent, "Europe")
	if err != nil || !changed {
		t.Fatalf("Set(continent) = %v, %v, want true, nil", changed, err)
	}
	changed, err = c.Set(FieldName, "A")
	if err != nil || changed {
		t.Errorf("Set(name, same) = %v, %v, want false, nil", changed, err)
	}

	got, _ := c.MarshalJSON()
	want := `{"id":"a","name":"A","continent":"Europe"}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestCourse_SetKeepsEquivalentFormatting(t *testing.T) {
	var c Course
	if err := json.Unmarshal([]byte(`{"id":"a","latitude":36.50}`), &c); err != nil {
		t.Fatal(err)
	}

	changed, _ := c.Set(FieldLatitude, 36.5)
	if changed {
		t.Error("Set(latitude, 36.5) reported a change for 36.50")
	}
	if string(c.Raw(FieldLatitude)) != "36.50" {
		t.Errorf("Raw(latitude) = %s, want 36.50", c.Raw(FieldLatitude))
	}
}

func TestCourse_Accessors(t *testing.T) {
	var c Course
	input := `{"id":"x","blurb":["one","two"],"established":1921,"latitude":1.5,"longitude":-2.5,"architect":null,"description":"Links golf"}`
	if err := json.Unmarshal([]byte(input), &c); err != nil {
		t.Fatal(err)
	}

	if got := c.Blurb(); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("Blurb() = %v", got)
	}
	if year, ok := c.Established(); !ok || year != 1921 {
		t.Errorf("Established() = %d, %v, want 1921, true", year, ok)
	}
	if lat, lng, ok := c.Coordinates(); !ok || lat != 1.5 || lng != -2.5 {
		t.Errorf("Coordinates() = %v, %v, %v", lat, lng, ok)
	}
	if c.Has(FieldArchitect) {
		t.Error("Has(architect) = true for null value")
	}
	if _, ok := c.Yardage(); ok {
		t.Error("Yardage() ok = true for missing key")
	}
	if got := c.Text(); got != "Links golf one two" {
		t.Errorf("Text() = %q", got)
	}
}

func TestCourse_LegacyStringBlurb(t *testing.T) {
	var c Course
	if err := json.Unmarshal([]byte(`{"id":"x","blurb":"single"}`), &c); err != nil {
		t.Fatal(err)
	}
	if got := c.Blurb(); !reflect.DeepEqual(got, []string{"single"}) {
		t.Errorf("Blurb() = %v, want [single]", got)
	}
}

func TestCourse_UnmarshalRejectsNonObject(t *testing.T) {
	var c Course
	err := c.UnmarshalJSON([]byte(`["a"]`))
	if !errors.Is(err, ErrNotObject) {
		t.Errorf("UnmarshalJSON(array) error = %v, want ErrNotObject", err)
	}
}

func TestCourse_Delete(t *testing.T) {
	c := New("a")
	c.Set(FieldName, "A")       // nolint:errcheck
	c.Set(FieldContinent, "Asia") // nolint:errcheck
	c.Delete(FieldName)

	got, _ := c.MarshalJSON()
	if string(got) != `{"id":"a","continent":"Asia"}` {
		t.Errorf("MarshalJSON() after Delete = %s", got)
	}
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		wantErr error
	}{
		{name: "unique", ids: []string{"a", "b", "c"}},
		{name: "duplicate", ids: []string{"a", "b", "a"}, wantErr: ErrDuplicateID},
		{name: "missing id", ids: []string{"a", ""}, wantErr: ErrMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses := make([]*Course, len(tt.ids))
			for i, id := range tt.ids {
				courses[i] = New(id)
			}
			err := NewCatalog(courses).Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalog_DedupeKeepsFirst(t *testing.T) {
	first := New("igolf-a")
	first.Set(FieldName, "first") // nolint:errcheck
	second := New("igolf-a")
	second.Set(FieldName, "second") // nolint:errcheck

	cat := NewCatalog([]*Course{first, New("b"), second, New("b")})
	removed := cat.Dedupe()

	if !reflect.DeepEqual(removed, []string{"igolf-a", "b"}) {
		t.Errorf("Dedupe() removed = %v", removed)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	if got := cat.ByID("igolf-a").Name(); got != "first" {
		t.Errorf("ByID(igolf-a).Name() = %q, want first", got)
	}
	if err := cat.Validate(); err != nil {
		t.Errorf("Validate() after Dedupe = %v", err)
	}
}

func TestCatalog_Add(t *testing.T) {
	cat := NewCatalog([]*Course{New("a")})

	if err := cat.Add(New("b")); err != nil {
		t.Fatalf("Add(b) error = %v", err)
	}
	if err := cat.Add(New("a")); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Add(a) error = %v, want ErrDuplicateID", err)
	}
	if cat.ByID("b") == nil {
		t.Error("ByID(b) = nil after Add")
	}
}

func TestCatalog_MarshalDoesNotEscapeHTML(t *testing.T) {
	c := New("a")
	c.Set(FieldName, "Caledonia Golf & Fish Club") // nolint:errcheck

	data, err := NewCatalog([]*Course{c}).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Golf & Fish") {
		t.Errorf("MarshalJSON() escaped ampersand: %s", data)
	}
}
