package course

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate course id")
	// ErrMissingID is returned when a record has no id.
	ErrMissingID = errors.New("course has no id")
)

// Catalog is the ordered set of course records.
type Catalog struct {
	Courses []*Course

	index map[string]int
}

// NewCatalog creates a catalog from records in order.
func NewCatalog(courses []*Course) *Catalog {
	return &Catalog{Courses: courses}
}

// UnmarshalJSON decodes a JSON array of records.
func (cat *Catalog) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("decoding catalog: %w", err)
	}

	courses := make([]*Course, 0, len(raws))
	for i, raw := range raws {
		c := &Course{}
		if err := c.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		courses = append(courses, c)
	}

	cat.Courses = courses
	cat.index = nil
	return nil
}

// MarshalJSON encodes the catalog as a JSON array in record order.
func (cat *Catalog) MarshalJSON() ([]byte, error) {
	// Records are joined by hand: json.Marshal would HTML-escape their text.
	buf := []byte{'['}
	for i, c := range cat.Courses {
		if i > 0 {
			buf = append(buf, ',')
		}
		data, err := c.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		buf = append(buf, data...)
	}
	return append(buf, ']'), nil
}

// Len returns the number of records.
func (cat *Catalog) Len() int {
	return len(cat.Courses)
}

// ByID returns the first record with the given id, or nil.
func (cat *Catalog) ByID(id string) *Course {
	if cat.index == nil {
		cat.reindex()
	}
	if i, ok := cat.index[id]; ok {
		return cat.Courses[i]
	}
	return nil
}

// Add appends a record. It fails if the id is empty or already present.
func (cat *Catalog) Add(c *Course) error {
	id := c.ID()
	if id == "" {
		return ErrMissingID
	}
	if cat.ByID(id) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	cat.Courses = append(cat.Courses, c)
	cat.index[id] = len(cat.Courses) - 1
	return nil
}

// Validate checks that every record has a unique, non-empty id.
func (cat *Catalog) Validate() error {
	seen := make(map[string]int, len(cat.Courses))
	for i, c := range cat.Courses {
		id := c.ID()
		if id == "" {
			return fmt.Errorf("record %d: %w", i, ErrMissingID)
		}
		if first, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s (records %d and %d)", ErrDuplicateID, id, first, i)
		}
		seen[id] = i
	}
	return nil
}

// Dedupe removes records whose id was already seen, keeping the first
// occurrence. It returns the removed ids in order.
func (cat *Catalog) Dedupe() []string {
	seen := make(map[string]bool, len(cat.Courses))
	kept := cat.Courses[:0]
	var removed []string

	for _, c := range cat.Courses {
		id := c.ID()
		if seen[id] {
			removed = append(removed, id)
			continue
		}
		seen[id] = true
		kept = append(kept, c)
	}

	for i := len(kept); i < len(cat.Courses); i++ {
		cat.Courses[i] = nil
	}
	cat.Courses = kept
	cat.index = nil
	return removed
}

// Clone returns a deep copy of the catalog.
func (cat *Catalog) Clone() *Catalog {
	courses := make([]*Course, len(cat.Courses))
	for i, c := range cat.Courses {
		courses[i] = c.Clone()
	}
	return NewCatalog(courses)
}

func (cat *Catalog) reindex() {
	cat.index = make(map[string]int, len(cat.Courses))
	for i, c := range cat.Courses {
		id := c.ID()
		if _, exists := cat.index[id]; !exists {
			cat.index[id] = i
		}
	}
}
