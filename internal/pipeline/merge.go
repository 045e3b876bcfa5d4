package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// ErrImmutableField is returned when an update targets the record id.
var ErrImmutableField = errors.New("field cannot be updated")

// Update sets one field on one record, or deletes it when Remove is set.
type Update struct {
	ID     string
	Field  string
	Value  interface{}
	Remove bool
}

// Change records a field whose stored value actually changed.
type Change struct {
	ID    string          `json:"id"`
	Field string          `json:"field"`
	Old   json.RawMessage `json:"old,omitempty"`
	New   json.RawMessage `json:"new"`
}

// MergeReport summarizes one Merge call.
type MergeReport struct {
	Applied   int       `json:"applied"`
	Unchanged int       `json:"unchanged"`
	Missing   []string  `json:"missing,omitempty"`
	Changes   []*Change `json:"changes,omitempty"`
}

// Merge applies updates to the catalog in order. An update for an id that is
// not in the catalog is skipped and reported. A value replaces the whole
// field, so a new blurb never interleaves with the old one. Updates that
// leave a field semantically equal do not touch its bytes, which keeps a
// rerun of the same pass byte-identical.
func Merge(cat *course.Catalog, updates []Update) (*MergeReport, error) {
	report := &MergeReport{}

	for _, u := range updates {
		if u.Field == "" || u.Field == course.FieldID {
			return report, fmt.Errorf("%w: %q on %s", ErrImmutableField, u.Field, u.ID)
		}

		c := cat.ByID(u.ID)
		if c == nil {
			report.Missing = append(report.Missing, u.ID)
			continue
		}

		old := c.Raw(u.Field)
		if u.Remove {
			if old == nil {
				report.Unchanged++
				continue
			}
			c.Delete(u.Field)
			report.Applied++
			report.Changes = append(report.Changes, &Change{ID: u.ID, Field: u.Field, Old: old})
			continue
		}

		changed, err := c.Set(u.Field, u.Value)
		if err != nil {
			return report, fmt.Errorf("setting %s on %s: %w", u.Field, u.ID, err)
		}
		if !changed {
			report.Unchanged++
			continue
		}

		report.Applied++
		report.Changes = append(report.Changes, &Change{
			ID:    u.ID,
			Field: u.Field,
			Old:   old,
			New:   c.Raw(u.Field),
		})
	}

	return report, nil
}

// ChangedIDs returns the ids touched by the report's changes, in first-seen
// order.
func (r *MergeReport) ChangedIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, ch := range r.Changes {
		if seen[ch.ID] {
			continue
		}
		seen[ch.ID] = true
		ids = append(ids, ch.ID)
	}
	return ids
}
