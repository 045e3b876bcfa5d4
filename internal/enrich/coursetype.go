package enrich

import (
	"strings"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// DefaultCourseType is used when no keyword fires.
const DefaultCourseType = "parkland"

// DefaultCourseTypes is checked in priority order. Links is vetoed by an
// explicit "parkland" mention.
var DefaultCourseTypes = Table{
	{Value: "links", Triggers: []string{"links", "links-style", "links course", "linksland", "firm, fast", "ground game"}, Unless: []string{"parkland"}},
	{Value: "parkland", Triggers: []string{"parkland", "parkland course", "tree-lined"}},
	{Value: "sandbelt", Triggers: []string{"sandbelt", "sand belt"}},
	{Value: "desert", Triggers: []string{"desert", "desert course", "desertscape", "saguaro", "sonoran"}},
	{Value: "mountain", Triggers: []string{"mountain", "mountains", "mountain course", "high-altitude", "foothills", "elevation"}},
	{Value: "resort", Triggers: []string{"resort", "resort course"}},
	{Value: "championship", Triggers: []string{"championship", "championship course", "championship venue", "u.s. open", "open championship", "pga championship", "masters", "ryder cup"}},
	{Value: "coastal", Triggers: []string{"coastal", "oceanfront", "ocean", "seaside", "clifftop", "cliff", "cliffs"}},
}

// CourseType classifies a course from its name, description and blurb.
type CourseType struct {
	Table   Table
	Default string
}

func (e *CourseType) Name() string     { return "type" }
func (e *CourseType) Fields() []string { return []string{course.FieldType} }

// Derive always yields a type: the first matching category, or the default.
func (e *CourseType) Derive(c *course.Course) []Value {
	text := strings.Join([]string{c.Name(), c.Text()}, " ")
	if t, ok := e.Table.Lookup(text); ok {
		return []Value{{Field: course.FieldType, Value: t}}
	}
	if e.Default == "" {
		return nil
	}
	return []Value{{Field: course.FieldType, Value: e.Default}}
}
