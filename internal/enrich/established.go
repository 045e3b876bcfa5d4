package enrich

import (
	"regexp"
	"strconv"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// Plausible founding years.
const (
	MinYear = 1800
	MaxYear = 2024
)

var foundedPattern = regexp.MustCompile(`(?i)\b(?:founded|established|opened|built|since|est\.)\s+(?:in\s+)?(\d{4})\b`)

// Established extracts the founding year.
type Established struct {
	Min, Max int
}

func (e *Established) Name() string     { return "established" }
func (e *Established) Fields() []string { return []string{course.FieldEstablished} }

// Derive returns the first in-range year that follows a founding keyword.
// "est. 2099" is out of range and ignored.
func (e *Established) Derive(c *course.Course) []Value {
	for _, m := range foundedPattern.FindAllStringSubmatch(c.Text(), -1) {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if year >= e.Min && year <= e.Max {
			return []Value{{Field: course.FieldEstablished, Value: year}}
		}
	}
	return nil
}
