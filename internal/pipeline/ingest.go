package pipeline

import (
	"github.com/pfrederiksen/golf-catalog/internal/corpus"
	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/logger"
	"github.com/pfrederiksen/golf-catalog/internal/matcher"
)

// DefaultSuggestions is how many near names an unmatched entry reports.
const DefaultSuggestions = 3

// Unmatched is a corpus entry no rule could resolve.
type Unmatched struct {
	Name        string   `json:"name"`
	Line        int      `json:"line"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Matched is a corpus entry resolved to a record.
type Matched struct {
	Name  string       `json:"name"`
	ID    string       `json:"id"`
	Rule  matcher.Rule `json:"rule"`
	Score float64      `json:"score,omitempty"`
}

// IngestPlan is the outcome of matching corpus entries to the catalog.
type IngestPlan struct {
	Entries   int         `json:"entries"`
	Matched   []Matched   `json:"matched"`
	Skipped   []string    `json:"skipped,omitempty"`
	Repeated  []Matched   `json:"repeated,omitempty"`
	Unmatched []Unmatched `json:"unmatched,omitempty"`
	Updates   []Update    `json:"-"`
}

// IngestOptions configure PlanIngest.
type IngestOptions struct {
	Overrides   map[string]string
	Matcher     matcher.Config
	Suggestions int
	// SkipBlurb and SkipBatch limit which fields the plan writes.
	SkipBlurb bool
	SkipBatch bool
}

// PlanIngest matches each entry against the catalog and builds blurb and
// batch updates. The first entry resolved to an id wins; later entries for
// the same id are reported as repeated. Unmatched entries are logged with
// suggestions and produce no update.
func PlanIngest(cat *course.Catalog, entries []corpus.Entry, opts IngestOptions, log *logger.Logger) *IngestPlan {
	if log == nil {
		log = logger.Default()
	}
	if opts.Suggestions == 0 {
		opts.Suggestions = DefaultSuggestions
	}

	m := matcher.New(cat, opts.Overrides, opts.Matcher)
	plan := &IngestPlan{Entries: len(entries)}
	claimed := make(map[string]bool)

	for _, e := range entries {
		res, ok := m.Match(e.Name)
		if !ok {
			u := Unmatched{Name: e.Name, Line: e.Line, Suggestions: m.Suggest(e.Name, opts.Suggestions)}
			plan.Unmatched = append(plan.Unmatched, u)
			log.Warn("Corpus entry not matched", logger.Fields{
				"name":        e.Name,
				"line":        e.Line,
				"suggestions": u.Suggestions,
			})
			logger.IncrCounter("ingest.unmatched")
			continue
		}
		if res.Skipped() {
			plan.Skipped = append(plan.Skipped, e.Name)
			log.Debug("Corpus entry skipped", logger.Fields{"name": e.Name})
			continue
		}

		match := Matched{Name: e.Name, ID: res.ID, Rule: res.Rule, Score: res.Score}
		if claimed[res.ID] {
			plan.Repeated = append(plan.Repeated, match)
			log.Debug("Course already matched by an earlier entry", logger.Fields{
				"name": e.Name,
				"id":   res.ID,
			})
			continue
		}
		claimed[res.ID] = true
		plan.Matched = append(plan.Matched, match)
		logger.IncrCounter("ingest.matched")

		if !opts.SkipBlurb {
			plan.Updates = append(plan.Updates, Update{ID: res.ID, Field: course.FieldBlurb, Value: e.Blurb()})
		}
		if !opts.SkipBatch && e.Batch != "" {
			plan.Updates = append(plan.Updates, Update{ID: res.ID, Field: course.FieldBatch, Value: e.Batch})
		}
	}

	return plan
}
