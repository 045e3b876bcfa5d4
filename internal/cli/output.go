package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfrederiksen/golf-catalog/internal/igolf"
	"github.com/pfrederiksen/golf-catalog/internal/pipeline"
	"github.com/pfrederiksen/golf-catalog/internal/publish"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Report is a command result that can also render itself as text.
type Report interface {
	writeText(w io.Writer, verbose bool) error
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result Report, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return result.writeText(w, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(result)
}

func heading(w io.Writer, text string) {
	fmt.Fprintln(w, headingStyle.Render(text))
}

// writePass prints the one-line pass summary shared by all store passes.
func writePass(w io.Writer, r *pipeline.Result) {
	if r == nil {
		return
	}
	state := "written"
	if !r.Written {
		state = "dry run, not written"
	}
	fmt.Fprintf(w, "\nStore: %d records, %s %s\n", r.Records, state, mutedStyle.Render("(run "+r.RunID+")"))
}

func writeMerge(w io.Writer, m *pipeline.MergeReport, verbose bool) {
	if m == nil {
		return
	}
	fmt.Fprintf(w, "Updates: %d applied, %d unchanged\n", m.Applied, m.Unchanged)
	if len(m.Missing) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Missing ids: %s", strings.Join(m.Missing, ", "))))
	}
	if verbose {
		for _, c := range m.Changes {
			if c.New == nil {
				fmt.Fprintf(w, "  %s.%s removed\n", c.ID, c.Field)
				continue
			}
			fmt.Fprintf(w, "  %s.%s = %s\n", c.ID, c.Field, c.New)
		}
	}
}

// IngestOutput reports an ingest pass.
type IngestOutput struct {
	Corpus string                `json:"corpus"`
	Plan   *pipeline.IngestPlan  `json:"plan"`
	Merge  *pipeline.MergeReport `json:"merge"`
	Pass   *pipeline.Result      `json:"pass"`
}

func (o *IngestOutput) writeText(w io.Writer, verbose bool) error {
	heading(w, "Ingest "+o.Corpus)
	fmt.Fprintf(w, "  Entries:   %d\n", o.Plan.Entries)
	fmt.Fprintf(w, "  Matched:   %d\n", len(o.Plan.Matched))
	fmt.Fprintf(w, "  Skipped:   %d\n", len(o.Plan.Skipped))
	fmt.Fprintf(w, "  Repeated:  %d\n", len(o.Plan.Repeated))
	fmt.Fprintf(w, "  Unmatched: %d\n", len(o.Plan.Unmatched))

	if verbose && len(o.Plan.Matched) > 0 {
		heading(w, "\nMatched")
		for _, m := range o.Plan.Matched {
			fmt.Fprintf(w, "  %s -> %s (%s)\n", m.Name, m.ID, m.Rule)
		}
	}

	if len(o.Plan.Unmatched) > 0 {
		heading(w, "\nUnmatched")
		for _, u := range o.Plan.Unmatched {
			fmt.Fprintf(w, "  %s %s\n", warnStyle.Render(u.Name), mutedStyle.Render(fmt.Sprintf("(line %d)", u.Line)))
			if len(u.Suggestions) > 0 {
				fmt.Fprintf(w, "       Did you mean: %s\n", strings.Join(u.Suggestions, ", "))
			}
		}
	}

	fmt.Fprintln(w)
	writeMerge(w, o.Merge, verbose)
	writePass(w, o.Pass)
	return nil
}

// EnrichOutput reports an enrich pass.
type EnrichOutput struct {
	Enrichers []string              `json:"enrichers"`
	Stats     *pipeline.EnrichStats `json:"stats"`
	Merge     *pipeline.MergeReport `json:"merge"`
	Pass      *pipeline.Result      `json:"pass"`
}

func (o *EnrichOutput) writeText(w io.Writer, verbose bool) error {
	heading(w, "Enrich")
	for _, name := range o.Enrichers {
		fmt.Fprintf(w, "  %-12s derived %d, not found %d, kept %d\n",
			name, o.Stats.Derived[name], o.Stats.Missed[name], o.Stats.Kept[name])
	}
	fmt.Fprintln(w)
	writeMerge(w, o.Merge, verbose)
	writePass(w, o.Pass)
	return nil
}

// DedupeOutput reports a dedupe pass.
type DedupeOutput struct {
	Removed []string         `json:"removed"`
	Pass    *pipeline.Result `json:"pass"`
}

func (o *DedupeOutput) writeText(w io.Writer, verbose bool) error {
	heading(w, "Dedupe")
	if len(o.Removed) == 0 {
		fmt.Fprintln(w, "No duplicate ids found.")
	} else {
		fmt.Fprintf(w, "Removed %d duplicate records:\n", len(o.Removed))
		for _, id := range o.Removed {
			fmt.Fprintf(w, "  %s\n", id)
		}
	}
	writePass(w, o.Pass)
	return nil
}

// IgolfOutput reports an igolf add pass.
type IgolfOutput struct {
	Seeds  int              `json:"seeds"`
	Result *igolf.Result    `json:"result"`
	Pass   *pipeline.Result `json:"pass"`
}

func (o *IgolfOutput) writeText(w io.Writer, verbose bool) error {
	heading(w, "igolf records")
	fmt.Fprintf(w, "  Seeds:   %d\n", o.Seeds)
	fmt.Fprintf(w, "  Added:   %d\n", len(o.Result.Added))
	fmt.Fprintf(w, "  Skipped: %d (already in store)\n", len(o.Result.Skipped))
	if verbose {
		for _, id := range o.Result.Added {
			fmt.Fprintf(w, "  + %s\n", id)
		}
	}
	writePass(w, o.Pass)
	return nil
}

// YardageOutput reports a yardage pass.
type YardageOutput struct {
	Source string                 `json:"source"`
	Stats  *pipeline.YardageStats `json:"stats"`
	Merge  *pipeline.MergeReport  `json:"merge"`
	Pass   *pipeline.Result       `json:"pass"`
}

func (o *YardageOutput) writeText(w io.Writer, verbose bool) error {
	heading(w, "Yardage ("+o.Source+")")
	fmt.Fprintf(w, "  Already complete: %d\n", o.Stats.Complete)
	fmt.Fprintf(w, "  Lookups:          %d\n", o.Stats.Lookups)
	fmt.Fprintf(w, "  From API:         %d\n", o.Stats.FromAPI)
	fmt.Fprintf(w, "  From known list:  %d\n", o.Stats.FromKnown)
	fmt.Fprintf(w, "  Coordinates:      %d\n", o.Stats.Coordinates)
	fmt.Fprintf(w, "  Not found:        %d\n", len(o.Stats.NotFound))
	if verbose {
		for _, id := range o.Stats.NotFound {
			fmt.Fprintf(w, "    %s\n", mutedStyle.Render(id))
		}
	}
	fmt.Fprintln(w)
	writeMerge(w, o.Merge, verbose)
	writePass(w, o.Pass)
	return nil
}

// StudioOutput reports a studio pass.
type StudioOutput struct {
	Stats *pipeline.StudioStats `json:"stats"`
	Merge *pipeline.MergeReport `json:"merge"`
	Pass  *pipeline.Result      `json:"pass"`
}

func (o *StudioOutput) writeText(w io.Writer, verbose bool) error {
	heading(w, "Studio courses")
	fmt.Fprintf(w, "  Marked:    %d\n", len(o.Stats.Marked))
	fmt.Fprintf(w, "  Cleared:   %d\n", len(o.Stats.Cleared))
	if len(o.Stats.Dropped) > 0 {
		fmt.Fprintf(w, "  Dropped:   %d\n", len(o.Stats.Dropped))
	}
	if len(o.Stats.NotFound) > 0 {
		fmt.Fprintf(w, "  %s\n", warnStyle.Render(fmt.Sprintf("Not found: %d", len(o.Stats.NotFound))))
		for _, id := range o.Stats.NotFound {
			fmt.Fprintf(w, "    %s\n", id)
		}
	}
	if verbose {
		for _, id := range o.Stats.Marked {
			fmt.Fprintf(w, "    %s\n", mutedStyle.Render(id))
		}
	}
	fmt.Fprintln(w)
	writeMerge(w, o.Merge, verbose)
	writePass(w, o.Pass)
	return nil
}

// PublishOutput reports a standalone publish.
type PublishOutput struct {
	Report *publish.Report `json:"report"`
}

func (o *PublishOutput) writeText(w io.Writer, verbose bool) error {
	heading(w, "Publish")
	r := o.Report
	fmt.Fprintf(w, "  Path:        %s\n", r.Path)
	fmt.Fprintf(w, "  Records:     %d\n", r.Records)
	fmt.Fprintf(w, "  With images: %d\n", r.WithImages)
	if r.Compressed != "" {
		fmt.Fprintf(w, "  Compressed:  %s\n", r.Compressed)
	}
	if r.Uploaded {
		fmt.Fprintln(w, "  Uploaded:    yes")
	}
	return nil
}

// CheckReport lists blurb completeness.
type CheckReport struct {
	Filter     string          `json:"filter,omitempty"`
	Total      int             `json:"total"`
	Complete   int             `json:"complete"`
	Missing    []CourseRef     `json:"missing"`
	Incomplete []IncompleteRef `json:"incomplete"`
	ByBatch    map[string]int  `json:"by_batch,omitempty"`
	SideFile   *SideFileReport `json:"side_file,omitempty"`
}

// SideFileReport compares the descriptions side file with the store.
type SideFileReport struct {
	Entries  int      `json:"entries"`
	Stale    []string `json:"stale,omitempty"`
	Orphaned []string `json:"orphaned,omitempty"`
}

// CourseRef names a record.
type CourseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IncompleteRef is a record whose blurb exists but is not two paragraphs.
type IncompleteRef struct {
	CourseRef
	Reason string `json:"reason"`
}

func (r *CheckReport) writeText(w io.Writer, verbose bool) error {
	heading(w, "Blurb completeness")
	if r.Filter != "" {
		fmt.Fprintf(w, "%s\n", mutedStyle.Render("Filter: "+r.Filter))
	}
	fmt.Fprintf(w, "  Total:      %d\n", r.Total)
	fmt.Fprintf(w, "  Complete:   %d\n", r.Complete)
	fmt.Fprintf(w, "  Missing:    %d\n", len(r.Missing))
	fmt.Fprintf(w, "  Incomplete: %d\n", len(r.Incomplete))

	if len(r.Missing) > 0 {
		heading(w, "\nMissing blurb")
		for _, c := range r.Missing {
			fmt.Fprintf(w, "  %s: %s\n", c.ID, c.Name)
		}
	}

	if len(r.Incomplete) > 0 {
		heading(w, "\nIncomplete blurb")
		for _, c := range r.Incomplete {
			fmt.Fprintf(w, "  %s: %s %s\n", c.ID, c.Name, warnStyle.Render("("+c.Reason+")"))
		}
	}

	if verbose && len(r.ByBatch) > 0 {
		heading(w, "\nComplete by batch")
		batches := make([]string, 0, len(r.ByBatch))
		for b := range r.ByBatch {
			batches = append(batches, b)
		}
		sort.Strings(batches)
		for _, b := range batches {
			fmt.Fprintf(w, "  %s: %d\n", b, r.ByBatch[b])
		}
	}

	if sf := r.SideFile; sf != nil && (len(sf.Stale) > 0 || len(sf.Orphaned) > 0) {
		heading(w, "\nDescriptions side file")
		fmt.Fprintf(w, "  %s\n", warnStyle.Render(fmt.Sprintf("%d stale, %d orphaned of %d entries; any write pass regenerates it",
			len(sf.Stale), len(sf.Orphaned), sf.Entries)))
		if verbose {
			for _, id := range sf.Stale {
				fmt.Fprintf(w, "  stale: %s\n", id)
			}
			for _, id := range sf.Orphaned {
				fmt.Fprintf(w, "  orphaned: %s\n", id)
			}
		}
	}

	if len(r.Missing) == 0 && len(r.Incomplete) == 0 {
		fmt.Fprintln(w, "\nAll records have a complete blurb.")
	}
	return nil
}
