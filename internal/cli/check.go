package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/filter"
)

var (
	flagFilter string
	flagSort   string
	flagStrict bool
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report records without a complete two-paragraph blurb",
		Long: `List records whose blurb is missing or is not two non-empty paragraphs.
The store is only read.

Filter criteria are "key=value" pairs separated by ";":
  --filter "continent=Europe; type=links; established=1890-1930; igolf=false"`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&flagFilter, "filter", "", "Only check matching records")
	cmd.Flags().StringVar(&flagSort, "sort", "store", "List order: store, id, name, continent or batch")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "Exit with status 2 when any record is incomplete")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	f, err := filter.Parse(flagFilter)
	if err != nil {
		return fmt.Errorf("parsing filter: %w", err)
	}
	order, err := parseSortOrder(flagSort)
	if err != nil {
		return err
	}

	cat, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("loading store: %w", err)
	}

	selected := sortCourses(f.Apply(cat.Courses), order)
	report := BuildCheckReport(selected)
	if !f.IsEmpty() {
		report.Filter = f.String()
	}

	if path := a.store.DescriptionsPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			side, err := a.store.LoadDescriptions()
			if err != nil {
				return err
			}
			report.SideFile = CompareSideFile(cat, selected, side)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking descriptions file: %w", err)
		}
	}

	if err := WriteOutput(cmd.OutOrStdout(), report, a.format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagStrict && (len(report.Missing) > 0 || len(report.Incomplete) > 0) {
		return errIncomplete
	}
	return nil
}

// BuildCheckReport classifies each record's blurb.
func BuildCheckReport(courses []*course.Course) *CheckReport {
	report := &CheckReport{
		Total:      len(courses),
		Missing:    []CourseRef{},
		Incomplete: []IncompleteRef{},
		ByBatch:    make(map[string]int),
	}

	for _, c := range courses {
		ref := CourseRef{ID: c.ID(), Name: c.Name()}
		reason, missing := blurbProblem(c)
		switch {
		case missing:
			report.Missing = append(report.Missing, ref)
		case reason != "":
			report.Incomplete = append(report.Incomplete, IncompleteRef{CourseRef: ref, Reason: reason})
		default:
			report.Complete++
			batch := c.Batch()
			if batch == "" {
				batch = "(none)"
			}
			report.ByBatch[batch]++
		}
	}
	return report
}

// CompareSideFile lists selected records whose side file entry is missing
// or differs from the stored blurb, and side file ids with no record at all.
func CompareSideFile(cat *course.Catalog, selected []*course.Course, side map[string][]string) *SideFileReport {
	report := &SideFileReport{Entries: len(side)}
	for _, c := range selected {
		blurb := c.Blurb()
		if len(blurb) == 0 {
			continue
		}
		if got, ok := side[c.ID()]; !ok || !slices.Equal(got, blurb) {
			report.Stale = append(report.Stale, c.ID())
		}
	}
	for id := range side {
		if cat.ByID(id) == nil {
			report.Orphaned = append(report.Orphaned, id)
		}
	}
	slices.Sort(report.Orphaned)
	return report
}

// blurbProblem explains why a blurb is not complete. missing is true when
// there is no blurb at all; an empty reason means the blurb is complete.
func blurbProblem(c *course.Course) (reason string, missing bool) {
	if !c.Has(course.FieldBlurb) {
		return "", true
	}

	var paras []string
	if !c.Get(course.FieldBlurb, &paras) {
		if len(c.Blurb()) == 0 {
			return "", true
		}
		return "not a list of paragraphs", false
	}
	if len(paras) == 0 {
		return "", true
	}
	if len(paras) != 2 {
		return fmt.Sprintf("has %d paragraphs", len(paras)), false
	}
	for i, p := range paras {
		if strings.TrimSpace(p) == "" {
			return fmt.Sprintf("paragraph %d is empty", i+1), false
		}
	}
	return "", false
}
