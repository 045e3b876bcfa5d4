package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/enrich"
	"github.com/pfrederiksen/golf-catalog/internal/pipeline"
)

var flagOverwrite bool

func newEnrichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich [enricher...]",
		Short: "Derive architect, founding year, continent, type and coordinates",
		Long: `Derive missing fields from each record's own name, location, description
and blurb. Without arguments every enricher runs:

  architect    designer named in the text
  established  founding year ("founded in 1921")
  continent    continent of the location
  type         links, parkland, sandbelt, desert, ...
  coordinates  latitude and longitude of a known place or region

Fields that are already set are kept unless --overwrite is given.`,
		RunE: runEnrich,
	}

	cmd.Flags().BoolVar(&flagOverwrite, "overwrite", false, "Recompute fields that are already set")

	return cmd
}

func runEnrich(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	set := enrich.NewSet(a.cfg.Enrich)
	enrichers, err := set.Select(args...)
	if err != nil {
		return err
	}

	runner, err := a.runner()
	if err != nil {
		return err
	}

	out := &EnrichOutput{}
	for _, e := range enrichers {
		out.Enrichers = append(out.Enrichers, e.Name())
	}

	out.Pass, err = runner.Run(cmd.Context(), "enrich", func(ctx context.Context, cat *course.Catalog) error {
		var updates []pipeline.Update
		updates, out.Stats = pipeline.PlanEnrich(cat, enrichers, flagOverwrite)
		var err error
		out.Merge, err = pipeline.Merge(cat, updates)
		return err
	})
	if err != nil {
		return err
	}

	return WriteOutput(cmd.OutOrStdout(), out, a.format, flagVerbose)
}
