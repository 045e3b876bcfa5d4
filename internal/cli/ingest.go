package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/golf-catalog/internal/corpus"
	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/logger"
	"github.com/pfrederiksen/golf-catalog/internal/pipeline"
)

var (
	flagNoBlurb bool
	flagNoBatch bool
)

func newIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [corpus-file]",
		Short: "Attach corpus descriptions and batch tags to matching records",
		Long: `Parse a description corpus (plain text or HTML), match each entry to a
record by name and store its two paragraphs as the record's blurb. Entries
below a batch header also tag the record with the batch label.

The corpus file defaults to corpus.path from the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().BoolVar(&flagNoBlurb, "no-blurb", false, "Do not write blurbs")
	cmd.Flags().BoolVar(&flagNoBatch, "no-batch", false, "Do not write batch tags")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	path := a.cfg.Corpus.Path
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no corpus file given and corpus.path is not configured")
	}

	entries, err := corpus.ParseFile(path, a.cfg.Corpus.Options())
	if err != nil {
		return fmt.Errorf("parsing corpus: %w", err)
	}
	a.log.Info("Corpus parsed", logger.Fields{"path": path, "entries": len(entries)})

	runner, err := a.runner()
	if err != nil {
		return err
	}

	out := &IngestOutput{Corpus: path}
	opts := pipeline.IngestOptions{
		Overrides: a.cfg.MatchOverrides(),
		Matcher:   a.cfg.Matcher,
		SkipBlurb: flagNoBlurb,
		SkipBatch: flagNoBatch,
	}

	out.Pass, err = runner.Run(cmd.Context(), "ingest", func(ctx context.Context, cat *course.Catalog) error {
		out.Plan = pipeline.PlanIngest(cat, entries, opts, a.log)
		var err error
		out.Merge, err = pipeline.Merge(cat, out.Plan.Updates)
		return err
	})
	if err != nil {
		return err
	}

	return WriteOutput(cmd.OutOrStdout(), out, a.format, flagVerbose)
}
