package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/logger"
	"github.com/pfrederiksen/golf-catalog/internal/pipeline"
)

var flagDropFeatures bool

func newStudioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studio [id...]",
		Short: "Mark studio courses",
		Long: `Mark the given record ids as studio courses. Each one gets isStudio,
hasStandardVersion and the studio and standard feature blocks. Records not
in the list lose their isStudio flag.

Without arguments the ids from studio.ids in the config are used.
--drop-features also removes the feature blocks from former studio courses.`,
		RunE: runStudio,
	}

	cmd.Flags().BoolVar(&flagDropFeatures, "drop-features", false, "Remove feature blocks from courses no longer in the list")

	return cmd
}

func runStudio(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	cfg := a.cfg.Studio
	if len(args) > 0 {
		cfg.IDs = args
	}
	if flagDropFeatures {
		cfg.DropFeatures = true
	}
	if len(cfg.IDs) == 0 {
		return errors.New("no studio ids given and studio.ids is not configured")
	}

	runner, err := a.runner()
	if err != nil {
		return err
	}

	out := &StudioOutput{}
	out.Pass, err = runner.Run(cmd.Context(), "studio", func(ctx context.Context, cat *course.Catalog) error {
		var updates []pipeline.Update
		updates, out.Stats = pipeline.PlanStudio(cat, cfg)
		for _, id := range out.Stats.NotFound {
			a.log.Warn("Studio id not in store", logger.Fields{"id": id})
		}
		var err error
		out.Merge, err = pipeline.Merge(cat, updates)
		return err
	})
	if err != nil {
		return err
	}

	return WriteOutput(cmd.OutOrStdout(), out, a.format, flagVerbose)
}
