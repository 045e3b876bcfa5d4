package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/igolf"
	"github.com/pfrederiksen/golf-catalog/internal/logger"
)

var flagSeeds string

func newDedupeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe",
		Short: "Remove records whose id appeared earlier in the store",
		Long: `Remove duplicate records from a legacy store. The first record with a
given id is kept; later ones are dropped and listed.`,
		Args: cobra.NoArgs,
		RunE: runDedupe,
	}
}

func runDedupe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	runner, err := a.runner()
	if err != nil {
		return err
	}

	out := &DedupeOutput{}
	out.Pass, err = runner.Run(cmd.Context(), "dedupe", func(ctx context.Context, cat *course.Catalog) error {
		out.Removed = cat.Dedupe()
		for _, id := range out.Removed {
			a.log.Info("Removed duplicate record", logger.Fields{"id": id})
		}
		return nil
	})
	if err != nil {
		return err
	}

	return WriteOutput(cmd.OutOrStdout(), out, a.format, flagVerbose)
}

func newIgolfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "igolf",
		Short: "Manage generated igolf filler records",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add igolf records from a seed file",
		Long: `Generate one igolf record per seed (name, location, continent, type,
coordinates, description). Ids are "igolf-<slug>"; rating and yardage are
derived from the id so reruns produce the same values. Seeds whose id is
already in the store are skipped.

Without --seeds the seed file from the config is used, or the built-in list.`,
		Args: cobra.NoArgs,
		RunE: runIgolfAdd,
	}
	add.Flags().StringVar(&flagSeeds, "seeds", "", "YAML seed file (overrides config)")

	cmd.AddCommand(add)
	return cmd
}

func runIgolfAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	path := a.cfg.Igolf.SeedsPath
	if flagSeeds != "" {
		path = flagSeeds
	}

	var seeds []igolf.Seed
	if path == "" {
		seeds, err = igolf.DefaultSeeds()
	} else {
		seeds, err = igolf.LoadSeeds(path)
	}
	if err != nil {
		return fmt.Errorf("loading seeds: %w", err)
	}

	runner, err := a.runner()
	if err != nil {
		return err
	}

	out := &IgolfOutput{Seeds: len(seeds)}
	out.Pass, err = runner.Run(cmd.Context(), "igolf", func(ctx context.Context, cat *course.Catalog) error {
		var err error
		out.Result, err = igolf.Add(cat, seeds)
		return err
	})
	if err != nil {
		return err
	}

	return WriteOutput(cmd.OutOrStdout(), out, a.format, flagVerbose)
}
