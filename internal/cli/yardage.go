package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/golfapi"
	"github.com/pfrederiksen/golf-catalog/internal/logger"
	"github.com/pfrederiksen/golf-catalog/internal/pipeline"
	"github.com/pfrederiksen/golf-catalog/internal/storage"
)

// Lookup sources for the yardage command.
const (
	SourceAPI  = "api"
	SourceUSGA = "usga"
)

var flagSource string

func newYardageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yardage",
		Short: "Fill missing yardage and coordinates from a course directory",
		Long: `Look up records without a yardage or coordinates and fill them from the
championship (or longest men's) tee.

Sources:
  api   Golf Course API; needs GOLF_COURSE_API_KEY. Without a key only the
        built-in list of well-known courses is used.
  usga  USGA Course Rating Database; US courses only, yardage only.

Answers are cached on disk.`,
		Args: cobra.NoArgs,
		RunE: runYardage,
	}

	cmd.Flags().StringVar(&flagSource, "source", SourceAPI, "Lookup source: api or usga")

	return cmd
}

func runYardage(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	source := strings.ToLower(strings.TrimSpace(flagSource))
	if source != SourceAPI && source != SourceUSGA {
		return fmt.Errorf("invalid source: %s (must be 'api' or 'usga')", flagSource)
	}

	out := &YardageOutput{Source: "known courses"}

	var finder pipeline.CourseFinder
	var cache *golfapi.Cache
	var cachePath string
	if source == SourceUSGA || a.cfg.GolfAPI.APIKey != "" {
		cachePath, err = storage.ExpandHome(a.cfg.GolfAPI.CachePath)
		if err != nil {
			return err
		}
		if source == SourceUSGA {
			cachePath = strings.TrimSuffix(cachePath, ".json") + "-usga.json"
		}
		cache, err = golfapi.LoadCache(cachePath)
		if err != nil {
			return err
		}
		removed := cache.CleanExpired()
		a.log.Debug("Lookup cache loaded", logger.Fields{"path": cachePath, "entries": cache.Size(), "expired": removed})
	}

	switch {
	case source == SourceUSGA:
		finder = golfapi.NewUSGAClient().
			WithTimeout(a.cfg.GolfAPI.Timeout).
			WithCache(cache)
		out.Source = "USGA Course Rating Database"
	case a.cfg.GolfAPI.APIKey != "":
		client := golfapi.NewClient(a.cfg.GolfAPI.APIKey).
			WithTimeout(a.cfg.GolfAPI.Timeout).
			WithCache(cache)
		if a.cfg.GolfAPI.BaseURL != "" {
			client = client.WithBaseURL(a.cfg.GolfAPI.BaseURL)
		}
		finder = client
		out.Source = "Golf Course API"
	default:
		a.log.Info("GOLF_COURSE_API_KEY not set, using known courses only", nil)
	}

	runner, err := a.runner()
	if err != nil {
		return err
	}

	out.Pass, err = runner.Run(cmd.Context(), "yardage", func(ctx context.Context, cat *course.Catalog) error {
		updates, stats, err := pipeline.PlanYardage(ctx, cat, finder, a.log)
		out.Stats = stats
		if err != nil {
			return err
		}
		out.Merge, err = pipeline.Merge(cat, updates)
		return err
	})

	// Lookups already paid for are kept even when the pass fails.
	if cache != nil && !flagDryRun {
		if saveErr := cache.Save(cachePath); saveErr != nil {
			a.log.Warn("Failed to save lookup cache", logger.Fields{"path": cachePath, "error": saveErr.Error()})
		}
	}
	if err != nil {
		return err
	}

	return WriteOutput(cmd.OutOrStdout(), out, a.format, flagVerbose)
}
