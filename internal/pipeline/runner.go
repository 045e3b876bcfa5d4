package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/logger"
	"github.com/pfrederiksen/golf-catalog/internal/storage"
)

// Publisher regenerates the public copy of the store after a write.
type Publisher interface {
	Publish(ctx context.Context, cat *course.Catalog) error
}

// Mutation changes the loaded catalog in memory.
type Mutation func(ctx context.Context, cat *course.Catalog) error

// Runner performs one read-modify-write cycle over the store.
type Runner struct {
	Store     *storage.Storage
	Publisher Publisher // optional
	Log       *logger.Logger
	DryRun    bool
}

// Result describes a finished pass.
type Result struct {
	RunID    string        `json:"run_id"`
	Pass     string        `json:"pass"`
	Records  int           `json:"records"`
	Written  bool          `json:"written"`
	Duration time.Duration `json:"duration"`
}

// Run loads the store, applies mutate, writes the store back and then
// regenerates the side file and the public copy. Nothing is written when
// loading or mutate fails, or in dry-run mode.
func (r *Runner) Run(ctx context.Context, pass string, mutate Mutation) (*Result, error) {
	runID := uuid.NewString()
	log := r.Log
	if log == nil {
		log = logger.Default()
	}
	log = log.With(logger.Fields{"run_id": runID, "pass": pass})

	start := time.Now()
	result := &Result{RunID: runID, Pass: pass}

	cat, err := r.Store.Load()
	if err != nil {
		log.Error("Failed to load store", logger.Fields{"path": r.Store.StorePath()}, err)
		return nil, fmt.Errorf("loading store: %w", err)
	}
	log.Debug("Store loaded", logger.Fields{"records": cat.Len()})

	if err := mutate(ctx, cat); err != nil {
		log.Error("Pass failed", nil, err)
		return nil, fmt.Errorf("%s: %w", pass, err)
	}
	result.Records = cat.Len()
	logger.SetGauge("store.records", float64(cat.Len()))

	if r.DryRun {
		result.Duration = time.Since(start)
		log.Info("Dry run, store not written", logger.Fields{"records": cat.Len()})
		return result, nil
	}

	if err := r.Store.Save(cat); err != nil {
		log.Error("Failed to write store", logger.Fields{"path": r.Store.StorePath()}, err)
		return nil, err
	}
	result.Written = true

	if err := r.Store.SaveDescriptions(cat); err != nil {
		log.Error("Failed to write descriptions", logger.Fields{"path": r.Store.DescriptionsPath()}, err)
		return result, err
	}

	if r.Publisher != nil {
		if err := r.Publisher.Publish(ctx, cat); err != nil {
			log.Error("Failed to publish", nil, err)
			return result, fmt.Errorf("publishing: %w", err)
		}
	}

	result.Duration = time.Since(start)
	logger.RecordTiming("pass."+pass, result.Duration)
	log.Info("Pass finished", logger.Fields{
		"records":     cat.Len(),
		"duration_ms": result.Duration.Milliseconds(),
	})
	log.Debug("Pass metrics", logger.Fields(logger.GetMetricsSnapshot()))
	return result, nil
}
