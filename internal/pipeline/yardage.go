package pipeline

import (
	"context"
	"errors"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/golfapi"
	"github.com/pfrederiksen/golf-catalog/internal/logger"
)

// CourseFinder looks a course up in an external directory. A nil result
// with a nil error means the directory has no match.
type CourseFinder interface {
	FindBestMatch(ctx context.Context, name, location string) (*golfapi.CourseInfo, error)
}

// YardageStats counts where filled values came from.
type YardageStats struct {
	FromAPI     int      `json:"from_api"`
	FromKnown   int      `json:"from_known"`
	Coordinates int      `json:"coordinates"`
	Complete    int      `json:"complete"`
	Lookups     int      `json:"lookups"`
	NotFound    []string `json:"not_found,omitempty"`
}

// PlanYardage builds updates for records missing a yardage or coordinates.
// The finder is asked first; the offline known-course table fills a
// yardage the finder could not. A nil finder, or one without an API key,
// uses the offline table only. Lookup failures other than cancellation are
// logged and the record is left as it is.
func PlanYardage(ctx context.Context, cat *course.Catalog, finder CourseFinder, log *logger.Logger) ([]Update, *YardageStats, error) {
	if log == nil {
		log = logger.Default()
	}
	stats := &YardageStats{}

	var updates []Update
	for _, c := range cat.Courses {
		_, hasYardage := c.Yardage()
		_, _, hasCoords := c.Coordinates()
		if hasYardage && hasCoords {
			stats.Complete++
			continue
		}

		var info *golfapi.CourseInfo
		if finder != nil {
			stats.Lookups++
			logger.IncrCounter("yardage.lookups")
			var err error
			info, err = finder.FindBestMatch(ctx, c.Name(), c.Location())
			switch {
			case errors.Is(err, golfapi.ErrNoAPIKey):
				log.Warn("No API key, using known courses only", nil)
				finder = nil
			case ctx.Err() != nil:
				return nil, stats, ctx.Err()
			case err != nil:
				log.Warn("Course lookup failed", logger.Fields{"id": c.ID(), "error": err.Error()})
			}
		}

		filled := false
		if info != nil {
			if tee := info.GetBestTee(); !hasYardage && tee != nil && tee.TotalYards > 0 {
				updates = append(updates, Update{ID: c.ID(), Field: course.FieldYardage, Value: tee.TotalYards})
				stats.FromAPI++
				hasYardage, filled = true, true
			}
			if !hasCoords && info.HasCoordinates() {
				updates = append(updates,
					Update{ID: c.ID(), Field: course.FieldLatitude, Value: info.Location.Latitude},
					Update{ID: c.ID(), Field: course.FieldLongitude, Value: info.Location.Longitude},
				)
				stats.Coordinates++
				filled = true
			}
		}

		if !hasYardage {
			if kc := golfapi.LookupKnown(c.Name()); kc != nil {
				updates = append(updates, Update{ID: c.ID(), Field: course.FieldYardage, Value: kc.Yardage})
				stats.FromKnown++
				filled = true
			}
		}

		if !filled {
			stats.NotFound = append(stats.NotFound, c.ID())
			log.Debug("No course facts found", logger.Fields{"id": c.ID(), "name": c.Name()})
		}
	}

	return updates, stats, nil
}
