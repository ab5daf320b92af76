// Package search runs catalog searches across modules and lessons
package search

import (
	"context"
	"strings"

	"github.com/courseos/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Searcher is the interface that wraps the per-type catalog lookups
type Searcher interface {
	// Method SearchModules retrieve modules whose title or description contains "query", case-insensitively.
	SearchModules(ctx context.Context, query string) ([]models.Module, error)
	// Method SearchLessons retrieve active lessons whose title or description contains "query", case-insensitively.
	SearchLessons(ctx context.Context, query string) ([]models.Lesson, error)
}

// Fanout runs the module and lesson lookups of one query concurrently and merges their hits
type Fanout struct {
	searcher Searcher
	logger   *zap.Logger
}

// NewFanout creates a new search fan-out over "searcher"
func NewFanout(searcher Searcher, logger *zap.Logger) *Fanout {
	return &Fanout{
		searcher: searcher,
		logger:   logger,
	}
}

// Search looks the query up in modules and lessons at the same time.
//
// A blank query returns empty results without any lookup.
// A failed lookup is logged and its group is left empty, so Search never fails.
func (f *Fanout) Search(ctx context.Context, query string) models.SearchResults {
	results := emptyResults()
	query = strings.TrimSpace(query)
	if query == "" {
		return results
	}

	var g errgroup.Group
	g.Go(func() error {
		modules, err := f.searcher.SearchModules(ctx, query)
		if err != nil {
			f.logger.Warn("module search failed", zap.String("query", query), zap.Error(err))
			return nil
		}
		for _, module := range modules {
			results.Modules = append(results.Modules, models.ModuleSearchResult(module))
		}
		return nil
	})
	g.Go(func() error {
		lessons, err := f.searcher.SearchLessons(ctx, query)
		if err != nil {
			f.logger.Warn("lesson search failed", zap.String("query", query), zap.Error(err))
			return nil
		}
		for _, lesson := range lessons {
			results.Lessons = append(results.Lessons, models.LessonSearchResult(lesson))
		}
		return nil
	})
	_ = g.Wait()

	return results
}

func emptyResults() models.SearchResults {
	return models.SearchResults{
		Modules: make([]models.SearchResult, 0),
		Lessons: make([]models.SearchResult, 0),
	}
}
