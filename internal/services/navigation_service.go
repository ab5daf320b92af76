package services

import (
	"context"
	"fmt"

	"github.com/courseos/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LessonCatalog is the interface that wraps the catalog reads of the public lesson page
type LessonCatalog interface {
	// Method GetLesson retrieve a lesson by its ID.
	GetLesson(ctx context.Context, id string) (*models.Lesson, error)
	// Method GetLessonSiblings retrieve the active lessons of the module "moduleID" sorted by order position.
	GetLessonSiblings(ctx context.Context, moduleID string) ([]models.Lesson, error)
	// Method GetLessonResources retrieve the resources of the lesson "lessonID" partitioned by type.
	GetLessonResources(ctx context.Context, lessonID string) (*models.LessonResources, error)
}

type navigationService struct {
	catalog LessonCatalog
	logger  *zap.Logger
}

// NewNavigationService creates a new lesson navigation service
func NewNavigationService(catalog LessonCatalog, logger *zap.Logger) *navigationService {
	return &navigationService{
		catalog: catalog,
		logger:  logger,
	}
}

// GetLessonNavigation resolves the previous and next lessons of "lessonID" inside the module "moduleID".
//
// The method never fails. If the lesson is not among the module's lessons, Position is nil and Total is still set.
// If the siblings cannot be fetched, an empty navigation is returned and the failure is logged.
func (s *navigationService) GetLessonNavigation(ctx context.Context, lessonID, moduleID string) models.LessonNavigation {
	lessons, err := s.catalog.GetLessonSiblings(ctx, moduleID)
	if err != nil {
		s.logger.Error("failed to fetch lessons for navigation",
			zap.String("lesson_id", lessonID),
			zap.String("module_id", moduleID),
			zap.Error(err),
		)
		return models.LessonNavigation{}
	}

	return resolveNavigation(lessons, lessonID)
}

// GetLessonView retrieves an active lesson together with its resources and its navigation.
//
// If the lesson does not exist or is not active, the returned error wraps models.ErrNotFound.
func (s *navigationService) GetLessonView(ctx context.Context, lessonID string) (*models.LessonView, error) {
	lesson, err := s.catalog.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if !lesson.IsActive {
		return nil, fmt.Errorf("lesson %s is not active: %w", lessonID, models.ErrNotFound)
	}

	view := &models.LessonView{Lesson: *lesson}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resources, err := s.catalog.GetLessonResources(gctx, lessonID)
		if err != nil {
			return err
		}
		view.Resources = *resources
		return nil
	})
	g.Go(func() error {
		view.Navigation = s.GetLessonNavigation(gctx, lessonID, lesson.ModuleID)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return view, nil
}

// resolveNavigation locates "lessonID" by identity inside the sorted "lessons"
func resolveNavigation(lessons []models.Lesson, lessonID string) models.LessonNavigation {
	nav := models.LessonNavigation{Total: len(lessons)}

	index := -1
	for i, lesson := range lessons {
		if lesson.ID == lessonID {
			index = i
			break
		}
	}
	if index < 0 {
		return nav
	}

	position := index + 1
	nav.Position = &position
	if index > 0 {
		nav.Previous = lessons[index-1].Ref()
	}
	if index < len(lessons)-1 {
		nav.Next = lessons[index+1].Ref()
	}
	if percent, ok := nav.ProgressPercent(); ok {
		nav.Progress = &percent
	}
	return nav
}
